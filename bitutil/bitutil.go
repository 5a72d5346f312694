// Package bitutil implements the bit-level primitives every higher layer
// builds on: set-bit iteration, occupancy-subset iteration, and ray
// geometry (between-squares, edge-to-edge rays, direction lookup).
package bitutil

import "github.com/treepeck/chego/enum"

// bitscanMagic is the De Bruijn-style multiplier used to turn an
// isolated low bit into a lookup index.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScan returns the bit position (0..63, bit 0 = LSB) of the least
// significant set bit. Undefined for bitboard == 0.
func bitScan(bitboard uint64) int {
	return bitScanLookup[bitboard&-bitboard*bitscanMagic>>58]
}

// CountBits returns the number of set bits in bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard != 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}

// PopLSB clears the least significant set bit of *bitboard and returns
// the Square it occupied. Square indices run opposite to bit position
// (sq.Mask() == 1<<(63-sq)), so the lowest set bit is the
// highest-indexed square. Undefined if *bitboard == 0.
func PopLSB(bitboard *uint64) enum.Square {
	bit := bitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return enum.Square(63 - bit)
}

// NextSubset advances sub to the next subset of mask using the
// Carry-Rippler trick. Starting from 0 and repeatedly calling NextSubset
// enumerates every subset of mask exactly once, returning to 0 when the
// cycle closes.
func NextSubset(sub, mask uint64) uint64 {
	return (sub - mask) & mask
}

// Direction is one of the eight queen-like ray directions, or DirNone
// when two squares share none of rank, file, or diagonal.
type Direction int

const (
	DirNone Direction = iota
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// step is the Square-index delta for each direction. North decreases
// the index by 8 because rank increases as the index decreases (A8=0).
var step = map[Direction]int{
	North: -8, South: 8, East: 1, West: -1,
	NorthEast: -7, NorthWest: -9, SouthEast: 9, SouthWest: 7,
}

// FindDirection returns the ray direction from a to b, or DirNone if a
// and b do not share a rank, file, or diagonal.
func FindDirection(a, b enum.Square) Direction {
	df := b.File() - a.File()
	dr := b.Rank() - a.Rank()

	switch {
	case df == 0 && dr == 0:
		return DirNone
	case df == 0:
		if dr > 0 {
			return North
		}
		return South
	case dr == 0:
		if df > 0 {
			return East
		}
		return West
	case df == dr:
		if df > 0 {
			return NorthEast
		}
		return SouthWest
	case df == -dr:
		if df > 0 {
			return SouthEast
		}
		return NorthWest
	default:
		return DirNone
	}
}

// Between returns the mask of squares strictly between a and b if they
// share a rank, file, or diagonal; otherwise 0.
func Between(a, b enum.Square) uint64 {
	dir := FindDirection(a, b)
	if dir == DirNone {
		return 0
	}
	d := step[dir]
	var mask uint64
	for sq := int(a) + d; sq != int(b); sq += d {
		mask |= enum.Square(sq).Mask()
	}
	return mask
}

// RayEdgeToEdge returns the full line through a and b extended to both
// board edges; 0 if a and b are not colinear. Used for pin-constrained
// motion: a pinned piece may move anywhere along this ray.
func RayEdgeToEdge(a, b enum.Square) uint64 {
	dir := FindDirection(a, b)
	if dir == DirNone {
		return 0
	}
	d := step[dir]
	var mask uint64

	for sq := int(a); sq >= 0 && sq < 64 && sameLine(int(a), sq, dir); sq += d {
		mask |= enum.Square(sq).Mask()
	}
	for sq := int(a) - d; sq >= 0 && sq < 64 && sameLine(int(a), sq, dir); sq -= d {
		mask |= enum.Square(sq).Mask()
	}
	return mask
}

// sameLine reports whether sq still lies on the ray of direction dir
// starting at origin, guarding against file wraparound for the
// horizontal/diagonal directions.
func sameLine(origin, sq int, dir Direction) bool {
	a, b := enum.Square(origin), enum.Square(sq)
	switch dir {
	case North, South:
		return a.File() == b.File()
	case East, West:
		return a.Rank() == b.Rank()
	case NorthEast, SouthWest:
		return a.File()-b.File() == a.Rank()-b.Rank()
	case NorthWest, SouthEast:
		return a.File()-b.File() == -(a.Rank() - b.Rank())
	}
	return false
}
