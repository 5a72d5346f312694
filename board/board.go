// Package board implements the twelve-bitboard chess board: seven
// piece-type masks (index 0 is the "occupied" union cache), two color
// masks, and a Zobrist hash kept in lockstep by every mutating primitive.
package board

import (
	"github.com/treepeck/chego/attacks"
	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/zobrist"
)

// Board is seven piece-type bitboards indexed by enum.Piece (index 0 is
// the union of all pieces), two color bitboards, and the current
// Zobrist hash.
type Board struct {
	PieceMask [7]uint64
	ColorMask [2]uint64
	Hash      uint64
}

// Empty returns a Board with nothing on it.
func Empty() Board { return Board{} }

// PieceAt returns the piece type standing on sq, or enum.None.
func (b *Board) PieceAt(sq enum.Square) enum.Piece {
	mask := sq.Mask()
	if b.PieceMask[enum.None]&mask == 0 {
		return enum.None
	}
	for p := enum.Pawn; p <= enum.King; p++ {
		if b.PieceMask[p]&mask != 0 {
			return p
		}
	}
	return enum.None
}

// ColorAt returns the color of the piece standing on sq. Behavior is
// undefined if the square is empty.
func (b *Board) ColorAt(sq enum.Square) enum.Color {
	if b.ColorMask[enum.White]&sq.Mask() != 0 {
		return enum.White
	}
	return enum.Black
}

// Occupied returns true if any piece stands on sq.
func (b *Board) Occupied(sq enum.Square) bool {
	return b.PieceMask[enum.None]&sq.Mask() != 0
}

// PutPiece sets both the color bit and the piece bit (and the occupied
// cache) for a piece of type p and color c on sq, and XORs the piece's
// key into the hash. sq must currently be empty.
func (b *Board) PutPiece(c enum.Color, p enum.Piece, sq enum.Square) {
	mask := sq.Mask()
	b.PieceMask[p] |= mask
	b.PieceMask[enum.None] |= mask
	b.ColorMask[c] |= mask
	b.Hash ^= zobrist.PieceKey(sq, p)
}

// RemovePiece is the inverse of PutPiece.
func (b *Board) RemovePiece(c enum.Color, p enum.Piece, sq enum.Square) {
	mask := sq.Mask()
	b.PieceMask[p] &^= mask
	b.PieceMask[enum.None] &^= mask
	b.ColorMask[c] &^= mask
	b.Hash ^= zobrist.PieceKey(sq, p)
}

// MovePiece relocates a piece of type p and color c from one square to
// another, XORing the hash once per square rather than via a
// remove-then-put pair.
func (b *Board) MovePiece(c enum.Color, p enum.Piece, from, to enum.Square) {
	fromTo := from.Mask() | to.Mask()
	b.PieceMask[p] ^= fromTo
	b.PieceMask[enum.None] ^= fromTo
	b.ColorMask[c] ^= fromTo
	b.Hash ^= zobrist.PieceKey(from, p)
	b.Hash ^= zobrist.PieceKey(to, p)
}

// AttacksOf computes the union of all squares attacked by color c, from
// scratch. Deliberately recomputed on demand rather than incrementally
// maintained: the complexity of incremental maintenance outweighs the
// benefit for the perft-dominated workload this library targets.
func (b *Board) AttacksOf(c enum.Color) uint64 {
	var result uint64
	occ := b.PieceMask[enum.None]

	pawns := b.PieceMask[enum.Pawn] & b.ColorMask[c]
	for pawns != 0 {
		sq := bitutil.PopLSB(&pawns)
		result |= attacks.Pawn(c, sq)
	}

	knights := b.PieceMask[enum.Knight] & b.ColorMask[c]
	for knights != 0 {
		sq := bitutil.PopLSB(&knights)
		result |= attacks.Knight(sq)
	}

	bishops := (b.PieceMask[enum.Bishop] | b.PieceMask[enum.Queen]) & b.ColorMask[c]
	for bishops != 0 {
		sq := bitutil.PopLSB(&bishops)
		result |= attacks.Bishop(sq, occ)
	}

	rooks := (b.PieceMask[enum.Rook] | b.PieceMask[enum.Queen]) & b.ColorMask[c]
	for rooks != 0 {
		sq := bitutil.PopLSB(&rooks)
		result |= attacks.Rook(sq, occ)
	}

	king := b.PieceMask[enum.King] & b.ColorMask[c]
	if king != 0 {
		result |= attacks.King(bitutil.PopLSB(&king))
	}

	return result
}

// AttacksOfExcludingKing is AttacksOf but with the given square removed
// from the occupancy first — used when computing king moves, so the
// king does not block its own escape from a sliding attacker's ray.
func (b *Board) AttacksOfExcludingKing(c enum.Color, kingSquare enum.Square) uint64 {
	occ := b.PieceMask[enum.None] &^ kingSquare.Mask()

	var result uint64

	pawns := b.PieceMask[enum.Pawn] & b.ColorMask[c]
	for pawns != 0 {
		result |= attacks.Pawn(c, bitutil.PopLSB(&pawns))
	}
	knights := b.PieceMask[enum.Knight] & b.ColorMask[c]
	for knights != 0 {
		result |= attacks.Knight(bitutil.PopLSB(&knights))
	}
	bishops := (b.PieceMask[enum.Bishop] | b.PieceMask[enum.Queen]) & b.ColorMask[c]
	for bishops != 0 {
		result |= attacks.Bishop(bitutil.PopLSB(&bishops), occ)
	}
	rooks := (b.PieceMask[enum.Rook] | b.PieceMask[enum.Queen]) & b.ColorMask[c]
	for rooks != 0 {
		result |= attacks.Rook(bitutil.PopLSB(&rooks), occ)
	}
	king := b.PieceMask[enum.King] & b.ColorMask[c]
	if king != 0 {
		result |= attacks.King(bitutil.PopLSB(&king))
	}
	return result
}

// CalcHash recomputes the Zobrist hash from scratch, for
// consistency-checking against the incrementally maintained Hash field.
func (b *Board) CalcHash() uint64 {
	var hash uint64
	for p := enum.Pawn; p <= enum.King; p++ {
		bb := b.PieceMask[p]
		for bb != 0 {
			sq := bitutil.PopLSB(&bb)
			hash ^= zobrist.PieceKey(sq, p)
		}
	}
	return hash
}

