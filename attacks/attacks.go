// Package attacks builds and exposes the precomputed attack tables:
// non-sliding (pawn, knight, king) tables and magic-bitboard tables for
// the sliding pieces (bishop, rook; queen is their union).
//
// All tables are built once by Init, which must run before the first
// lookup call (the lookups do not call it), and are read-only thereafter — safe to share across
// goroutines, matching the single-writer-many-reader model the rest of
// the module assumes for static data.
package attacks

import (
	"sync"

	"github.com/op/go-logging"
	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/enum"
)

var log = logging.MustGetLogger("chego/attacks")

var (
	pawnTable   [2][64]uint64
	knightTable [64]uint64
	kingTable   [64]uint64

	bishopMagics [64]magicInfo
	rookMagics   [64]magicInfo
	bishopFlat   []uint64
	rookFlat     []uint64

	once sync.Once
)

// magicInfo is the per-square record described by spec §4.3: the
// relevant occupancy mask, the magic multiplier, the shift amount, and
// the square's offset into the flat attack array.
type magicInfo struct {
	relevantMask uint64
	magic        uint64
	shift        uint
	offset       int
}

// Init builds every precomputed table. Safe to call from multiple
// goroutines or multiple times; only the first call does any work.
func Init() { once.Do(initTables) }

func initTables() {
	log.Debug("building non-sliding attack tables")
	for sq := enum.Square(0); sq < 64; sq++ {
		pawnTable[enum.White][sq] = genPawnAttacks(sq, enum.White)
		pawnTable[enum.Black][sq] = genPawnAttacks(sq, enum.Black)
		knightTable[sq] = genKnightAttacks(sq)
		kingTable[sq] = genKingAttacks(sq)
	}

	log.Debug("searching bishop magic numbers")
	bishopFlat = buildMagicTable(bishopMagics[:], bishopRelevantMask, genBishopAttacks)
	log.Debugf("bishop flat table: %d entries", len(bishopFlat))

	log.Debug("searching rook magic numbers")
	rookFlat = buildMagicTable(rookMagics[:], rookRelevantMask, genRookAttacks)
	log.Debugf("rook flat table: %d entries", len(rookFlat))
}

// Pawn returns the squares attacked by a pawn of color c standing on sq.
func Pawn(c enum.Color, sq enum.Square) uint64 { return pawnTable[c][sq] }

// Knight returns the squares attacked by a knight standing on sq.
func Knight(sq enum.Square) uint64 { return knightTable[sq] }

// King returns the squares attacked by a king standing on sq.
func King(sq enum.Square) uint64 { return kingTable[sq] }

// Bishop returns the bishop attack set from sq given the board occupancy,
// via magic-hash lookup.
func Bishop(sq enum.Square, occupied uint64) uint64 {
	return lookup(bishopMagics[sq], bishopFlat, occupied)
}

// Rook returns the rook attack set from sq given the board occupancy,
// via magic-hash lookup.
func Rook(sq enum.Square, occupied uint64) uint64 {
	return lookup(rookMagics[sq], rookFlat, occupied)
}

// Queen returns the union of bishop and rook attack sets from sq.
func Queen(sq enum.Square, occupied uint64) uint64 {
	return Bishop(sq, occupied) | Rook(sq, occupied)
}

func lookup(m magicInfo, flat []uint64, occupied uint64) uint64 {
	idx := ((occupied & m.relevantMask) * m.magic) >> m.shift
	return flat[m.offset+int(idx)]
}

// genPawnAttacks manually computes the capture squares of a pawn of
// color c on sq. Cheap enough to compute directly rather than table it,
// per spec §4.4, but folded into the table at init time anyway so the
// lookup is branch-free.
func genPawnAttacks(sq enum.Square, c enum.Color) uint64 {
	var attacks uint64
	rank, file := sq.Rank(), sq.File()
	dr := 1
	if c == enum.Black {
		dr = -1
	}
	for _, df := range [2]int{-1, 1} {
		f, r := file+df, rank+dr
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			attacks |= squareAt(f, r).Mask()
		}
	}
	return attacks
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func genKnightAttacks(sq enum.Square) uint64 {
	var attacks uint64
	file, rank := sq.File(), sq.Rank()
	for _, d := range knightDeltas {
		f, r := file+d[0], rank+d[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			attacks |= squareAt(f, r).Mask()
		}
	}
	return attacks
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func genKingAttacks(sq enum.Square) uint64 {
	var attacks uint64
	file, rank := sq.File(), sq.Rank()
	for _, d := range kingDeltas {
		f, r := file+d[0], rank+d[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			attacks |= squareAt(f, r).Mask()
		}
	}
	return attacks
}

// squareAt converts a (file, rank) pair, both 0..7, back into a Square.
func squareAt(file, rank int) enum.Square {
	return enum.Square((7-rank)*8 + file)
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// genBishopAttacks walks the four diagonal rays from sq, stopping at (and
// including) the first occupied square on each ray, per spec §4.2.
func genBishopAttacks(sq enum.Square, occupied uint64) uint64 {
	return walkRays(sq, occupied, bishopDirs[:])
}

// genRookAttacks walks the four orthogonal rays from sq.
func genRookAttacks(sq enum.Square, occupied uint64) uint64 {
	return walkRays(sq, occupied, rookDirs[:])
}

func walkRays(sq enum.Square, occupied uint64, dirs [][2]int) uint64 {
	var attacks uint64
	file, rank := sq.File(), sq.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			target := squareAt(f, r)
			attacks |= target.Mask()
			if occupied&target.Mask() != 0 {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// bishopRelevantMask is the set of squares along a bishop's rays that
// can hold a blocker affecting its attack set — i.e. excluding the board
// edge, since a blocker there behaves identically to the edge itself.
func bishopRelevantMask(sq enum.Square) uint64 {
	full := genBishopAttacks(sq, 0)
	return full &^ edgeMask(sq)
}

func rookRelevantMask(sq enum.Square) uint64 {
	full := genRookAttacks(sq, 0)
	return full &^ edgeMaskExcludingOwnLine(sq)
}

// edgeMask is the full board-edge ring, used to trim bishop rays (a
// bishop ray always terminates on some edge regardless of which one, so
// the whole ring is excluded).
func edgeMask(sq enum.Square) uint64 {
	const fileA = 0x8080808080808080
	const fileH = 0x0101010101010101
	const rank1 = 0x00000000000000FF
	const rank8 = 0xFF00000000000000
	return fileA | fileH | rank1 | rank8
}

// edgeMaskExcludingOwnLine trims the edge ring but keeps the far square
// of the file/rank the rook itself stands on out of the exclusion when
// that file/rank IS the edge — mirroring calc_rook_relevant_mask in the
// reference implementation, which only strips an edge if the rook isn't
// already standing on it.
func edgeMaskExcludingOwnLine(sq enum.Square) uint64 {
	const fileA = 0x8080808080808080
	const fileH = 0x0101010101010101
	const rank1 = 0x00000000000000FF
	const rank8 = 0xFF00000000000000

	fileMask := fileMaskOf(sq)
	rankMask := rankMaskOf(sq)

	var excl uint64
	for _, edge := range [4]uint64{fileA, fileH, rank1, rank8} {
		if fileMask != edge && rankMask != edge {
			excl |= edge
		}
	}
	return excl
}

func fileMaskOf(sq enum.Square) uint64 {
	var m uint64
	for r := 0; r < 8; r++ {
		m |= squareAt(sq.File(), r).Mask()
	}
	return m
}

func rankMaskOf(sq enum.Square) uint64 {
	var m uint64
	for f := 0; f < 8; f++ {
		m |= squareAt(f, sq.Rank()).Mask()
	}
	return m
}

// buildMagicTable runs the randomized magic search for every square and
// concatenates the per-square tables into one flat array, returning it.
func buildMagicTable(info []magicInfo, relevantMaskOf func(enum.Square) uint64, genAttack func(enum.Square, uint64) uint64) []uint64 {
	rng := newMagicRNG(0)

	var flat []uint64
	offset := 0

	for sq := enum.Square(0); sq < 64; sq++ {
		mask := relevantMaskOf(sq)
		n := bitutil.CountBits(mask)
		shift := uint(64 - n)

		occupancies := make([]uint64, 0, 1<<n)
		attacksFor := make([]uint64, 0, 1<<n)
		sub := uint64(0)
		for {
			occupancies = append(occupancies, sub)
			attacksFor = append(attacksFor, genAttack(sq, sub))
			sub = bitutil.NextSubset(sub, mask)
			if sub == 0 {
				break
			}
		}

		table := make([]uint64, 1<<n)
		var magic uint64
		for {
			magic = rng.genCandidate()
			if bitutil.CountBits((mask*magic)&0xFF00000000000000) < 6 {
				continue
			}

			for i := range table {
				table[i] = 0
			}
			collision := false
			for i, occ := range occupancies {
				idx := (occ * magic) >> shift
				if table[idx] == 0 {
					table[idx] = attacksFor[i]
				} else if table[idx] != attacksFor[i] {
					collision = true
					break
				}
			}
			if !collision {
				break
			}
		}

		info[sq] = magicInfo{relevantMask: mask, magic: magic, shift: shift, offset: offset}
		flat = append(flat, table...)
		offset += len(table)
	}

	return flat
}
