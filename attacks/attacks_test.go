package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/enum"
)

func TestMagicLookupMatchesManualWalk(t *testing.T) {
	Init()

	for sq := enum.Square(0); sq < 64; sq++ {
		mask := bishopRelevantMask(sq)
		sub := uint64(0)
		for {
			want := genBishopAttacks(sq, sub)
			got := Bishop(sq, sub)
			assert.Equalf(t, want, got, "bishop sq=%d occ=%x", sq, sub)

			sub = bitutil.NextSubset(sub, mask)
			if sub == 0 {
				break
			}
		}

		mask = rookRelevantMask(sq)
		sub = 0
		for {
			want := genRookAttacks(sq, sub)
			got := Rook(sq, sub)
			assert.Equalf(t, want, got, "rook sq=%d occ=%x", sq, sub)

			sub = bitutil.NextSubset(sub, mask)
			if sub == 0 {
				break
			}
		}
	}
}

func TestNonSlidingTables(t *testing.T) {
	Init()

	// A knight in the corner has exactly two moves.
	assert.Equal(t, 2, bitutil.CountBits(Knight(enum.A1)))
	// A king anywhere on the board has at most eight neighbours.
	assert.LessOrEqual(t, bitutil.CountBits(King(enum.D4)), 8)
	// A white pawn on the A-file can only capture toward the B-file.
	assert.Equal(t, 1, bitutil.CountBits(Pawn(enum.White, enum.A2)))
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	Init()
	sq := enum.D4
	occ := enum.D6.Mask() | enum.B4.Mask()
	assert.Equal(t, Bishop(sq, occ)|Rook(sq, occ), Queen(sq, occ))
}

func BenchmarkBishopLookup(b *testing.B) {
	Init()
	for b.Loop() {
		Bishop(enum.D4, enum.D6.Mask())
	}
}

func BenchmarkRookLookup(b *testing.B) {
	Init()
	for b.Loop() {
		Rook(enum.D4, enum.D6.Mask())
	}
}
