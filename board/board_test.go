package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/attacks"
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func TestPutRemoveRoundTrip(t *testing.T) {
	b := Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E2)
	assert.Equal(t, enum.Pawn, b.PieceAt(enum.E2))
	assert.True(t, b.Occupied(enum.E2))
	assert.Equal(t, enum.White, b.ColorAt(enum.E2))

	b.RemovePiece(enum.White, enum.Pawn, enum.E2)
	assert.Equal(t, enum.None, b.PieceAt(enum.E2))
	assert.False(t, b.Occupied(enum.E2))
	assert.Equal(t, uint64(0), b.Hash, "put+remove of the same piece must cancel the hash")
	assert.Equal(t, uint64(0), b.PieceMask[enum.None])
}

func TestMovePieceMatchesRemovePut(t *testing.T) {
	a := Empty()
	a.PutPiece(enum.White, enum.Knight, enum.B1)
	a.MovePiece(enum.White, enum.Knight, enum.B1, enum.C3)

	b := Empty()
	b.PutPiece(enum.White, enum.Knight, enum.B1)
	b.RemovePiece(enum.White, enum.Knight, enum.B1)
	b.PutPiece(enum.White, enum.Knight, enum.C3)

	assert.Equal(t, a, b)
}

func TestOccupiedCacheConsistency(t *testing.T) {
	b := Empty()
	b.PutPiece(enum.White, enum.Rook, enum.A1)
	b.PutPiece(enum.Black, enum.Rook, enum.A8)

	var union uint64
	for p := enum.Pawn; p <= enum.King; p++ {
		union |= b.PieceMask[p]
	}
	assert.Equal(t, b.PieceMask[enum.None], union)
	assert.Equal(t, uint64(0), b.ColorMask[enum.White]&b.ColorMask[enum.Black])
	assert.Equal(t, b.PieceMask[enum.None], b.ColorMask[enum.White]|b.ColorMask[enum.Black])
}

func TestHashMatchesFromScratch(t *testing.T) {
	b := Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E2)
	b.PutPiece(enum.Black, enum.Knight, enum.G8)
	b.MovePiece(enum.White, enum.Pawn, enum.E2, enum.E4)

	assert.Equal(t, b.CalcHash(), b.Hash)
}
