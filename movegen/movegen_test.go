package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/board"
	"github.com/treepeck/chego/enum"
)

func TestPawnPushesSingleAndDouble(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E2)

	dests := PawnPushes(&b, enum.White, enum.E2)
	assert.Equal(t, enum.E3.Mask()|enum.E4.Mask(), dests)
}

func TestPawnPushesBlockedDoesNotSkipOverBlocker(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E2)
	b.PutPiece(enum.Black, enum.Knight, enum.E3)

	assert.Equal(t, uint64(0), PawnPushes(&b, enum.White, enum.E2))
}

func TestPawnPushesSingleOnlyAfterFirstMove(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E3)

	assert.Equal(t, enum.E4.Mask(), PawnPushes(&b, enum.White, enum.E3))
}

func TestPawnCapturesOnlyOpponentPieces(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Pawn, enum.E4)
	b.PutPiece(enum.Black, enum.Knight, enum.D5)
	b.PutPiece(enum.White, enum.Knight, enum.F5)

	assert.Equal(t, enum.D5.Mask(), PawnCaptures(&b, enum.White, enum.E4))
}

func TestKnightTargetsExcludeFriendlyPieces(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Knight, enum.D4)
	b.PutPiece(enum.White, enum.Pawn, enum.F5)

	dests := KnightTargets(&b, enum.White, enum.D4)
	assert.Equal(t, uint64(0), dests&enum.F5.Mask())
	assert.NotEqual(t, uint64(0), dests&enum.C6.Mask())
}

func TestRookTargetsStopAtBlocker(t *testing.T) {
	b := board.Empty()
	b.PutPiece(enum.White, enum.Rook, enum.D1)
	b.PutPiece(enum.Black, enum.Pawn, enum.D5)

	dests := RookTargets(&b, enum.White, enum.D1)
	assert.NotEqual(t, uint64(0), dests&enum.D5.Mask(), "capture included")
	assert.Equal(t, uint64(0), dests&enum.D6.Mask(), "ray does not continue past capture")
}

func TestPromotionRank(t *testing.T) {
	assert.True(t, PromotionRank(enum.E8, enum.White))
	assert.False(t, PromotionRank(enum.E7, enum.White))
	assert.True(t, PromotionRank(enum.E1, enum.Black))
	assert.False(t, PromotionRank(enum.E2, enum.Black))
}

func TestCastlingGeometryConsistentAcrossColors(t *testing.T) {
	for c := enum.White; c <= enum.Black; c++ {
		for side := 0; side < 2; side++ {
			assert.NotEqual(t, enum.NoSquare, KingDest[c][side])
			assert.NotEqual(t, enum.NoSquare, RookDest[c][side])
			assert.NotEqual(t, uint64(0), EmptyPath[c][side])
			assert.NotEqual(t, uint64(0), KingTransit[c][side])
		}
	}
}
