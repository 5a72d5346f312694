package position

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treepeck/chego/enum"
)

func TestInitialPositionInvariants(t *testing.T) {
	p := Initial()

	assert.Equal(t, p.Board.PieceMask[enum.None], p.Board.ColorMask[enum.White]|p.Board.ColorMask[enum.Black])
	assert.Equal(t, uint64(0), p.Board.ColorMask[enum.White]&p.Board.ColorMask[enum.Black])
	assert.Equal(t, 2, popcount(p.Board.PieceMask[enum.King]))
	assert.Equal(t, p.Board.CalcHash(), p.Board.Hash)
	assert.Equal(t, enum.Color(p.Halfmove%2), p.SideToMove)
	assert.False(t, p.IsInCheck())
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := Initial()
	before := p

	m := NewMove(enum.E2, enum.E4, enum.Normal)
	p.MakeMove(m)
	require.NotEqual(t, before.Board.Hash, p.Board.Hash)

	p.UnmakeMove(m)

	if diff := cmp.Diff(before, p); diff != "" {
		t.Fatalf("make/unmake round trip mismatch (-before +after):\n%s", diff)
	}
}

func TestMakeMoveUpdatesHashConsistently(t *testing.T) {
	p := Initial()
	p.MakeMove(NewMove(enum.E2, enum.E4, enum.Normal))
	p.MakeMove(NewMove(enum.E7, enum.E5, enum.Normal))
	p.MakeMove(NewMove(enum.G1, enum.F3, enum.Normal))

	assert.Equal(t, p.Board.CalcHash(), p.Board.Hash)
	assert.LessOrEqual(t, p.Current().HalfmoveClock, uint8(100))
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// A position is not easy to hand-build without a FEN loader, so this
	// exercises the mechanism directly: a position with two checkers set
	// must only produce king moves from LegalMoves.
	p := Initial()
	p.MakeMove(NewMove(enum.E2, enum.E4, enum.Normal))
	p.MakeMove(NewMove(enum.E7, enum.E5, enum.Normal))

	// Force a synthetic double-check context to test the branch in
	// isolation from full check-detection plumbing.
	ctx := p.Current()
	king := p.kingSquareOf(p.SideToMove)
	ctx.Checkers = enum.A1.Mask() | enum.H8.Mask()

	var l MoveList
	p.LegalMoves(&l)
	for _, m := range l.Slice() {
		assert.Equal(t, king, m.From(), "only the king may move under double check")
	}
}

// Perft coverage (initial position plus the four named Kiwipete /
// Position 3/4/5 FENs, through depth >= 4) lives in perft_test.go.

func TestMoveEncodingRoundTrip(t *testing.T) {
	m := NewMove(enum.E2, enum.E4, enum.Normal)
	assert.Equal(t, enum.E2, m.From())
	assert.Equal(t, enum.E4, m.To())
	assert.Equal(t, enum.Normal, m.Type())

	pm := NewPromotionMove(enum.E7, enum.E8, enum.Queen)
	assert.Equal(t, enum.Queen, pm.PromotionPiece())
	assert.Equal(t, enum.Promotion, pm.Type())
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	p := Initial()
	// Strip everything but the two kings.
	for sq := enum.Square(0); sq < 64; sq++ {
		piece := p.Board.PieceAt(sq)
		if piece != enum.None && piece != enum.King {
			p.Board.RemovePiece(p.Board.ColorAt(sq), piece, sq)
		}
	}
	assert.True(t, p.IsInsufficientMaterial())
}
