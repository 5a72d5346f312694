package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/fen"
	"github.com/treepeck/chego/position"
)

func TestMoveToUCI(t *testing.T) {
	assert.Equal(t, "e2e4", MoveToUCI(position.NewMove(enum.E2, enum.E4, enum.Normal)))
	assert.Equal(t, "e1g1", MoveToUCI(position.NewMove(enum.E1, enum.G1, enum.Castling)))
	assert.Equal(t, "e7e8q", MoveToUCI(position.NewPromotionMove(enum.E7, enum.E8, enum.Queen)))
}

func TestParseUCIRoundTrip(t *testing.T) {
	p := position.Initial()
	m, err := ParseUCI("e2e4", &p)
	require.NoError(t, err)
	assert.Equal(t, enum.E2, m.From())
	assert.Equal(t, enum.E4, m.To())
	assert.Equal(t, "e2e4", MoveToUCI(m))

	_, err = ParseUCI("e2e5", &p)
	assert.Error(t, err)
}

func TestMoveToSANDisambiguationAndCheck(t *testing.T) {
	testcases := []struct {
		name     string
		startFEN string
		move     position.Move
		want     string
	}{
		{
			"file disambiguation",
			"k7/8/8/8/8/2N5/8/4K1N1 w - - 0 1",
			position.NewMove(enum.C3, enum.E2, enum.Normal),
			"Nce2",
		},
		{
			"no disambiguation needed when pinned",
			"k7/8/8/8/1b6/2N5/8/4K1N1 w - - 0 1",
			position.NewMove(enum.G1, enum.E2, enum.Normal),
			"Ne2",
		},
		{
			"capture and checkmate",
			"2k5/Qr6/Q7/8/8/8/8/3R3K w - - 0 1",
			position.NewMove(enum.A6, enum.B7, enum.Normal),
			"Q6xb7#",
		},
		{
			"pawn promotion capture",
			"1k2b3/3P1P2/8/8/8/8/8/4K3 w - - 0 1",
			position.NewPromotionMove(enum.D7, enum.E8, enum.Queen),
			"dxe8=Q+",
		},
	}

	for _, tc := range testcases {
		p, err := fen.Parse(tc.startFEN)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, MoveToSAN(tc.move, &p), tc.name)
	}
}

func TestMoveToSANCastling(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.Equal(t, "O-O", MoveToSAN(position.NewMove(enum.E1, enum.G1, enum.Castling), &p))
}
