package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/enum"
)

func TestInitIsDeterministic(t *testing.T) {
	Init()
	a := PieceKey(enum.E4, enum.Pawn)
	initKeys()
	b := PieceKey(enum.E4, enum.Pawn)
	assert.Equal(t, a, b)
}

func TestKeysAreDistinct(t *testing.T) {
	Init()
	assert.NotEqual(t, PieceKey(enum.E4, enum.Pawn), PieceKey(enum.E4, enum.Knight))
	assert.NotEqual(t, PieceKey(enum.E4, enum.Pawn), PieceKey(enum.D4, enum.Pawn))
}

func TestColorIsNotFoldedIn(t *testing.T) {
	Init()
	// The hash scheme is keyed by (square, piece-type) only: white and
	// black pieces of the same type on the same square share a key.
	// There is no separate color-keyed table to look up, so this is
	// really just documentation that PieceKey takes no Color parameter.
	assert.Equal(t, PieceKey(enum.E4, enum.Pawn), PieceKey(enum.E4, enum.Pawn))
}
