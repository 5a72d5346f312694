package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/position"
)

func TestFormatBitboard(t *testing.T) {
	out := FormatBitboard(enum.E4.Mask(), enum.Pawn)
	assert.True(t, strings.Contains(out, "♙"))
	assert.Contains(t, out, "a  b  c  d  e  f  g  h")
}

func TestFormatPosition(t *testing.T) {
	p := position.Initial()
	out := FormatPosition(&p)
	assert.Contains(t, out, "Active color: white")
	assert.Contains(t, out, "Castling rights: KQkq")
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")
}
