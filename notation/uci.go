// Package notation implements the two textual move formats external
// callers use: UCI long algebraic notation and SAN (Standard Algebraic
// Notation).
package notation

import (
	"fmt"
	"strings"

	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/position"
)

// MoveToUCI converts m into long algebraic notation.
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
func MoveToUCI(m position.Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(enum.SquareNames[m.From()])
	b.WriteString(enum.SquareNames[m.To()])

	if m.Type() == enum.Promotion {
		b.WriteByte(enum.PieceLetters[m.PromotionPiece()] | 0x20)
	}

	return b.String()
}

// ParseUCI resolves a UCI move string against the position's current
// legal moves, so the move flag (Normal, Castling, EnPassant,
// Promotion) is recovered correctly without re-deriving it from the
// board by hand.
func ParseUCI(uci string, p *position.Position) (position.Move, error) {
	if len(uci) < 4 || len(uci) > 5 {
		return 0, fmt.Errorf("notation: malformed UCI move %q", uci)
	}

	from, ok := squareFromString(uci[0:2])
	if !ok {
		return 0, fmt.Errorf("notation: bad source square in %q", uci)
	}
	to, ok := squareFromString(uci[2:4])
	if !ok {
		return 0, fmt.Errorf("notation: bad destination square in %q", uci)
	}

	var promo enum.Piece
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promo = enum.Knight
		case 'b':
			promo = enum.Bishop
		case 'r':
			promo = enum.Rook
		case 'q':
			promo = enum.Queen
		default:
			return 0, fmt.Errorf("notation: bad promotion letter in %q", uci)
		}
	}

	var l position.MoveList
	p.LegalMoves(&l)
	for _, m := range l.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() == enum.Promotion && m.PromotionPiece() != promo {
			continue
		}
		return m, nil
	}

	return 0, fmt.Errorf("notation: %q is not a legal move in this position", uci)
}

func squareFromString(s string) (enum.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return enum.NoSquare, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return enum.Square((7-rank)*8 + file), true
}
