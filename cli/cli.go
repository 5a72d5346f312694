// Package cli provides functions to print a chess board and position for
// debugging and perft reporting.
package cli

import (
	"strings"

	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/position"
)

var pieceSymbols = [7]rune{
	'.', '♙', '♘', '♗', '♖', '♕', '♔',
}
var pieceSymbolsBlack = [7]rune{
	'.', '♟', '♞', '♝', '♜', '♛', '♚',
}

// FormatBitboard formats a single bitboard into a string, using pieceType
// only to pick a glyph for the set bits.
func FormatBitboard(bitboard uint64, pieceType enum.Piece) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := enum.Square((7-rank)*8 + file)

			symbol := pieceSymbols[pieceType]
			if bitboard&sq.Mask() == 0 {
				symbol = '.'
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// FormatPosition formats a full position into a human-readable board dump,
// used by the perft harness's verbose mode and by tests investigating a
// failing branch of the move tree.
func FormatPosition(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := enum.Square((7-rank)*8 + file)

			pc := p.Board.PieceAt(sq)
			symbol := pieceSymbols[pc]
			if pc != enum.None && p.Board.ColorAt(sq) == enum.Black {
				symbol = pieceSymbolsBlack[pc]
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if p.SideToMove == enum.White {
		b.WriteString("white\nCastling rights: ")
	} else {
		b.WriteString("black\nCastling rights: ")
	}

	rights := p.CastlingRights()
	if rights&enum.WhiteShort != 0 {
		b.WriteByte('K')
	}
	if rights&enum.WhiteLong != 0 {
		b.WriteByte('Q')
	}
	if rights&enum.BlackShort != 0 {
		b.WriteByte('k')
	}
	if rights&enum.BlackLong != 0 {
		b.WriteByte('q')
	}
	if rights == 0 {
		b.WriteByte('-')
	}
	b.WriteByte('\n')

	return b.String()
}
