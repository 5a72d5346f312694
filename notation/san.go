// san.go renders moves into Standard Algebraic Notation.
// See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt Section 8.2.3.

package notation

import (
	"strings"

	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/position"
)

// MoveToSAN renders m, played from position p (before the move is
// made), as SAN. It plays the move on a copy of p to determine the
// check/checkmate suffix, so p itself is left untouched.
//
// SAN is built from:
//  1. Piece letter, omitted for pawns;
//  2. Optional disambiguating file/rank, or file for pawn captures;
//  3. 'x' for captures;
//  4. Destination square;
//  5. Promotion suffix;
//  6. '+' for check, '#' for checkmate (mutually exclusive).
//
// Castling is rendered as "O-O" / "O-O-O".
func MoveToSAN(m position.Move, p *position.Position) string {
	if m.Type() == enum.Castling {
		if m.To().File() == 2 {
			return "O-O-O"
		}
		return "O-O"
	}

	from := m.From()
	piece := p.Board.PieceAt(from)
	isCapture := p.Board.Occupied(m.To()) || m.Type() == enum.EnPassant

	var l position.MoveList
	p.LegalMoves(&l)

	var b strings.Builder
	b.Grow(6)

	if piece != enum.Pawn {
		b.WriteByte(enum.PieceLetters[piece])
		b.WriteString(disambiguate(m, piece, from, &l, p))
	}

	if isCapture {
		if piece == enum.Pawn {
			b.WriteByte("abcdefgh"[from.File()])
		}
		b.WriteByte('x')
	}

	b.WriteString(enum.SquareNames[m.To()])

	if m.Type() == enum.Promotion {
		b.WriteByte('=')
		b.WriteByte(enum.PieceLetters[m.PromotionPiece()])
	}

	after := *p
	after.MakeMove(m)
	if after.IsInCheck() {
		var opp position.MoveList
		after.LegalMoves(&opp)
		if opp.Count == 0 {
			b.WriteByte('#')
		} else {
			b.WriteByte('+')
		}
	}

	return b.String()
}

// disambiguate returns the file/rank/full-square prefix needed to
// distinguish m from every other legal move of the same piece type to
// the same destination, or "" if no other such move exists.
func disambiguate(m position.Move, piece enum.Piece, from enum.Square, l *position.MoveList, p *position.Position) string {
	sameFile, sameRank, ambiguous := false, false, false

	for _, other := range l.Slice() {
		if other.From() == from || other.To() != m.To() {
			continue
		}
		if p.Board.PieceAt(other.From()) != piece {
			continue
		}
		ambiguous = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string("abcdefgh"[from.File()])
	case !sameRank:
		return string(byte('1' + from.Rank()))
	default:
		return enum.SquareNames[from]
	}
}
