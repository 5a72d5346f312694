// Package fen implements Forsyth-Edwards Notation import/export, the
// one user-facing validation boundary of the module: unlike the rest of
// the library, which trusts its callers, Parse returns a typed *Error
// instead of panicking on malformed input.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/position"
)

// ErrorKind names which FEN field (or structural rule) failed
// validation.
type ErrorKind int

const (
	FieldCount ErrorKind = iota
	Board
	Side
	Castling
	EnPassant
	HalfmoveClock
	FullmoveNumber
	InvalidPosition
)

func (k ErrorKind) String() string {
	switch k {
	case FieldCount:
		return "FEN.FieldCount"
	case Board:
		return "FEN.Board"
	case Side:
		return "FEN.Side"
	case Castling:
		return "FEN.Castling"
	case EnPassant:
		return "FEN.EnPassant"
	case HalfmoveClock:
		return "FEN.HalfmoveClock"
	case FullmoveNumber:
		return "FEN.FullmoveNumber"
	case InvalidPosition:
		return "FEN.InvalidPosition"
	}
	return "FEN.Unknown"
}

// Error is a parse failure, tagged with its ErrorKind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

var pieceLetters = map[byte]enum.Piece{
	'p': enum.Pawn, 'n': enum.Knight, 'b': enum.Bishop,
	'r': enum.Rook, 'q': enum.Queen, 'k': enum.King,
}

// Parse parses a six-field FEN string into a Position.
func Parse(fenStr string) (position.Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return position.Position{}, &Error{FieldCount, fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	var p position.Position
	if err := parseBoard(&p, fields[0]); err != nil {
		return position.Position{}, err
	}

	side, err := parseSide(fields[1])
	if err != nil {
		return position.Position{}, err
	}
	p.SideToMove = side

	rights, err := parseCastling(fields[2])
	if err != nil {
		return position.Position{}, err
	}

	dpp, err := parseEnPassant(fields[3], side)
	if err != nil {
		return position.Position{}, err
	}

	halfmoveCnt, convErr := strconv.Atoi(fields[4])
	if convErr != nil || halfmoveCnt < 0 || halfmoveCnt > 255 {
		return position.Position{}, &Error{HalfmoveClock, fields[4]}
	}

	fullmoveCnt, convErr := strconv.Atoi(fields[5])
	if convErr != nil || fullmoveCnt < 1 {
		return position.Position{}, &Error{FullmoveNumber, fields[5]}
	}

	blackToMove := 0
	if side == enum.Black {
		blackToMove = 1
	}
	p.Halfmove = uint16((fullmoveCnt-1)*2 + blackToMove)

	p.Contexts = []position.Context{{
		HalfmoveClock:  uint8(halfmoveCnt),
		DoublePawnPush: dpp,
		CastlingRights: rights,
		ZobristHash:    p.Board.Hash,
	}}

	p.RefreshCheckState()

	if err := validate(&p); err != nil {
		return position.Position{}, err
	}
	return p, nil
}

// parseBoard decodes the piece-placement field rank by rank, starting
// from rank 8, matching the Square layout where A8 is index 0.
func parseBoard(p *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &Error{Board, fmt.Sprintf("expected 8 ranks separated by '/', got %d", len(ranks))}
	}

	for r, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return &Error{Board, fmt.Sprintf("rank %d overflows 8 files", 8-r)}
			}

			lower := ch | 0x20
			pt, ok := pieceLetters[lower]
			if !ok {
				return &Error{Board, fmt.Sprintf("unknown piece letter %q", ch)}
			}
			color := enum.Black
			if ch != lower {
				color = enum.White
			}
			p.Board.PutPiece(color, pt, enum.Square(r*8+file))
			file++
		}
		if file != 8 {
			return &Error{Board, fmt.Sprintf("rank %d has %d files, want 8", 8-r, file)}
		}
	}
	return nil
}

func parseSide(field string) (enum.Color, error) {
	switch field {
	case "w":
		return enum.White, nil
	case "b":
		return enum.Black, nil
	}
	return 0, &Error{Side, field}
}

func parseCastling(field string) (enum.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights enum.CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= enum.WhiteShort
		case 'Q':
			rights |= enum.WhiteLong
		case 'k':
			rights |= enum.BlackShort
		case 'q':
			rights |= enum.BlackLong
		default:
			return 0, &Error{Castling, field}
		}
	}
	return rights, nil
}

// parseEnPassant returns the double-pawn-push file (0..7), or -1 for
// "-". Only the file is kept: the rank is always rank 6 with White to
// move and rank 3 with Black to move, so it's reconstructed from SideToMove
// rather than stored redundantly, per Context's DoublePawnPush field.
func parseEnPassant(field string, side enum.Color) (int8, error) {
	if field == "-" {
		return -1, nil
	}
	if len(field) != 2 {
		return 0, &Error{EnPassant, field}
	}
	file := field[0] - 'a'
	rank := field[1] - '1'
	if file > 7 || rank > 7 {
		return 0, &Error{EnPassant, field}
	}
	if (side == enum.White && rank != 5) || (side == enum.Black && rank != 2) {
		return 0, &Error{EnPassant, field}
	}
	return int8(file), nil
}

// validate enforces the structural rules a FEN string must satisfy
// beyond per-field syntax: exactly one king per side, a sane halfmove
// clock, and that the side not to move isn't currently in check.
func validate(p *position.Position) error {
	for c := enum.White; c <= enum.Black; c++ {
		if popcount(p.Board.PieceMask[enum.King]&p.Board.ColorMask[c]) != 1 {
			return &Error{InvalidPosition, "each side must have exactly one king"}
		}
	}

	if p.Current().HalfmoveClock > 100 {
		return &Error{InvalidPosition, "halfmove clock exceeds 100"}
	}

	opp := p.SideToMove.Opponent()
	oppKing := p.Board.PieceMask[enum.King] & p.Board.ColorMask[opp]
	for sq := enum.Square(0); sq < 64; sq++ {
		if oppKing&sq.Mask() != 0 {
			if p.Board.AttacksOf(p.SideToMove)&sq.Mask() != 0 {
				return &Error{InvalidPosition, "side not to move is in check"}
			}
			break
		}
	}

	return nil
}

func popcount(bb uint64) int {
	n := 0
	for bb != 0 {
		n++
		bb &= bb - 1
	}
	return n
}

// Serialize renders p back into a FEN string.
func Serialize(p *position.Position) string {
	var b strings.Builder
	b.Grow(64)

	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := enum.Square(r*8 + f)
			pc := p.Board.PieceAt(sq)
			if pc == enum.None {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			letter := enum.PieceLetters[pc]
			if p.Board.ColorAt(sq) == enum.Black {
				letter |= 0x20
			}
			b.WriteByte(letter)
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if r != 7 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.SideToMove == enum.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	rights := p.CastlingRights()
	if rights == 0 {
		b.WriteByte('-')
	} else {
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
	}

	b.WriteByte(' ')
	dpp := p.Current().DoublePawnPush
	if dpp < 0 {
		b.WriteByte('-')
	} else {
		rank := byte('3')
		if p.SideToMove == enum.White {
			rank = '6'
		}
		b.WriteByte('a' + byte(dpp))
		b.WriteByte(rank)
	}

	fmt.Fprintf(&b, " %d %d", p.HalfmoveClock(), p.FullmoveNumber())

	return b.String()
}
