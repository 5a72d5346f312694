package position

import "github.com/treepeck/chego/enum"

// Move encodes a chess move as a 16-bit integer:
//
//	0-5:   destination square
//	6-11:  source square
//	12-13: promotion piece (Knight..Queen, stored as piece-2)
//	14-15: move type flag
type Move uint16

// NewMove builds a Normal/Castling/EnPassant move; the promotion field is
// left at its zero value (Knight) since it is unused for these flags.
func NewMove(from, to enum.Square, flag enum.MoveType) Move {
	return Move(int(to) | int(from)<<6 | int(flag)<<14)
}

// NewPromotionMove builds a Promotion move to the given promotion piece
// (Knight, Bishop, Rook, or Queen).
func NewPromotionMove(from, to enum.Square, promo enum.Piece) Move {
	return Move(int(to) | int(from)<<6 | int(promo-enum.Knight)<<12 | int(enum.Promotion)<<14)
}

func (m Move) From() enum.Square      { return enum.Square(m>>6) & 0x3F }
func (m Move) To() enum.Square        { return enum.Square(m) & 0x3F }
func (m Move) PromotionPiece() enum.Piece {
	return enum.Piece((m>>12)&0x3) + enum.Knight
}
func (m Move) Type() enum.MoveType { return enum.MoveType(m>>14) & 0x3 }

// MoveList is a fixed-capacity buffer for generated moves, avoiding a
// heap allocation per call: the maximum legal moves from any reachable
// chess position is 218.
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
type MoveList struct {
	Moves [218]Move
	Count int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of Moves.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }
