package position

import "github.com/treepeck/chego/enum"

// Context is the per-ply metadata pushed by MakeMove and popped by
// UnmakeMove. It carries everything needed to reverse a move that the
// Board itself does not remember: castling rights, the en-passant file,
// the halfmove clock, the captured piece, a mirror of the board hash,
// and the pin/checker bitboards for the side to move at this ply.
type Context struct {
	HalfmoveClock  uint8
	DoublePawnPush int8 // file (0..7) of the opponent's last double pawn push, else -1
	CastlingRights enum.CastlingRights
	CapturedPiece  enum.Piece
	ZobristHash    uint64
	Pinned         uint64
	Checkers       uint64
}

// HasValidHalfmoveClock reports whether the halfmove clock is within the
// 50-move-rule bound.
func (c Context) HasValidHalfmoveClock() bool { return c.HalfmoveClock <= 100 }

// blankContext is the context of a from-scratch initial position, before
// pins/checkers are derived.
func blankContext() Context {
	return Context{DoublePawnPush: -1, CastlingRights: enum.AllCastlingRights}
}
