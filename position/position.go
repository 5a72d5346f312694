// Package position ties together the board, the per-ply context stack,
// and legal move generation: the Position type is the library's main
// entry point (§8 of the specification this module implements calls it
// the "position kernel").
package position

import (
	"github.com/treepeck/chego/attacks"
	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/board"
	"github.com/treepeck/chego/enum"
)

// Position is a Board, the side to move, the total halfmove count, a
// terminal-result classification, and an owned stack of per-ply
// Contexts (top of stack = current ply). Mutated only by MakeMove and
// UnmakeMove.
type Position struct {
	Board      board.Board
	SideToMove enum.Color
	Halfmove   uint16
	Result     enum.GameResult
	Contexts   []Context
}

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Current returns the top-of-stack context, i.e. the context for the ply
// about to be played.
func (p *Position) Current() *Context { return &p.Contexts[len(p.Contexts)-1] }

// Initial builds the standard chess starting position.
func Initial() Position {
	var p Position
	b := board.Empty()

	place := func(c enum.Color, pc enum.Piece, squares ...enum.Square) {
		for _, sq := range squares {
			b.PutPiece(c, pc, sq)
		}
	}
	place(enum.White, enum.Pawn, enum.A2, enum.B2, enum.C2, enum.D2, enum.E2, enum.F2, enum.G2, enum.H2)
	place(enum.White, enum.Rook, enum.A1, enum.H1)
	place(enum.White, enum.Knight, enum.B1, enum.G1)
	place(enum.White, enum.Bishop, enum.C1, enum.F1)
	place(enum.White, enum.Queen, enum.D1)
	place(enum.White, enum.King, enum.E1)
	place(enum.Black, enum.Pawn, enum.A7, enum.B7, enum.C7, enum.D7, enum.E7, enum.F7, enum.G7, enum.H7)
	place(enum.Black, enum.Rook, enum.A8, enum.H8)
	place(enum.Black, enum.Knight, enum.B8, enum.G8)
	place(enum.Black, enum.Bishop, enum.C8, enum.F8)
	place(enum.Black, enum.Queen, enum.D8)
	place(enum.Black, enum.King, enum.E8)

	p.Board = b
	p.SideToMove = enum.White
	p.Halfmove = 0

	ctx := blankContext()
	ctx.ZobristHash = b.Hash
	p.Contexts = []Context{ctx}
	p.derivePinsAndCheckers()

	return p
}

// IsInCheck reports whether the side to move's king is currently
// attacked.
func (p *Position) IsInCheck() bool { return p.Current().Checkers != 0 }

// KingSquare returns the square of the side-to-move's king.
func (p *Position) KingSquare() enum.Square {
	kingBB := p.Board.PieceMask[enum.King] & p.Board.ColorMask[p.SideToMove]
	return bitutil.PopLSB(&kingBB)
}

// kingSquareOf returns the king square of the given color.
func (p *Position) kingSquareOf(c enum.Color) enum.Square {
	kingBB := p.Board.PieceMask[enum.King] & p.Board.ColorMask[c]
	return bitutil.PopLSB(&kingBB)
}

// CastlingRights returns the current castling-rights nibble.
func (p *Position) CastlingRights() enum.CastlingRights { return p.Current().CastlingRights }

// HalfmoveClock returns the current 50-move-rule counter.
func (p *Position) HalfmoveClock() uint8 { return p.Current().HalfmoveClock }

// FullmoveNumber returns the FEN-style fullmove counter.
func (p *Position) FullmoveNumber() int { return int(p.Halfmove)/2 + 1 }

// ZobristHash returns the position's current piece-placement hash.
func (p *Position) ZobristHash() uint64 { return p.Board.Hash }

// RefreshCheckState recomputes Checkers and Pinned for the side to move
// in the top context. Callers that build a Position by means other than
// Initial or MakeMove/UnmakeMove (a FEN loader, for instance) must call
// this once before generating moves.
func (p *Position) RefreshCheckState() { p.derivePinsAndCheckers() }

// derivePinsAndCheckers recomputes Checkers and Pinned for the side to
// move in the top context, per §4.6: checkers are found by probing from
// the king outward with each piece type's own attack pattern; pins are
// found by checking, for every opponent slider colinear with the king,
// whether exactly one piece — a friendly one — sits between them.
func (p *Position) derivePinsAndCheckers() {
	b := &p.Board
	c := p.SideToMove
	opp := c.Opponent()
	king := p.kingSquareOf(c)
	occ := b.PieceMask[enum.None]

	var checkers uint64
	checkers |= pawnAttackers(b, c, king)
	checkers |= knightAttackers(b, opp, king)
	checkers |= bishopRayAttackers(b, opp, king, occ)
	checkers |= rookRayAttackers(b, opp, king, occ)

	var pinned uint64
	diagPinners := (b.PieceMask[enum.Bishop] | b.PieceMask[enum.Queen]) & b.ColorMask[opp]
	orthoPinners := (b.PieceMask[enum.Rook] | b.PieceMask[enum.Queen]) & b.ColorMask[opp]

	collectPins(&pinned, b, king, diagPinners, occ, true)
	collectPins(&pinned, b, king, orthoPinners, occ, false)

	ctx := p.Current()
	ctx.Checkers = checkers
	ctx.Pinned = pinned
}

// pawnAttackers finds opposing pawns giving check by probing outward
// from the king with the side-to-move's own pawn-attack pattern: the
// squares a c-colored pawn on king would attack are exactly the squares
// an opposing pawn attacking king could stand on.
func pawnAttackers(b *board.Board, c enum.Color, king enum.Square) uint64 {
	return attacks.Pawn(c, king) & b.PieceMask[enum.Pawn] & b.ColorMask[c.Opponent()]
}

func knightAttackers(b *board.Board, opp enum.Color, king enum.Square) uint64 {
	return attacks.Knight(king) & b.PieceMask[enum.Knight] & b.ColorMask[opp]
}

func bishopRayAttackers(b *board.Board, opp enum.Color, king enum.Square, occ uint64) uint64 {
	return attacks.Bishop(king, occ) & (b.PieceMask[enum.Bishop] | b.PieceMask[enum.Queen]) & b.ColorMask[opp]
}

func rookRayAttackers(b *board.Board, opp enum.Color, king enum.Square, occ uint64) uint64 {
	return attacks.Rook(king, occ) & (b.PieceMask[enum.Rook] | b.PieceMask[enum.Queen]) & b.ColorMask[opp]
}

// collectPins checks each pinner for a colinear, single-blocker ray to
// the king; if that one blocker is a friendly piece, it is pinned.
func collectPins(pinned *uint64, b *board.Board, king enum.Square, pinners, occ uint64, diagonal bool) {
	for pinners != 0 {
		pinnerSq := bitutil.PopLSB(&pinners)
		dir := bitutil.FindDirection(king, pinnerSq)
		if dir == bitutil.DirNone {
			continue
		}
		if isDiagonalDir(dir) != diagonal {
			continue
		}
		between := bitutil.Between(king, pinnerSq)
		blockers := between & occ
		if bitutil.CountBits(blockers) != 1 {
			continue
		}
		if blockers&b.ColorMask[own(b, king)] != 0 {
			*pinned |= blockers
		}
	}
}

func own(b *board.Board, king enum.Square) enum.Color {
	if b.ColorMask[enum.White]&king.Mask() != 0 {
		return enum.White
	}
	return enum.Black
}

func isDiagonalDir(dir bitutil.Direction) bool {
	switch dir {
	case bitutil.NorthEast, bitutil.NorthWest, bitutil.SouthEast, bitutil.SouthWest:
		return true
	}
	return false
}
