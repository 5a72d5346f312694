package position

import (
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/movegen"
)

// MakeMove mutates the Board and pushes a new Context, per spec §4.8. It
// is the caller's responsibility to ensure m is legal — Move.Illegal is
// a programmer error, not a runtime failure, matching §7's propagation
// policy ("move generation never fails").
func (p *Position) MakeMove(m Move) {
	side := p.SideToMove
	opp := side.Opponent()
	from, to := m.From(), m.To()
	movedPiece := p.Board.PieceAt(from)
	prev := p.Current()

	newCtx := Context{
		CastlingRights: prev.CastlingRights,
		DoublePawnPush: -1,
	}

	var capturedPiece enum.Piece = enum.None

	switch m.Type() {
	case enum.Normal:
		capturedPiece = p.Board.PieceAt(to)
		if capturedPiece != enum.None {
			p.Board.RemovePiece(opp, capturedPiece, to)
		}
		p.Board.MovePiece(side, movedPiece, from, to)

	case enum.Promotion:
		capturedPiece = p.Board.PieceAt(to)
		if capturedPiece != enum.None {
			p.Board.RemovePiece(opp, capturedPiece, to)
		}
		p.Board.RemovePiece(side, enum.Pawn, from)
		p.Board.PutPiece(side, m.PromotionPiece(), to)

	case enum.EnPassant:
		capturedPiece = enum.Pawn
		capturedSq := enPassantCapturedSquare(to, side)
		p.Board.RemovePiece(opp, enum.Pawn, capturedSq)
		p.Board.MovePiece(side, enum.Pawn, from, to)

	case enum.Castling:
		kingside := to == movegen.KingDest[side][0]
		pathIdx := 0
		if !kingside {
			pathIdx = 1
		}
		p.Board.MovePiece(side, enum.King, from, to)
		p.Board.MovePiece(side, enum.Rook, movegen.RookSource[side][pathIdx], movegen.RookDest[side][pathIdx])
	}

	// Halfmove clock: reset on pawn move or capture, else incremented.
	if movedPiece == enum.Pawn || capturedPiece != enum.None {
		newCtx.HalfmoveClock = 0
	} else {
		newCtx.HalfmoveClock = prev.HalfmoveClock + 1
	}

	// Double pawn push bookkeeping.
	if movedPiece == enum.Pawn {
		diff := int(from) - int(to)
		if diff == 16 || diff == -16 {
			newCtx.DoublePawnPush = int8(to.File())
		}
	}

	// Castling-rights invalidation.
	switch movedPiece {
	case enum.King:
		newCtx.CastlingRights &^= movegen.CastlingRight[side][0] | movegen.CastlingRight[side][1]
	case enum.Rook:
		if from == movegen.RookSource[side][0] {
			newCtx.CastlingRights &^= movegen.CastlingRight[side][0]
		} else if from == movegen.RookSource[side][1] {
			newCtx.CastlingRights &^= movegen.CastlingRight[side][1]
		}
	}
	if capturedPiece == enum.Rook {
		if to == movegen.RookSource[opp][0] {
			newCtx.CastlingRights &^= movegen.CastlingRight[opp][0]
		} else if to == movegen.RookSource[opp][1] {
			newCtx.CastlingRights &^= movegen.CastlingRight[opp][1]
		}
	}

	newCtx.CapturedPiece = capturedPiece
	newCtx.ZobristHash = p.Board.Hash

	p.Contexts = append(p.Contexts, newCtx)
	p.SideToMove = opp
	p.Halfmove++

	p.derivePinsAndCheckers()
}

// UnmakeMove restores the Board to the state before m was made and pops
// the Context that MakeMove pushed. Invariant: MakeMove(m); UnmakeMove(m)
// leaves the Position byte-identical to its prior state, hash and
// context-stack depth included.
func (p *Position) UnmakeMove(m Move) {
	popped := p.Contexts[len(p.Contexts)-1]
	p.Contexts = p.Contexts[:len(p.Contexts)-1]

	p.SideToMove = p.SideToMove.Opponent()
	p.Halfmove--

	side := p.SideToMove
	opp := side.Opponent()
	from, to := m.From(), m.To()

	switch m.Type() {
	case enum.Normal:
		movedPiece := p.Board.PieceAt(to)
		p.Board.MovePiece(side, movedPiece, to, from)
		if popped.CapturedPiece != enum.None {
			p.Board.PutPiece(opp, popped.CapturedPiece, to)
		}

	case enum.Promotion:
		p.Board.RemovePiece(side, m.PromotionPiece(), to)
		if popped.CapturedPiece != enum.None {
			p.Board.PutPiece(opp, popped.CapturedPiece, to)
		}
		p.Board.PutPiece(side, enum.Pawn, from)

	case enum.EnPassant:
		p.Board.MovePiece(side, enum.Pawn, to, from)
		capturedSq := enPassantCapturedSquare(to, side)
		p.Board.PutPiece(opp, enum.Pawn, capturedSq)

	case enum.Castling:
		kingside := to == movegen.KingDest[side][0]
		pathIdx := 0
		if !kingside {
			pathIdx = 1
		}
		p.Board.MovePiece(side, enum.King, to, from)
		p.Board.MovePiece(side, enum.Rook, movegen.RookDest[side][pathIdx], movegen.RookSource[side][pathIdx])
	}
}

// enPassantCapturedSquare returns the square of the pawn captured by an
// en-passant move with destination to, played by color mover.
func enPassantCapturedSquare(to enum.Square, mover enum.Color) enum.Square {
	if mover == enum.White {
		return enum.Square(int(to) + 8)
	}
	return enum.Square(int(to) - 8)
}
