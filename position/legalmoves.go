package position

import (
	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/enum"
	"github.com/treepeck/chego/movegen"
)

// LegalMoves fills l with every legal move in the position, per §4.7.
// The algorithm branches on the number of checkers:
//
//  0: normal per-piece generation, each non-king destination set
//     intersected with the pin ray when the piece is pinned.
//  1: same, but every non-king destination set is additionally
//     intersected with a "capture the checker or block its ray" mask.
//  2: only king moves are legal.
func (p *Position) LegalMoves(l *MoveList) {
	l.Count = 0

	c := p.SideToMove
	ctx := p.Current()
	king := p.kingSquareOf(c)

	p.genKingMoves(l, c, king)

	switch bitutil.CountBits(ctx.Checkers) {
	case 2:
		return
	case 1:
		checkerSq := soleCheckerSquare(ctx.Checkers)
		blockMask := ctx.Checkers
		if p.Board.PieceAt(checkerSq).IsSlider() {
			blockMask |= bitutil.Between(king, checkerSq)
		}
		p.genNonKingMoves(l, c, king, blockMask)
	default:
		p.genNonKingMoves(l, c, king, ^uint64(0))
	}
}

func soleCheckerSquare(checkers uint64) enum.Square {
	bb := checkers
	return bitutil.PopLSB(&bb)
}

// pinRayOrAll returns the edge-to-edge ray through king and sq if sq is
// pinned, else the unconstrained mask (every square).
func pinRayOrAll(pinned uint64, king, sq enum.Square) uint64 {
	if pinned&sq.Mask() == 0 {
		return ^uint64(0)
	}
	return bitutil.RayEdgeToEdge(king, sq)
}

func (p *Position) genKingMoves(l *MoveList, c enum.Color, king enum.Square) {
	attacked := p.Board.AttacksOfExcludingKing(c.Opponent(), king)
	dests := movegen.KingTargets(&p.Board, c, king) &^ attacked

	for dests != 0 {
		to := bitutil.PopLSB(&dests)
		l.Push(NewMove(king, to, enum.Normal))
	}

	if p.Current().Checkers != 0 {
		return
	}
	p.genCastling(l, c, king, attacked)
}

func (p *Position) genCastling(l *MoveList, c enum.Color, king enum.Square, attacked uint64) {
	rights := p.Current().CastlingRights
	occ := p.Board.PieceMask[enum.None]

	for side := 0; side < 2; side++ {
		right := movegen.CastlingRight[c][side]
		if rights&right == 0 {
			continue
		}
		if occ&movegen.EmptyPath[c][side] != 0 {
			continue
		}
		if attacked&movegen.KingTransit[c][side] != 0 {
			continue
		}
		l.Push(NewMove(king, movegen.KingDest[c][side], enum.Castling))
	}
}

func (p *Position) genNonKingMoves(l *MoveList, c enum.Color, king enum.Square, blockMask uint64) {
	b := &p.Board
	pinned := p.Current().Pinned
	opp := c.Opponent()

	knights := b.PieceMask[enum.Knight] & b.ColorMask[c] &^ pinned // pinned knights never have a legal move
	for knights != 0 {
		from := bitutil.PopLSB(&knights)
		dests := movegen.KnightTargets(b, c, from) & blockMask
		pushAll(l, from, dests, enum.Normal)
	}

	bishops := b.PieceMask[enum.Bishop] & b.ColorMask[c]
	for bishops != 0 {
		from := bitutil.PopLSB(&bishops)
		dests := movegen.BishopTargets(b, c, from) & blockMask & pinRayOrAll(pinned, king, from)
		pushAll(l, from, dests, enum.Normal)
	}

	rooks := b.PieceMask[enum.Rook] & b.ColorMask[c]
	for rooks != 0 {
		from := bitutil.PopLSB(&rooks)
		dests := movegen.RookTargets(b, c, from) & blockMask & pinRayOrAll(pinned, king, from)
		pushAll(l, from, dests, enum.Normal)
	}

	queens := b.PieceMask[enum.Queen] & b.ColorMask[c]
	for queens != 0 {
		from := bitutil.PopLSB(&queens)
		dests := movegen.QueenTargets(b, c, from) & blockMask & pinRayOrAll(pinned, king, from)
		pushAll(l, from, dests, enum.Normal)
	}

	p.genPawnMoves(l, c, king, blockMask)
	p.genEnPassant(l, c, opp, king)
}

func pushAll(l *MoveList, from enum.Square, dests uint64, flag enum.MoveType) {
	for dests != 0 {
		to := bitutil.PopLSB(&dests)
		l.Push(NewMove(from, to, flag))
	}
}

func pushWithPromotions(l *MoveList, from enum.Square, dests uint64, c enum.Color) {
	for dests != 0 {
		to := bitutil.PopLSB(&dests)
		if movegen.PromotionRank(to, c) {
			l.Push(NewPromotionMove(from, to, enum.Knight))
			l.Push(NewPromotionMove(from, to, enum.Bishop))
			l.Push(NewPromotionMove(from, to, enum.Rook))
			l.Push(NewPromotionMove(from, to, enum.Queen))
		} else {
			l.Push(NewMove(from, to, enum.Normal))
		}
	}
}

func (p *Position) genPawnMoves(l *MoveList, c enum.Color, king enum.Square, blockMask uint64) {
	b := &p.Board
	pinned := p.Current().Pinned

	pawns := b.PieceMask[enum.Pawn] & b.ColorMask[c]
	for pawns != 0 {
		from := bitutil.PopLSB(&pawns)
		pinRay := pinRayOrAll(pinned, king, from)

		pushes := movegen.PawnPushes(b, c, from) & blockMask & pinRay
		pushWithPromotions(l, from, pushes, c)

		captures := movegen.PawnCaptures(b, c, from) & blockMask & pinRay
		pushWithPromotions(l, from, captures, c)
	}
}

// genEnPassant handles the capture specially: the capturing pawn and the
// captured pawn are not generally colinear with the king in a way the
// pin-ray check above models (the hazard is a horizontal discovered
// check when both pawns vanish from the same rank), so legality is
// confirmed by a make/unmake probe, per the Open Question in §9.
func (p *Position) genEnPassant(l *MoveList, c, opp enum.Color, king enum.Square) {
	dpp := p.Current().DoublePawnPush
	if dpp < 0 {
		return
	}
	// White captures onto rank 6 (idx 5) a pawn sitting on rank 5 (idx 4);
	// Black captures onto rank 3 (idx 2) a pawn sitting on rank 4 (idx 3).
	targetRank, capturerRank := 5, 4
	if c == enum.Black {
		targetRank, capturerRank = 2, 3
	}
	targetFile := int(dpp)
	target := squareFromFileRank(targetFile, targetRank)

	for _, df := range [2]int{-1, 1} {
		f := targetFile + df
		if f < 0 || f > 7 {
			continue
		}
		from := squareFromFileRank(f, capturerRank)
		if p.Board.PieceAt(from) != enum.Pawn || p.Board.ColorAt(from) != c {
			continue
		}
		m := NewMove(from, target, enum.EnPassant)
		if p.isLegalByMakeUnmake(m, c) {
			l.Push(m)
		}
	}
}

func (p *Position) isLegalByMakeUnmake(m Move, c enum.Color) bool {
	p.MakeMove(m)
	stillInCheck := p.kingInCheck(c)
	p.UnmakeMove(m)
	return !stillInCheck
}

// kingInCheck recomputes from scratch whether c's king is attacked —
// used only by the en-passant legality probe, which runs after the
// opponent has become the side to move.
func (p *Position) kingInCheck(c enum.Color) bool {
	king := p.kingSquareOf(c)
	opp := c.Opponent()
	b := &p.Board
	occ := b.PieceMask[enum.None]
	if pawnAttackers(b, c, king) != 0 {
		return true
	}
	if knightAttackers(b, opp, king) != 0 {
		return true
	}
	if bishopRayAttackers(b, opp, king, occ) != 0 {
		return true
	}
	if rookRayAttackers(b, opp, king, occ) != 0 {
		return true
	}
	return false
}

func squareFromFileRank(file, rank int) enum.Square {
	return enum.Square((7-rank)*8 + file)
}
