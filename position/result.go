package position

import (
	"github.com/treepeck/chego/enum"
)

// IsThreefoldRepetition walks the context stack backward, comparing
// Zobrist hashes, while the halfmove clock still permits a repeated
// position to exist. This is the Open Question decided in §9: an
// ancestor walk over the owned context stack, not a side hash map — the
// core contract is only "the current position's hash appears at least
// twice among ancestors whose halfmove_clock permits repetition".
func (p *Position) IsThreefoldRepetition() bool {
	current := p.Current()
	if current.HalfmoveClock < 4 {
		return false
	}

	occurrences := 0
	limit := int(current.HalfmoveClock)
	if limit > len(p.Contexts)-1 {
		limit = len(p.Contexts) - 1
	}

	for i := 1; i <= limit; i++ {
		ctx := p.Contexts[len(p.Contexts)-1-i]
		if ctx.ZobristHash == current.ZobristHash {
			occurrences++
			if occurrences >= 2 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveRule reports whether the halfmove clock has reached the
// 50-move-rule threshold.
func (p *Position) IsFiftyMoveRule() bool { return p.Current().HalfmoveClock >= 100 }

// IsInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate by any sequence of legal moves: no
// pawns, rooks, or queens on the board, and each side has at most one
// minor piece (knight or bishop, in any combination).
func (p *Position) IsInsufficientMaterial() bool {
	b := &p.Board
	if b.PieceMask[enum.Pawn] != 0 || b.PieceMask[enum.Rook] != 0 || b.PieceMask[enum.Queen] != 0 {
		return false
	}

	minors := b.PieceMask[enum.Knight] | b.PieceMask[enum.Bishop]
	whiteMinors := popcount(minors & b.ColorMask[enum.White])
	blackMinors := popcount(minors & b.ColorMask[enum.Black])

	return whiteMinors <= 1 && blackMinors <= 1
}

func popcount(bb uint64) int {
	n := 0
	for bb != 0 {
		n++
		bb &= bb - 1
	}
	return n
}

// UpdateResult classifies the position and sets Result accordingly:
// checkmate or stalemate when no legal move exists, otherwise a
// fifty-move, threefold-repetition or insufficient-material draw (checked
// in that order), otherwise an ongoing game.
func (p *Position) UpdateResult() {
	var l MoveList
	p.LegalMoves(&l)

	switch {
	case l.Count == 0 && p.IsInCheck():
		p.Result = enum.ResultCheckmate
	case l.Count == 0:
		p.Result = enum.ResultStalemate
	case p.IsFiftyMoveRule():
		p.Result = enum.ResultFiftyMoveRule
	case p.IsThreefoldRepetition():
		p.Result = enum.ResultThreefoldRepetition
	case p.IsInsufficientMaterial():
		p.Result = enum.ResultInsufficientMaterial
	default:
		p.Result = enum.ResultNone
	}
}
