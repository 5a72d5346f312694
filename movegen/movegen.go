// Package movegen computes pseudo-legal destination bitboards per piece
// type. It is deliberately stateless: every function takes a board
// snapshot and returns a bitboard of candidate destinations, with no
// notion of pins, checks, or Move encoding — those concerns belong to
// the position package, which combines these masks with the pin ray and
// check-block mask for the current ply to produce legal moves.
package movegen

import (
	"github.com/treepeck/chego/attacks"
	"github.com/treepeck/chego/board"
	"github.com/treepeck/chego/enum"
)

// KnightTargets returns the squares a knight on sq may move to, minus
// squares occupied by friendly pieces.
func KnightTargets(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.Knight(sq) &^ b.ColorMask[c]
}

// BishopTargets returns the squares a bishop on sq may move to.
func BishopTargets(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.Bishop(sq, b.PieceMask[enum.None]) &^ b.ColorMask[c]
}

// RookTargets returns the squares a rook on sq may move to.
func RookTargets(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.Rook(sq, b.PieceMask[enum.None]) &^ b.ColorMask[c]
}

// QueenTargets returns the squares a queen on sq may move to.
func QueenTargets(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.Queen(sq, b.PieceMask[enum.None]) &^ b.ColorMask[c]
}

// KingTargets returns the raw king-table destinations minus friendly
// pieces. It does NOT exclude attacked squares — the caller must
// intersect with the complement of board.AttacksOfExcludingKing.
func KingTargets(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.King(sq) &^ b.ColorMask[c]
}

// PawnCaptures returns the non-en-passant capture destinations for a
// pawn of color c on sq: pawn-attack squares occupied by the opponent.
func PawnCaptures(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	return attacks.Pawn(c, sq) & b.ColorMask[c.Opponent()]
}

// PawnPushes returns the single- and (when available) double-push
// destinations for a pawn of color c on sq.
func PawnPushes(b *board.Board, c enum.Color, sq enum.Square) uint64 {
	occ := b.PieceMask[enum.None]
	var dests uint64

	one := pushOne(sq, c)
	if one == enum.NoSquare || occ&one.Mask() != 0 {
		return 0
	}
	dests |= one.Mask()

	startRank := 1
	if c == enum.Black {
		startRank = 6
	}
	if sq.Rank() == startRank {
		two := pushOne(one, c)
		if two != enum.NoSquare && occ&two.Mask() == 0 {
			dests |= two.Mask()
		}
	}
	return dests
}

// pushOne returns the square one step forward for color c, or NoSquare
// if that would leave the board.
func pushOne(sq enum.Square, c enum.Color) enum.Square {
	rank := sq.Rank()
	if c == enum.White {
		if rank == 7 {
			return enum.NoSquare
		}
		return enum.Square(int(sq) - 8)
	}
	if rank == 0 {
		return enum.NoSquare
	}
	return enum.Square(int(sq) + 8)
}

// PromotionRank reports whether sq is the back rank a pawn of color c
// promotes on.
func PromotionRank(sq enum.Square, c enum.Color) bool {
	if c == enum.White {
		return sq.Rank() == 7
	}
	return sq.Rank() == 0
}

// Castling square geometry, indexed by [color][kingside?]. EmptyPath is the
// squares (excluding the king's own square) that must be empty; the
// king's start/transit/destination squares — which must additionally be
// unattacked — are KingTransit.
var (
	KingSource  = [2]enum.Square{enum.E1, enum.E8}
	KingDest    = [2][2]enum.Square{{enum.G1, enum.C1}, {enum.G8, enum.C8}}
	RookSource  = [2][2]enum.Square{{enum.H1, enum.A1}, {enum.H8, enum.A8}}
	RookDest    = [2][2]enum.Square{{enum.F1, enum.D1}, {enum.F8, enum.D8}}
	EmptyPath   = [2][2]uint64{
		{enum.F1.Mask() | enum.G1.Mask(), enum.B1.Mask() | enum.C1.Mask() | enum.D1.Mask()},
		{enum.F8.Mask() | enum.G8.Mask(), enum.B8.Mask() | enum.C8.Mask() | enum.D8.Mask()},
	}
	KingTransit = [2][2]uint64{
		{enum.E1.Mask() | enum.F1.Mask() | enum.G1.Mask(), enum.E1.Mask() | enum.D1.Mask() | enum.C1.Mask()},
		{enum.E8.Mask() | enum.F8.Mask() | enum.G8.Mask(), enum.E8.Mask() | enum.D8.Mask() | enum.C8.Mask()},
	}
	CastlingRight = [2][2]enum.CastlingRights{
		{enum.WhiteShort, enum.WhiteLong},
		{enum.BlackShort, enum.BlackLong},
	}
)
