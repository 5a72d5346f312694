// Package enum contains the primitive type declarations and predefined
// constants shared by every other package in the module. Keeping them in
// one leaf package avoids import cycles and the "magic numbers"
// antipattern.
package enum

// Square identifies one of the 64 board squares. The layout is
// big-endian-file: A8 is 0, H8 is 7, A1 is 56, H1 is 63 — rank decreases
// as the index increases.
type Square int

// File returns the 0 (A) .. 7 (H) file of sq.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the 0 (rank 1) .. 7 (rank 8) rank of sq.
func (sq Square) Rank() int { return 7 - int(sq)/8 }

// Mask returns the single-bit bitboard for sq.
func (sq Square) Mask() uint64 { return uint64(1) << (63 - uint(sq)) }

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = -1

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// SquareNames maps a Square to its algebraic notation.
var SquareNames = [64]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// Color is white or black.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// Piece identifies a piece type, independent of color. Zero value is None
// so a zeroed Piece array reads as "empty".
type Piece int

const (
	None Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceLetters indexes by Piece for the uncolored FEN/SAN letter.
var PieceLetters = [7]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}

// IsSlider reports whether p slides along rays (bishop, rook, queen).
func (p Piece) IsSlider() bool { return p == Bishop || p == Rook || p == Queen }

// MoveType discriminates the four move flags.
type MoveType int

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// CastlingRights is a 4-bit nibble: bit0 white-short, bit1 white-long,
// bit2 black-short, bit3 black-long.
type CastlingRights int

const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// AllCastlingRights is the full starting nibble (KQkq).
const AllCastlingRights = WhiteShort | WhiteLong | BlackShort | BlackLong

// GameResult classifies a terminated position. Non-None is terminal.
type GameResult int

const (
	ResultNone GameResult = iota
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultThreefoldRepetition
	ResultFiftyMoveRule
	ResultOtherDraw
	ResultUnknown
)
