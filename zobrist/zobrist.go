// Package zobrist builds the Zobrist key table and the incremental XOR
// helpers used to keep a Board's hash in lockstep with its piece
// placement.
//
// The hash is keyed by (square, piece-type) only — color is folded into
// the board's separate color bitboards and deliberately does not enter
// the hash. Two positions with the same piece-type layout but swapped
// colors therefore collide; callers that need color discrimination must
// combine the hash with side_to_move or another color signal themselves.
// This matches the reference implementation this package is ported
// from, and every downstream invariant (repetition detection,
// make/unmake round-trip) is defined against this exact scheme.
package zobrist

import (
	"math/rand/v2"
	"sync"

	"github.com/op/go-logging"
	"github.com/treepeck/chego/enum"
)

var log = logging.MustGetLogger("chego/zobrist")

// Seed is the fixed seed for the key generator, chosen for
// reproducibility across runs — any fixed value works, but once chosen
// it must not change without invalidating every previously computed hash.
const Seed = 0

// pieceKeys is indexed [square][Piece]; Piece None's slot is unused since
// a hash update only ever XORs a real piece in or out.
var (
	pieceKeys [64][7]uint64

	once sync.Once
)

// Init builds the key table. Safe to call multiple times or
// concurrently; only the first call does any work.
func Init() { once.Do(initKeys) }

func initKeys() {
	log.Debug("building zobrist key table")
	r := rand.New(rand.NewPCG(Seed, Seed))

	for sq := 0; sq < 64; sq++ {
		for p := enum.Pawn; p <= enum.King; p++ {
			pieceKeys[sq][p] = r.Uint64()
		}
	}
}

// PieceKey returns the XOR constant for a piece of type p on sq. The
// hash this feeds is keyed by square+piece-type only, see the package
// doc comment: color is not folded in.
func PieceKey(sq enum.Square, p enum.Piece) uint64 { return pieceKeys[sq][p] }
