package position

import (
	"github.com/treepeck/chego/attacks"
	"github.com/treepeck/chego/zobrist"
)

// init guarantees the static attack and Zobrist tables exist before any
// Position method runs, per §5's ordering requirement (L0 -> L2 -> L3 ->
// L5 built once, ahead of any Position use). Both Init functions are
// themselves sync.Once-guarded, so this is cheap on every import after
// the first.
func init() {
	attacks.Init()
	zobrist.Init()
}
