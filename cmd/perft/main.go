// Command perft walks the legal-move game tree to a given depth and
// counts leaf nodes, the standard correctness/performance oracle for a
// move generator. See https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/op/go-logging"
	"github.com/treepeck/chego/cli"
	"github.com/treepeck/chego/fen"
	"github.com/treepeck/chego/notation"
	"github.com/treepeck/chego/position"
)

var log = logging.MustGetLogger("chego/cmd/perft")

// divide holds the per-root-move leaf count reported in verbose mode, so
// a failing branch of the move tree can be isolated by comparing against
// a reference engine's own divide output.
type divide struct {
	move  string
	nodes uint64
}

func main() {
	depth := flag.Int("depth", 4, "perft depth")
	startFEN := flag.String("fen", position.StartFEN, "starting position")
	verbose := flag.Bool("verbose", false, "print per-root-move node counts")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("create cpu profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	p, err := fen.Parse(*startFEN)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	if *verbose {
		log.Infof("root position:\n%s", cli.FormatPosition(&p))
	}

	start := time.Now()
	var nodes uint64

	if *verbose {
		nodes = runDivide(&p, *depth)
	} else {
		nodes = p.Perft(*depth)
	}

	elapsed := time.Since(start)
	log.Infof("depth %d: %d nodes in %s (%.0f nodes/sec)",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

// runDivide reports, for each legal move at the root, how many leaves its
// subtree contributes — the standard technique for isolating a move
// generator bug to a specific branch.
func runDivide(p *position.Position, depth int) uint64 {
	var l position.MoveList
	p.LegalMoves(&l)

	var total uint64
	results := make([]divide, 0, l.Count)

	for _, m := range l.Slice() {
		p.MakeMove(m)
		var sub uint64
		if depth <= 1 {
			sub = 1
		} else {
			sub = p.Perft(depth - 1)
		}
		p.UnmakeMove(m)

		results = append(results, divide{notation.MoveToUCI(m), sub})
		total += sub
	}

	for _, r := range results {
		log.Infof("%s: %d", r.move, r.nodes)
	}

	return total
}
