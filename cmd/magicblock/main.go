// Command magicblock reads a puzzle text file, solves it with the
// bidirectional engine in package solver, and prints the resulting
// move list. Exit codes: 0 on solve, 1 on input parse or validation
// failure, 2 when no solution exists within the configured depth caps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/magicblock/puzzle"
	"github.com/katalvlaran/magicblock/solver"
)

const (
	exitOK         = 0
	exitInputError = 1
	exitNoSolution = 2
)

var (
	inPath = flag.String("in", "", "path to a puzzle text file")
	rotate = flag.Bool("rotate", false, "allow matching any 90° rotation of the target")
	fwMax  = flag.Int("fw-max", 0, "forward BFS depth cap (0 = package default)")
	bwMax  = flag.Int("bw-max", 0, "backward BFS depth cap (0 = package default)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *inPath == "" {
		log.Print("missing required -in flag")
		return exitInputError
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Printf("opening %s: %v", *inPath, err)
		return exitInputError
	}
	defer f.Close()

	target, player, err := puzzle.ParseFile(f)
	if err != nil {
		log.Printf("parsing %s: %v", *inPath, err)
		return exitInputError
	}

	opts := []solver.Option{solver.WithRotation(*rotate)}
	if *fwMax > 0 {
		opts = append(opts, solver.WithForwardMaxDepth(*fwMax))
	}
	if *bwMax > 0 {
		opts = append(opts, solver.WithBackwardMaxDepth(*bwMax))
	}

	res, err := solver.Solve(player, target, opts...)
	if err != nil {
		log.Printf("solving: %v", err)
		return exitInputError
	}
	if !res.Solved {
		log.Print("no solution within depth caps")
		return exitNoSolution
	}

	log.Printf("solved in %d moves, %d distinct states visited, rotation %d", res.Length, res.VisitedStates, res.RotationID)
	if err := puzzle.FormatMoves(os.Stdout, player, res.Moves); err != nil {
		log.Printf("formatting moves: %v", err)
		return exitInputError
	}
	fmt.Fprintf(os.Stdout, "done: %d moves\n", res.Length)
	return exitOK
}
