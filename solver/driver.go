package solver

import (
	"fmt"

	"github.com/katalvlaran/magicblock/board"
	"github.com/katalvlaran/magicblock/trie"
)

// Solve runs the bidirectional BFS engine and returns the shortest move
// sequence bringing player's center 3×3 into agreement with target
// (under any rotation WithRotation(true) enables).
//
// target is a full board.Board whose outer ring is Unknown and whose
// center carries the desired pattern — the same shape package puzzle
// produces from the input file's 3×3 target lines, before any
// backward-solver seeding.
func Solve(player, target board.Board, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if err := player.ValidatePlayer(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidPlayerBoard, err)
	}
	if err := validateTargetPattern(target); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidTargetBoard, err)
	}

	rotations := buildRotations(target, cfg.AllowRotation)

	for _, r := range rotations {
		if player.CenterMatches(&r.pattern) {
			return Result{Solved: true, RotationID: r.id}, nil
		}
	}

	fwMax, bwMax := cfg.resolvedDepths()
	fwd := newForwardSolver(player, rotations)
	bwd := newBackwardSolver(rotations)

	var best Result
	bestFound := false

	for fwd.depth < fwMax || bwd.depth < bwMax {
		select {
		case <-cfg.Ctx.Done():
			return Result{}, cfg.Ctx.Err()
		default:
		}

		expandForward := fwd.depth < fwMax
		expandBackward := bwd.depth < bwMax
		if fwd.depth > 15 && expandForward && expandBackward {
			fwSize, bwSize := fwd.visited.Size(), bwd.visited.Size()
			switch {
			case fwSize > 2*bwSize:
				expandForward = false
			case bwSize > 2*fwSize:
				expandBackward = false
			}
		}

		var directFP board.Fingerprint
		var directRotation int
		var directFound bool
		if expandForward {
			directFP, directRotation, directFound = fwd.expand()
		}
		if expandBackward {
			bwd.expand()
		}

		if directFound {
			moves := fwd.pathTo(directFP)
			pattern := rotations[directRotation].pattern
			if _, ok := verify(player, moves, &pattern); ok && (!bestFound || len(moves) < len(best.Moves)) {
				best = Result{Solved: true, Moves: moves, Length: len(moves), RotationID: directRotation}
				bestFound = true
			}
		}

		fwd.visited.Intersect(bwd.visited, compatibleRow, func(fwRows, bwRows trie.Rows) bool {
			fwBoard := board.FromRows(fwRows)
			bwBoard := board.FromRows(bwRows)
			fwFP := board.ToFingerprint(&fwBoard)
			bwFP := board.ToFingerprint(&bwBoard)
			if _, fwOK := fwd.nodes[fwFP]; !fwOK {
				return true // not a board either side actually discovered; keep scanning
			}
			if _, bwOK := bwd.nodes[bwFP]; !bwOK {
				return true
			}

			fwDirs := fwd.pathTo(fwFP)
			bwDirs, rotationID := bwd.pathTo(bwFP)
			moves := spliceMoves(fwDirs, bwDirs)

			pattern := rotations[rotationID].pattern
			if _, ok := verify(player, moves, &pattern); !ok {
				return true // invalid candidate; keep scanning further intersections
			}
			if !bestFound || len(moves) < len(best.Moves) {
				best = Result{Solved: true, Moves: moves, Length: len(moves), RotationID: rotationID}
				bestFound = true
			}
			return true
		})

		cfg.OnLayer(fwd.depth, fwd.visited.Size(), bwd.depth, bwd.visited.Size())

		if bestFound {
			break
		}
		if !expandForward && !expandBackward {
			break // both sides already sat at their cap
		}
	}

	if !bestFound {
		return Result{}, nil
	}
	best.VisitedStates = fwd.visited.Size() + bwd.visited.Size()
	return best, nil
}

// validateTargetPattern checks the invariants of a target pattern
// before any backward seeding: the outer ring is entirely Unknown, at
// most one center cell is explicitly Empty, and no real color appears
// more than board.MaxPerColor times.
func validateTargetPattern(t board.Board) error {
	var counts [board.NumRealColors]int
	empties := 0
	for i, c := range t {
		p := board.Pos(i)
		if !board.InCenter(p) {
			if c != board.Unknown {
				return board.ErrRingNotUnknown
			}
			continue
		}
		switch {
		case c == board.Empty:
			empties++
		case c.IsRealColor():
			counts[c]++
		}
	}
	if empties > 1 {
		return board.ErrMultipleEmpty
	}
	for _, n := range counts {
		if n > board.MaxPerColor {
			return board.ErrTooManyOfColor
		}
	}
	return nil
}

// spliceMoves concatenates a forward half-path with a backward
// half-path: forward directions in order, then backward directions
// reversed and inverted, since each backward-side move must be undone
// in the opposite order and direction to continue the forward path.
func spliceMoves(fwDirs, bwDirs []board.Direction) []board.Direction {
	out := make([]board.Direction, 0, len(fwDirs)+len(bwDirs))
	out = append(out, fwDirs...)
	for i := len(bwDirs) - 1; i >= 0; i-- {
		out = append(out, board.Opposite(bwDirs[i]))
	}
	return out
}

// verify replays moves from player and reports whether the resulting
// board's center matches pattern. A move whose direction has no
// matching neighbor of the current empty cell is itself a
// verification failure, not a panic: the candidate is simply
// discarded.
func verify(player board.Board, moves []board.Direction, pattern *board.Board) (board.Board, bool) {
	cur := player
	for _, d := range moves {
		empty, err := cur.FindEmpty()
		if err != nil {
			return cur, false
		}
		applied := false
		for _, nb := range board.NeighborsOf(empty) {
			if nb.Dir == d {
				cur.Swap(empty, nb.Pos)
				applied = true
				break
			}
		}
		if !applied {
			return cur, false
		}
	}
	return cur, cur.CenterMatches(pattern)
}
