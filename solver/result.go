package solver

import "github.com/katalvlaran/magicblock/board"

// Result is the outcome of Solve.
type Result struct {
	// Solved reports whether a move sequence was found within the
	// configured depth caps. When false, every other field is zero and
	// no error is returned: a puzzle that is simply unsolvable within
	// the caps it was given is a normal outcome, not an error.
	Solved bool

	// Moves is the minimum-length move sequence, forward-half
	// directions followed by the inverted, reversed backward-half
	// directions. Empty when the player board already satisfied the
	// target.
	Moves []board.Direction

	// Length is len(Moves), kept as a field for callers that only want
	// the count.
	Length int

	// VisitedStates is the combined count of distinct boards inserted
	// into the forward and backward visited tries over the whole
	// search — a rough proxy for how much work the search did.
	VisitedStates int

	// RotationID is which of the (deduplicated) target rotations the
	// answer satisfies: 0 for the target's given orientation, 1/2/3
	// for 90°/180°/270° clockwise. Meaningful only when Solved.
	RotationID int
}
