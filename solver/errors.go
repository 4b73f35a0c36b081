package solver

import "errors"

// Sentinel errors for package solver. Callers branch with errors.Is;
// these are never reformatted at the definition site.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrInvalidPlayerBoard wraps a board.Validate* failure on the
	// player board, surfaced before the first BFS layer runs.
	ErrInvalidPlayerBoard = errors.New("solver: invalid player board")

	// ErrInvalidTargetBoard wraps the board package error that Solve's
	// own target-pattern check reports, surfaced before the first BFS
	// layer runs.
	ErrInvalidTargetBoard = errors.New("solver: invalid target board")
)
