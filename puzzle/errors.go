package puzzle

import "errors"

// Sentinel errors for puzzle file parsing and validation. Callers
// branch with errors.Is; these are never reformatted at the definition
// site (contextual detail, e.g. the offending line number, is layered
// on with fmt.Errorf("%w: ...")).
var (
	// ErrLineCount indicates the input did not contain exactly 3 target
	// lines, 1 blank separator line, and 5 player lines.
	ErrLineCount = errors.New("puzzle: expected 3 target lines, a blank line, and 5 player lines")

	// ErrUnknownColor indicates a character outside the recognized set
	// {R,G,B,W,O,Y,E, ,*,?} was found while parsing a board line.
	ErrUnknownColor = errors.New("puzzle: unrecognized color character")

	// ErrValidation indicates a parsed board failed its structural
	// invariants (too many of one color, an empty cell where the target
	// line set permits none, etc.) — wraps the underlying board error.
	ErrValidation = errors.New("puzzle: board validation failed")
)
