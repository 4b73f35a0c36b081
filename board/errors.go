package board

import "errors"

// Sentinel errors for board validation. Callers branch with errors.Is;
// these are never reformatted at the definition site.
var (
	// ErrNoEmptyCell indicates a board expected to hold exactly one Empty
	// cell holds none.
	ErrNoEmptyCell = errors.New("board: no empty cell found")

	// ErrMultipleEmpty indicates a board holds more than one Empty cell.
	ErrMultipleEmpty = errors.New("board: more than one empty cell")

	// ErrUnknownInPlayer indicates a player board (which must be fully
	// determined) contains an Unknown ("don't care") cell.
	ErrUnknownInPlayer = errors.New("board: player board contains an unknown cell")

	// ErrTooManyOfColor indicates a real color appears more than four
	// times across the grid.
	ErrTooManyOfColor = errors.New("board: a color appears more than four times")

	// ErrEmptyOutsideCenter indicates a backward (target-seeded) board's
	// Empty cell lies outside the center 3×3 region.
	ErrEmptyOutsideCenter = errors.New("board: empty cell outside center region")

	// ErrRingNotUnknown indicates a backward board's outer ring holds a
	// cell other than Unknown.
	ErrRingNotUnknown = errors.New("board: outer ring is not fully unknown")

	// ErrUnknownColorChar indicates a character outside {R,G,B,W,O,Y,E, ,*,?}
	// was encountered while parsing a color.
	ErrUnknownColorChar = errors.New("board: unrecognized color character")
)
