package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/magicblock/board"
)

const (
	targetLines = 3
	blankLines  = 1
	playerLines = board.Height
	totalLines  = targetLines + blankLines + playerLines
)

// ParseFile reads the puzzle text format: three 3-character
// target lines, one blank separator line, then five 5-character player
// lines. It returns the target as a full board.Board whose outer ring
// is Unknown and whose center carries the parsed pattern, and the
// player as a full board.Board.
func ParseFile(r io.Reader) (target, player board.Board, err error) {
	lines := make([]string, 0, totalLines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return board.Board{}, board.Board{}, fmt.Errorf("puzzle: reading input: %w", err)
	}
	if len(lines) != totalLines {
		return board.Board{}, board.Board{}, fmt.Errorf("%w: got %d lines, want %d", ErrLineCount, len(lines), totalLines)
	}

	if strings.TrimSpace(lines[targetLines]) != "" {
		return board.Board{}, board.Board{}, fmt.Errorf("%w: line %d must be blank", ErrLineCount, targetLines+1)
	}

	for i := range target {
		target[i] = board.Unknown
	}
	for r := 0; r < targetLines; r++ {
		line := lines[r]
		if len(line) != 3 {
			return board.Board{}, board.Board{}, fmt.Errorf("%w: line %d must hold 3 characters, got %d", ErrLineCount, r+1, len(line))
		}
		for c := 0; c < 3; c++ {
			col, perr := board.ParseColor(line[c])
			if perr != nil {
				return board.Board{}, board.Board{}, fmt.Errorf("%w: line %d: %q", ErrUnknownColor, r+1, line[c])
			}
			target[board.PosOf(board.CenterStart+r, board.CenterStart+c)] = col
		}
	}
	if err := validateTargetCenter(target); err != nil {
		return board.Board{}, board.Board{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	playerStart := targetLines + blankLines
	for r := 0; r < playerLines; r++ {
		line := lines[playerStart+r]
		if len(line) != board.Width {
			return board.Board{}, board.Board{}, fmt.Errorf("%w: line %d must hold %d characters, got %d", ErrLineCount, playerStart+r+1, board.Width, len(line))
		}
		for c := 0; c < board.Width; c++ {
			col, perr := board.ParseColor(line[c])
			if perr != nil {
				return board.Board{}, board.Board{}, fmt.Errorf("%w: line %d: %q", ErrUnknownColor, playerStart+r+1, line[c])
			}
			player[board.PosOf(r, c)] = col
		}
	}
	if err := player.ValidatePlayer(); err != nil {
		return board.Board{}, board.Board{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return target, player, nil
}

// validateTargetCenter checks the target pattern's own invariants: at
// most one explicit Empty cell in the center, and no real color
// appearing more than board.MaxPerColor times. The ring is Unknown by
// construction, so it needs no check here.
func validateTargetCenter(target board.Board) error {
	var counts [board.NumRealColors]int
	empties := 0
	for r := board.CenterStart; r <= board.CenterEnd; r++ {
		for c := board.CenterStart; c <= board.CenterEnd; c++ {
			switch col := target[board.PosOf(r, c)]; {
			case col == board.Empty:
				empties++
			case col.IsRealColor():
				counts[col]++
			}
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
