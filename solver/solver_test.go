package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicblock/board"
	"github.com/katalvlaran/magicblock/solver"
)

// glyphBoard parses five 5-character rows (board.Glyph alphabet) into a
// board.Board, failing the test on any unrecognized character.
func glyphBoard(t *testing.T, rows [5]string) board.Board {
	t.Helper()
	var b board.Board
	for r, line := range rows {
		require.Len(t, line, board.Width, "row %d must have %d glyphs", r, board.Width)
		for c := 0; c < board.Width; c++ {
			col, err := board.ParseColor(line[c])
			require.NoErrorf(t, err, "row %d col %d", r, c)
			b[board.PosOf(r, c)] = col
		}
	}
	return b
}

// targetPattern builds a full board whose outer ring is Unknown and
// whose center is the given 3×3 glyph pattern.
func targetPattern(t *testing.T, rows [3]string) board.Board {
	t.Helper()
	var b board.Board
	for i := range b {
		b[i] = board.Unknown
	}
	for r, line := range rows {
		require.Len(t, line, 3)
		for c := 0; c < 3; c++ {
			col, err := board.ParseColor(line[c])
			require.NoError(t, err)
			b[board.PosOf(board.CenterStart+r, board.CenterStart+c)] = col
		}
	}
	return b
}

// target0 is the RGB/GWO/BOY pattern used across the scenario tests
// below.
func target0(t *testing.T) board.Board {
	return targetPattern(t, [3]string{"RGB", "GWO", "BOY"})
}

// replay applies moves to start and returns the resulting board,
// failing the test if any move is inapplicable.
func replay(t *testing.T, start board.Board, moves []board.Direction) board.Board {
	t.Helper()
	cur := start
	for i, d := range moves {
		empty, err := cur.FindEmpty()
		require.NoError(t, err)
		applied := false
		for _, nb := range board.NeighborsOf(empty) {
			if nb.Dir == d {
				cur.Swap(empty, nb.Pos)
				applied = true
				break
			}
		}
		require.Truef(t, applied, "move %d (%v) has no matching neighbor", i, d)
	}
	return cur
}

// TestSolve_AlreadySatisfied checks that a player board whose center
// already equals the target returns length 0.
func TestSolve_AlreadySatisfied(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRERW",
		"WRGBW",
		"GGWOG",
		"BBOYB",
		"OOYYY",
	})
	target := target0(t)

	res, err := solver.Solve(player, target)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, 0, res.Length)
	assert.Empty(t, res.Moves)
}

// TestSolve_SingleMove checks the smallest nontrivial case: the center
// matches the target except the empty cell and one adjacent tile.
func TestSolve_SingleMove(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRGRW",
		"WREBW",
		"GGWOG",
		"BBOYB",
		"OOYYY",
	})
	target := target0(t)

	res, err := solver.Solve(player, target)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, 1, res.Length)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, board.Down, res.Moves[0])

	final := replay(t, player, res.Moves)
	assert.True(t, final.CenterMatches(&target))
}

// TestSolve_RotationRequired checks a board that only matches the
// target once it is rotated 90° clockwise, exercising the rotation
// search path.
func TestSolve_RotationRequired(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRGRW",
		"WBERW",
		"BOWGB",
		"OYOBO",
		"GGYYY",
	})
	target := target0(t)

	res, err := solver.Solve(player, target, solver.WithRotation(true))
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, 1, res.RotationID, "must match the 90° rotation")

	final := replay(t, player, res.Moves)
	rotated := board.Rotate(&target, 1)
	assert.True(t, final.CenterMatches(&rotated))
}

// TestSolve_UnsolvableWithinCaps checks that a puzzle outside the
// configured depth caps reports Solved == false rather than an error.
// The player's center is the target rotated 180° with rotation
// disabled, so it differs from the target in 6 of 9 cells; a sequence
// of L moves can change at most L+1 distinct board cells, so no
// combined (1,1)-move search can possibly fix 6 mismatches.
func TestSolve_UnsolvableWithinCaps(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRERW",
		"WYOBW",
		"GOWGG",
		"BBGRB",
		"OOYYY",
	})
	target := target0(t)

	res, err := solver.Solve(player, target,
		solver.WithForwardMaxDepth(1), solver.WithBackwardMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Nil(t, res.Moves)
}

// TestSolve_ReplayThenResolveIsLengthZero checks the round-trip
// property: replaying a solution and re-solving from the resulting
// (now-satisfied) board yields length 0.
func TestSolve_ReplayThenResolveIsLengthZero(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRGRW",
		"WREBW",
		"GGWOG",
		"BBOYB",
		"OOYYY",
	})
	target := target0(t)

	first, err := solver.Solve(player, target)
	require.NoError(t, err)
	require.True(t, first.Solved)

	satisfied := replay(t, player, first.Moves)
	second, err := solver.Solve(satisfied, target)
	require.NoError(t, err)
	assert.True(t, second.Solved)
	assert.Equal(t, 0, second.Length)
}

// TestSolve_InvalidPlayerBoard checks that a malformed player board is
// rejected before any BFS layer runs.
func TestSolve_InvalidPlayerBoard(t *testing.T) {
	var player board.Board // all Red, no Empty cell
	for i := range player {
		player[i] = board.Red
	}
	target := target0(t)

	_, err := solver.Solve(player, target)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrInvalidPlayerBoard)
}

// TestSolve_InvalidTargetBoard checks that a target pattern with a
// non-Unknown outer ring is rejected before any BFS layer runs.
func TestSolve_InvalidTargetBoard(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRERW",
		"WRGBW",
		"GGWOG",
		"BBOYB",
		"OOYYY",
	})
	target := target0(t)
	target[board.PosOf(0, 0)] = board.Red // outer ring must stay Unknown

	_, err := solver.Solve(player, target)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrInvalidTargetBoard)
}

// TestSolve_OptionViolation checks that a non-positive depth cap is
// rejected as an option violation rather than silently clamped.
func TestSolve_OptionViolation(t *testing.T) {
	player := glyphBoard(t, [5]string{
		"RRERW",
		"WRGBW",
		"GGWOG",
		"BBOYB",
		"OOYYY",
	})
	target := target0(t)

	_, err := solver.Solve(player, target, solver.WithForwardMaxDepth(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}
