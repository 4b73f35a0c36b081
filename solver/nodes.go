package solver

import "github.com/katalvlaran/magicblock/board"

// fwNode is everything the forward solver remembers about one
// discovered board: enough to re-expand it and enough to reconstruct
// the path from the player board once a goal is confirmed.
type fwNode struct {
	board     board.Board
	empty     board.Pos
	hasParent bool
	parent    board.Fingerprint
	dir       board.Direction // direction of the move that produced this node from its parent
}

// bwNode mirrors fwNode, plus the rotationID every descendant inherits
// from the seed board it traces back to, so the driver can later tell
// which rotation of the target a given backward board belongs to.
type bwNode struct {
	board      board.Board
	empty      board.Pos
	hasParent  bool
	parent     board.Fingerprint
	dir        board.Direction
	rotationID int
}

// rotationPattern is one deduplicated rotation of the target pattern:
// a full board.Board whose outer ring is Unknown and whose center
// carries the (possibly still Unknown/Empty-containing) target colors,
// rotated turns * 90° clockwise from the input orientation.
type rotationPattern struct {
	id      int // index into the deduplicated rotation list
	turns   int // actual quarter-turns applied, 0..3
	pattern board.Board
}

// buildRotations returns the deduplicated list of rotations to search:
// just the identity rotation when allowRotation is false, otherwise
// every distinct board among the four 90° multiples — a symmetric
// target pattern (e.g. all nine center cells the same color) can
// produce fewer than four distinct boards, so duplicates are dropped
// rather than searched redundantly.
func buildRotations(target board.Board, allowRotation bool) []rotationPattern {
	if !allowRotation {
		return []rotationPattern{{id: 0, turns: 0, pattern: target}}
	}
	var out []rotationPattern
	for turns := 0; turns < 4; turns++ {
		p := board.Rotate(&target, turns)
		dup := false
		for _, existing := range out {
			if existing.pattern == p {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, rotationPattern{id: len(out), turns: turns, pattern: p})
	}
	return out
}

// seedPositions picks which center cells are candidate homes for the
// backward solver's Empty seed, given one rotation's center 3×3:
//
//   - if the pattern already fixes one cell to Empty, that is the only
//     candidate — the puzzle author chose the hole's final position;
//   - else if the pattern leaves one or more cells Unknown, each is a
//     candidate, since the puzzle author left those cells open to
//     whatever ends up there, including the hole itself;
//   - else (all nine cells are fixed real colors) every cell is a
//     candidate — the pattern never says where the hole should end up,
//     so the backward search must try all nine possibilities.
func seedPositions(center [9]board.Color) []int {
	for i, c := range center {
		if c == board.Empty {
			return []int{i}
		}
	}
	var unknowns []int
	for i, c := range center {
		if c == board.Unknown {
			unknowns = append(unknowns, i)
		}
	}
	if len(unknowns) > 0 {
		return unknowns
	}
	all := make([]int, 9)
	for i := range all {
		all[i] = i
	}
	return all
}

// centerPos maps a row-major index 0..8 over the center 3×3 to its
// full-board Pos.
func centerPos(localIdx int) board.Pos {
	return board.PosOf(board.CenterStart+localIdx/3, board.CenterStart+localIdx%3)
}
