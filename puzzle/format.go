package puzzle

import (
	"fmt"
	"io"

	"github.com/katalvlaran/magicblock/board"
)

// FormatMoves writes dirs as a textual move list: one line
// per step, 1-based, naming the moved tile's color, its from/to cells in
// row-letter/column-digit notation (A1..E5), and the direction name.
// start is replayed on a local copy, so the caller's board is left
// unchanged; it must already be a valid player board with exactly one
// empty cell.
func FormatMoves(w io.Writer, start board.Board, dirs []board.Direction) error {
	cur := start
	for i, d := range dirs {
		empty, err := cur.FindEmpty()
		if err != nil {
			return fmt.Errorf("puzzle: step %d: %w", i+1, err)
		}
		var neighbor board.Neighbor
		found := false
		for _, nb := range board.NeighborsOf(empty) {
			if nb.Dir == d {
				neighbor, found = nb, true
				break
			}
		}
		if !found {
			return fmt.Errorf("puzzle: step %d: direction %v has no neighbor of %s", i+1, d, posLabel(empty))
		}

		tile := cur[neighbor.Pos]
		from, to := neighbor.Pos, empty
		cur.Swap(empty, neighbor.Pos)

		if _, err := fmt.Fprintf(w, "%d. %s %s -> %s %s\n", i+1, tile, posLabel(from), posLabel(to), d); err != nil {
			return fmt.Errorf("puzzle: step %d: %w", i+1, err)
		}
	}
	return nil
}

// posLabel renders a Pos as row-letter/column-digit notation, e.g. the
// top-left cell is "A1" and the bottom-right is "E5".
func posLabel(p board.Pos) string {
	row, col := board.RowOf(p), board.ColOf(p)
	return fmt.Sprintf("%c%d", 'A'+row, col+1)
}
