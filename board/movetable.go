package board

import "sync"

// Direction names the four ways a tile can slide into the empty cell.
// Opposite(d) == d^2 relies on this exact numbering (Down/Up and
// Left/Right pair up across bit 1).
type Direction uint8

const (
	Down Direction = iota
	Left
	Up
	Right
)

// String implements fmt.Stringer, using the name set the move-list
// output format expects.
func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse of d.
func Opposite(d Direction) Direction {
	return d ^ 2
}

// dirOffset gives (dCol, dRow), the displacement a tile travels when
// moving in direction d — i.e. neighbor = dest - offset.
var dirOffset = [4][2]int{
	Down:  {0, 1},
	Left:  {-1, 0},
	Up:    {0, -1},
	Right: {1, 0},
}

// Neighbor pairs a board position with the Direction a tile moving from
// that position into the empty cell would travel.
type Neighbor struct {
	Pos Pos
	Dir Direction
}

// moveTable holds, for each of the 25 positions, its up-to-four
// neighbors and the direction a tile sliding from each into that
// position represents. Computed once and shared by every solver — the
// geometry never changes, only which cell is currently empty.
var moveTable = sync.OnceValue(computeMoveTable)

// NeighborsOf returns the precomputed neighbor list for position p, 0 to
// 4 entries depending on how many sides of the grid p touches.
func NeighborsOf(p Pos) []Neighbor {
	return moveTable()[p]
}

func computeMoveTable() [NumCells][]Neighbor {
	var table [NumCells][]Neighbor
	for p := Pos(0); p < NumCells; p++ {
		row, col := RowOf(p), ColOf(p)
		for d := Direction(0); d < 4; d++ {
			dc, dr := dirOffset[d][0], dirOffset[d][1]
			nr, nc := row-dr, col-dc
			if nr < 0 || nr >= Height || nc < 0 || nc >= Width {
				continue
			}
			table[p] = append(table[p], Neighbor{Pos: PosOf(nr, nc), Dir: d})
		}
	}
	return table
}
