package solver

import (
	"github.com/katalvlaran/magicblock/board"
	"github.com/katalvlaran/magicblock/trie"
)

// backwardSolver expands BFS states from every (rotation, candidate
// empty cell) seed derived from the target pattern. Its goal test is
// never run directly: the driver detects completion via trie
// intersection with the forward solver.
type backwardSolver struct {
	visited *trie.Index
	nodes   map[board.Fingerprint]bwNode
	current []board.Fingerprint
	next    []board.Fingerprint
	depth   int
}

// newBackwardSolver builds one seed board per (rotation, candidate
// empty cell) pair and inserts them all as the root frontier.
func newBackwardSolver(rotations []rotationPattern) *backwardSolver {
	bs := &backwardSolver{
		visited: trie.NewIndex(),
		nodes:   make(map[board.Fingerprint]bwNode),
	}
	for _, r := range rotations {
		center := r.pattern.Center()
		for _, localIdx := range seedPositions(center) {
			seed := r.pattern
			seed[centerPos(localIdx)] = board.Empty

			rows := board.RowsOf(&seed)
			if !bs.visited.TryInsert(rows) {
				continue // two seeds collapsed to the same board (symmetric rotation)
			}
			fp := board.ToFingerprint(&seed)
			bs.nodes[fp] = bwNode{board: seed, empty: centerPos(localIdx), rotationID: r.id}
			bs.current = append(bs.current, fp)
		}
	}
	return bs
}

// expand advances the backward frontier by exactly one BFS layer.
func (bs *backwardSolver) expand() {
	bs.next = bs.next[:0]
	for _, parentFP := range bs.current {
		parent := bs.nodes[parentFP]
		for _, nb := range board.NeighborsOf(parent.empty) {
			if parent.hasParent && nb.Dir == board.Opposite(parent.dir) {
				continue
			}
			child := parent.board
			child.Swap(parent.empty, nb.Pos)

			rows := board.RowsOf(&child)
			if !bs.visited.TryInsert(rows) {
				continue
			}
			childFP := board.ToFingerprint(&child)
			bs.nodes[childFP] = bwNode{
				board:      child,
				empty:      nb.Pos,
				hasParent:  true,
				parent:     parentFP,
				dir:        nb.Dir,
				rotationID: parent.rotationID,
			}
			bs.next = append(bs.next, childFP)
		}
	}
	bs.current, bs.next = bs.next, bs.current
	bs.depth++
}

// pathTo reconstructs the directions applied from the seed board to
// fp, seed-first order — these are tile-motion directions exactly as
// recorded; splicing inverts and reverses them, since walking this half
// of the solution backward to forward means undoing each move in turn.
func (bs *backwardSolver) pathTo(fp board.Fingerprint) (dirs []board.Direction, rotationID int) {
	rotationID = bs.nodes[fp].rotationID
	var rev []board.Direction
	for {
		n, ok := bs.nodes[fp]
		if !ok || !n.hasParent {
			break
		}
		rev = append(rev, n.dir)
		fp = n.parent
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, rotationID
}
