package solver

import (
	"github.com/katalvlaran/magicblock/board"
	"github.com/katalvlaran/magicblock/trie"
)

// forwardSolver expands BFS states from the player board. It owns its
// visited trie and a map of every board it has ever discovered, keyed
// by fingerprint, so a confirmed goal's path can be reconstructed by
// walking parent pointers (see doc.go).
type forwardSolver struct {
	visited *trie.Index
	nodes   map[board.Fingerprint]fwNode
	current []board.Fingerprint
	next    []board.Fingerprint
	depth   int

	rotations []rotationPattern // for the direct center-match goal test
}

// newForwardSolver seeds the root frontier with the player board.
func newForwardSolver(player board.Board, rotations []rotationPattern) *forwardSolver {
	fs := &forwardSolver{
		visited:   trie.NewIndex(),
		nodes:     make(map[board.Fingerprint]fwNode),
		rotations: rotations,
	}
	empty, _ := player.FindEmpty() // player board already validated by Solve
	fp := board.ToFingerprint(&player)
	fs.visited.TryInsert(board.RowsOf(&player))
	fs.nodes[fp] = fwNode{board: player, empty: empty}
	fs.current = []board.Fingerprint{fp}
	return fs
}

// directGoal reports whether b's center already matches one of the
// search's rotations exactly as given, so a forward-only solution can
// be recognized without ever needing a backward-side intersection. It
// returns the matching rotation's id.
func (fs *forwardSolver) directGoal(b *board.Board) (rotationID int, ok bool) {
	for _, r := range fs.rotations {
		if b.CenterMatches(&r.pattern) {
			return r.id, true
		}
	}
	return 0, false
}

// expand advances the forward frontier by exactly one BFS layer,
// returning the fingerprint of a directly-matching goal board if one
// was discovered at this layer.
func (fs *forwardSolver) expand() (goalFP board.Fingerprint, rotationID int, found bool) {
	fs.next = fs.next[:0]
	for _, parentFP := range fs.current {
		parent := fs.nodes[parentFP]
		for _, nb := range board.NeighborsOf(parent.empty) {
			if parent.hasParent && nb.Dir == board.Opposite(parent.dir) {
				continue // would just undo the previous move
			}
			child := parent.board
			child.Swap(parent.empty, nb.Pos)

			rows := board.RowsOf(&child)
			if !fs.visited.TryInsert(rows) {
				continue
			}
			childFP := board.ToFingerprint(&child)
			fs.nodes[childFP] = fwNode{
				board:     child,
				empty:     nb.Pos,
				hasParent: true,
				parent:    parentFP,
				dir:       nb.Dir,
			}
			fs.next = append(fs.next, childFP)

			if !found {
				if rid, ok := fs.directGoal(&child); ok {
					goalFP, rotationID, found = childFP, rid, true
				}
			}
		}
	}
	fs.current, fs.next = fs.next, fs.current
	fs.depth++
	return goalFP, rotationID, found
}

// pathTo reconstructs the directions applied from the player board to
// fp, player-board-first order, by walking parent pointers back to the
// root and reversing once.
func (fs *forwardSolver) pathTo(fp board.Fingerprint) []board.Direction {
	var rev []board.Direction
	for {
		n, ok := fs.nodes[fp]
		if !ok || !n.hasParent {
			break
		}
		rev = append(rev, n.dir)
		fp = n.parent
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
