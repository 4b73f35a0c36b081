package trie

import "github.com/katalvlaran/magicblock/board"

// noChild is the reserved arena index meaning "no child container (or
// no root) here yet". Real containers are allocated starting at index 1.
const noChild int32 = 0

// container is one node of the trie: the set of row fingerprints
// observed at this level, plus — for levels 0..board.Height-2 — the
// arena index of the child continuing each one. Leaf containers (level
// board.Height-1) leave children nil; only rows is meaningful there.
//
// rows is kept sorted ascending so iteration order is deterministic
// and lookups are O(log n) via binary search.
type container struct {
	rows     []uint16
	children []int32
}

// Index is a 5-level sparse trie over board.Height row fingerprints,
// deduplicating boards and supporting layer-by-layer intersection
// against another Index.
type Index struct {
	arena []container
	root  int32 // noChild until the first TryInsert
	size  int
}

// NewIndex returns an empty Index ready for TryInsert.
func NewIndex() *Index {
	// arena[0] is the permanent "no child" sentinel; real containers
	// start at index 1.
	return &Index{arena: make([]container, 1), root: noChild}
}

// Size returns the total number of distinct boards inserted so far.
func (idx *Index) Size() int {
	return idx.size
}

// Rows is the type alias used throughout this package and by package
// solver for a board's five row fingerprints, row 0 first — exactly
// board.RowsOf's return shape, re-declared here so callers need not
// import board just to name it.
type Rows = [board.Height]uint16
