package trie

import "fmt"

// RowCompatible decides whether a forward-trie row and a backward-trie
// row at the same level describe compatible board rows. Package solver
// supplies the concrete predicate; this package is agnostic to what
// "compatible" means.
type RowCompatible func(fwRow, bwRow uint16) bool

// PairFunc receives one fully compatible 5-row pair discovered by
// Intersect. Returning false stops the walk early, the same
// range-over-func convention Go's standard iterators use.
type PairFunc func(fwRows, bwRows Rows) bool

// Intersect walks idx and other row by row from the root, pruning any
// branch whose row pair fails compatible, and invokes yield once for
// every complete 5-level compatible path pair. It returns early, without
// visiting further pairs, once yield returns false.
//
// Complexity: O(product of per-level container sizes actually visited),
// which the compatible predicate keeps small in practice by rejecting
// whole subtrees at the earliest incompatible row.
func (idx *Index) Intersect(other *Index, compatible RowCompatible, yield PairFunc) {
	if idx.root == noChild || other.root == noChild {
		return
	}
	var fwPath, bwPath Rows
	idx.walk(idx.root, other, other.root, 0, compatible, &fwPath, &bwPath, yield)
}

// walk recurses one trie level at a time. It returns false once yield
// has asked to stop, so callers up the stack can unwind without
// visiting further siblings.
func (idx *Index) walk(
	fwIdx int32, other *Index, bwIdx int32, level int,
	compatible RowCompatible, fwPath, bwPath *Rows, yield PairFunc,
) bool {
	fwC := idx.containerAt(fwIdx)
	bwC := other.containerAt(bwIdx)
	leaf := level == len(fwPath)-1

	for i, fwRow := range fwC.rows {
		for j, bwRow := range bwC.rows {
			if !compatible(fwRow, bwRow) {
				continue
			}
			fwPath[level] = fwRow
			bwPath[level] = bwRow

			if leaf {
				if !yield(*fwPath, *bwPath) {
					return false
				}
				continue
			}

			if !idx.walk(fwC.children[i], other, bwC.children[j], level+1, compatible, fwPath, bwPath, yield) {
				return false
			}
		}
	}
	return true
}

// containerAt fetches arena[i], panicking with ErrDanglingChild if i is
// out of bounds — an internal invariant violation, not a recoverable
// input error.
func (idx *Index) containerAt(i int32) *container {
	if i <= noChild || int(i) >= len(idx.arena) {
		panic(fmt.Errorf("%w: index %d (arena size %d)", ErrDanglingChild, i, len(idx.arena)))
	}
	return &idx.arena[i]
}
