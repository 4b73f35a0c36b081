// Package trie implements a sparse, arena-backed visited-state index: a
// 5-level trie keyed on the 15-bit row fingerprints of a board.Board
// (one level per grid row), used by package solver to deduplicate
// boards and to intersect a
// forward-reachable trie against a backward-reachable one layer by
// layer.
//
// What
//
//   - Index.TryInsert(rows) reports whether a 5-row path was newly added.
//   - Index.Size() is the total count of distinct boards ever inserted.
//   - Index.Intersect(other, compatible, yield) walks both tries row by
//     row, pruning any branch whose row pair fails compatible, and calls
//     yield once per fully compatible 5-row pair.
//
// Why
//
//   - A flat hash set of 75-bit fingerprints would lose the ability to
//     prune incompatible subtrees during intersection before reaching
//     the leaf level. Structuring the index by row lets Intersect
//     discard an entire forward/backward subtree the moment row K is
//     provably incompatible, instead of comparing full 75-bit values
//     pairwise.
//
// Representation
//
//   - Each non-leaf level holds a sorted []uint16 of observed row
//     fingerprints and a parallel []int32 of child arena indices,
//     index-aligned so rows[i] maps to children[i]. Sorting gives O(log
//     n) lookup and a deterministic iteration order, which intersection
//     depends on to make pruning decisions repeatable.
//   - Containers are pool-allocated in a single growable arena
//     ([]container) with 32-bit child indices rather than pointers,
//     following a leveled-node/pool-index design: growing one slice
//     beats scattering one heap object per node. Arena index 0 is
//     permanently reserved as "no child", which is also how Index
//     represents "root not yet created" — the root is allocated lazily
//     on the first insert.
//   - A level-4 (leaf) container only ever populates rows; its children
//     slice stays nil — a leaf is a container whose .rows is all that
//     was ever observed at that depth.
//
// Complexity (n = number of rows held in one container)
//
//   - TryInsert:  O(H·n) where H = board.Height (5 levels): the binary
//     search per level is O(log n), but inserting a new row shifts the
//     sorted slice, which is O(n). Inserts are not O(1) amortized.
//   - Intersect:  O(worst-case product of per-level container sizes),
//     pruned aggressively by the compatible predicate at every level.
package trie
