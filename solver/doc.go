// Package solver implements the bidirectional BFS engine that solves a
// Magic Block puzzle: find a minimum-length move sequence that brings
// the player board's center 3×3 into agreement with a target pattern
// (optionally under any of its four 90° rotations).
//
// A forward solver expands states from the player board; a backward
// solver expands states from one seed per (rotation, candidate empty
// cell) pair derived from the target pattern. Both solvers insert every
// state they discover into a package trie Index, which also answers the
// cross-product "compatible row" query the driver uses to detect that a
// forward-reachable board and a backward-reachable board describe the
// same physical position.
//
// # Errors
//
// Solve returns ErrInvalidPlayerBoard or ErrInvalidTargetBoard for
// malformed input (wrapping the board package's own validation error),
// and ErrOptionViolation for a bad Option. "No solution within the
// configured depth caps" is not an error: it is a normal, recoverable
// outcome of a bounded search, reported through Result.Solved == false
// rather than by returning a non-nil error.
//
// # Path reconstruction
//
// Rather than carrying a growing move sequence inside every frontier
// node, each solver instead records one parent fingerprint and one
// direction per newly discovered board, and reconstructs a path after
// the search by walking those parent links back to the root. A move path is only ever assembled once, when the
// driver has a confirmed answer to splice; this is simpler than
// carrying a value-copied move sequence through every BFS expansion
// step, and it avoids the backing-array aliasing a small-sequence
// inline-storage optimization would otherwise need careful copy-on-grow
// logic to avoid.
package solver
