package trie

import "errors"

// ErrDanglingChild indicates a non-leaf container held a child index
// pointing outside the arena — an internal invariant violation, never
// a recoverable input error. Callers encountering it have found a bug
// in this package, not bad input.
var ErrDanglingChild = errors.New("trie: dangling child pointer")
