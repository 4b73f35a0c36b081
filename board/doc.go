// Package board defines the 5×5 Magic Block grid, its compact 3-bit-per-cell
// encoding, 90° rotation, and the per-position move table.
//
// What
//
//   - Board is a 25-cell, row-major grid of Color.
//   - Color packs into 3 bits; a full Board packs into a 75-bit fingerprint
//     (Fingerprint), and each row packs into a 15-bit RowFingerprint — the
//     key used by package trie to deduplicate visited states.
//   - RotateCW rotates a Board 90° clockwise; composing it gives 180°/270°.
//   - The move table (NeighborsOf) lists, for every position, the up-to-four
//     in-bounds neighbors and the Direction a tile travels when it slides
//     from that neighbor into the empty cell.
//
// Why
//
//   - A dense, comparable, hashable board representation is what lets the
//     sparse trie (package trie) and the forward/backward solvers
//     (package solver) dedupe millions of states cheaply.
//
// Complexity
//
//   - RotateCW, Fingerprint, RowFingerprint, Swap: O(1) (fixed 25-cell grid).
//
// Errors
//
//   - ErrNoEmptyCell     no Empty cell found where exactly one is required.
//   - ErrMultipleEmpty   more than one Empty cell found.
//   - ErrUnknownInPlayer a player board (no don't-care cells allowed) holds Unknown.
//   - ErrTooManyOfColor  a real color appears more than four times.
//   - ErrEmptyOutsideCenter a backward board's Empty cell lies outside the center 3×3.
package board
