// Package puzzle is the I/O layer around the core solver: reading the
// 9-line puzzle text format into a pair of board.Board values, and
// rendering a solver result back out as a human-readable move list.
//
// puzzle depends only on board — it knows nothing about solver.Solve,
// keeping file-format concerns separate from the search engine.
package puzzle
