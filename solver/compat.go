package solver

import "github.com/katalvlaran/magicblock/board"

// compatibleRow is the single authoritative compatibility predicate
// applied to one packed 15-bit row from each trie: for every cell,
// either the backward cell is Unknown and the forward cell is not
// Empty, or the two cells are exactly equal; any other pairing rejects
// the whole row (and, via package trie's pruning, the whole subtree
// beneath it). The two cases must stay exactly this shape: a "don't
// care" backward cell still forbids the forward board's hole from
// landing anywhere the backward seed didn't also mark as its hole.
func compatibleRow(fwRow, bwRow uint16) bool {
	for c := 0; c < board.Width; c++ {
		shift := uint(c * board.ColorBits)
		fwCell := board.Color((fwRow >> shift) & board.ColorMask)
		bwCell := board.Color((bwRow >> shift) & board.ColorMask)

		if bwCell == board.Unknown {
			if fwCell == board.Empty {
				return false
			}
			continue
		}
		if fwCell != bwCell {
			return false
		}
	}
	return true
}
