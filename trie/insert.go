package trie

import "sort"

// TryInsert inserts the five row fingerprints of one board, descending
// through (or creating) a child container at each level. It returns
// true iff the full 5-row path was newly added — i.e. this exact board
// had never been inserted before.
func (idx *Index) TryInsert(rows Rows) bool {
	if idx.root == noChild {
		idx.root = idx.newContainer()
	}
	cur := idx.root
	for level := 0; level < len(rows); level++ {
		c := &idx.arena[cur]
		key := rows[level]
		pos, found := search(c.rows, key)
		if level == len(rows)-1 {
			if found {
				return false
			}
			insertRow(c, pos, key)
			idx.size++
			return true
		}
		if !found {
			child := idx.newContainer()
			insertRowAndChild(c, pos, key, child)
			cur = child
		} else {
			cur = c.children[pos]
		}
	}
	panic("trie: unreachable: rows has zero length")
}

// Contains reports whether the exact 5-row path rows was ever inserted,
// without mutating the index.
func (idx *Index) Contains(rows Rows) bool {
	cur := idx.root
	for level := 0; level < len(rows); level++ {
		if cur == noChild {
			return false
		}
		c := &idx.arena[cur]
		pos, found := search(c.rows, rows[level])
		if !found {
			return false
		}
		if level == len(rows)-1 {
			return true
		}
		cur = c.children[pos]
	}
	return false
}

func (idx *Index) newContainer() int32 {
	idx.arena = append(idx.arena, container{})
	return int32(len(idx.arena) - 1)
}

// search returns the index of key in the sorted slice rows and whether
// it was found; if not found, the index is where key would be inserted
// to keep rows sorted.
func search(rows []uint16, key uint16) (pos int, found bool) {
	pos = sort.Search(len(rows), func(i int) bool { return rows[i] >= key })
	found = pos < len(rows) && rows[pos] == key
	return pos, found
}

// insertRow inserts key at pos in c.rows, shifting later entries right.
func insertRow(c *container, pos int, key uint16) {
	c.rows = append(c.rows, 0)
	copy(c.rows[pos+1:], c.rows[pos:])
	c.rows[pos] = key
}

// insertRowAndChild inserts key/child at pos in the index-aligned
// rows/children slices, shifting later entries right in both.
func insertRowAndChild(c *container, pos int, key uint16, child int32) {
	insertRow(c, pos, key)
	c.children = append(c.children, 0)
	copy(c.children[pos+1:], c.children[pos:])
	c.children[pos] = child
}
