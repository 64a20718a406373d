package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (everything except Blocked) under 4-connectivity.
// Returns a slice of components; each component lists its cells in the
// order the flood fill reached them. Components are ordered by their
// first cell in row-major order.
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and output.
func (gg *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.size*gg.size)
	var comps [][]Cell

	for r := 0; r < gg.size; r++ {
		for c := 0; c < gg.size; c++ {
			root := Cell{Row: r, Col: c}
			if !gg.Passable(root) || seen[gg.index(root)] {
				continue
			}
			comps = append(comps, gg.flood(root, seen))
		}
	}
	return comps
}

// Reachable returns the set of passable cells reachable from `from`,
// including `from` itself. A Blocked or out-of-bounds origin yields an
// empty set.
// Complexity: O(N²).
func (gg *Grid) Reachable(from Cell) map[Cell]bool {
	out := make(map[Cell]bool)
	if !gg.Passable(from) {
		return out
	}
	for _, c := range gg.flood(from, make([]bool, gg.size*gg.size)) {
		out[c] = true
	}
	return out
}

// flood collects the component containing root, marking seen as it goes.
func (gg *Grid) flood(root Cell, seen []bool) []Cell {
	queue := []Cell{root}
	seen[gg.index(root)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range gg.Neighbors(queue[qi]) {
			if i := gg.index(nb); !seen[i] {
				seen[i] = true
				queue = append(queue, nb)
			}
		}
	}
	return queue
}
