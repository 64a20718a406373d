// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×4 grid.
//
// Grid ('#' = wall):
//
//	. . # .
//	. # # .
//	# # . .
//	. # . .
//
// Expected: 3 regions of sizes 3, 6 and 1.
//
// Complexity: O(N²·4) time, O(N²) memory.
func TestConnectedComponents_Simple(t *testing.T) {
	gg := MustParse("..#.\n.##.\n##..\n.#..")

	comps := gg.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("got %d components; want 3", len(comps))
	}

	sizes := make([]int, 0, len(comps))
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	want := []int{1, 3, 6}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if comps[0][0] != (Cell{Row: 0, Col: 0}) {
		t.Errorf("first component root = %v; want (0,0)", comps[0][0])
	}
}

// TestConnectedComponents_EdgeCases tests edge cases:
//   - all walls → zero components
//   - single open cell → one component of size 1
//   - markers count as passable
func TestConnectedComponents_EdgeCases(t *testing.T) {
	if comps := MustParse("##\n##").ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all walls: got %d components; want 0", len(comps))
	}

	comps := MustParse("#.\n##").ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("single cell: got %v; want one component of size 1", comps)
	}

	comps = MustParse("S.\n#G").ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Errorf("markers: got %v; want one component of size 3", comps)
	}
}

// TestReachable verifies the region around a cell and the empty set for walls.
func TestReachable(t *testing.T) {
	gg := MustParse("S.#\n###\n#.G")

	got := gg.Reachable(Cell{Row: 0, Col: 0})
	want := map[Cell]bool{{0, 0}: true, {0, 1}: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable(0,0) = %v; want %v", got, want)
	}
	if got[Cell{Row: 2, Col: 2}] {
		t.Errorf("goal must not be reachable from start")
	}
	if r := gg.Reachable(Cell{Row: 1, Col: 1}); len(r) != 0 {
		t.Errorf("Reachable(wall) = %v; want empty", r)
	}
	if r := gg.Reachable(Cell{Row: -1, Col: 0}); len(r) != 0 {
		t.Errorf("Reachable(outside) = %v; want empty", r)
	}
}
