// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestMinBreach_SingleWall tests a 3×3 grid whose middle column is walled.
// Expected: one wall crossed on a path of 3 cells along row 0.
func TestMinBreach_SingleWall(t *testing.T) {
	gg := MustParse("S#.\n.#.\n.#G")

	path, cost, err := gg.MinBreach(Cell{0, 0}, Cell{0, 2})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []Cell{{0, 0}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestMinBreach_ZeroCost tests that an already connected pair needs no breach,
// even when the free route is longer than the walled one.
func TestMinBreach_ZeroCost(t *testing.T) {
	gg := MustParse("S#G\n.#.\n...")

	path, cost, err := gg.MinBreach(Cell{0, 0}, Cell{0, 2})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if len(path) != 7 {
		t.Errorf("len(path) = %d; want 7 (around the wall)", len(path))
	}
	for i := 1; i < len(path); i++ {
		if !path[i-1].Adjacent(path[i]) {
			t.Fatalf("path step %d not adjacent: %v → %v", i, path[i-1], path[i])
		}
	}
}

// TestMinBreach_CountsBlockedEndpoint counts a walled origin as one breach.
func TestMinBreach_CountsBlockedEndpoint(t *testing.T) {
	gg := MustParse("#.\n..")
	_, cost, err := gg.MinBreach(Cell{0, 0}, Cell{1, 1})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
}

// TestMinBreach_Enclosed checks that an enclosed goal costs exactly the walls around one side.
func TestMinBreach_Enclosed(t *testing.T) {
	gg := MustParse("S..\n..#\n.#G")
	path, cost, err := gg.MinBreach(Cell{0, 0}, Cell{2, 2})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if path[0] != (Cell{0, 0}) || path[len(path)-1] != (Cell{2, 2}) {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
}

// TestMinBreach_OutOfBounds rejects endpoints outside the grid.
func TestMinBreach_OutOfBounds(t *testing.T) {
	gg := MustParse("..\n..")
	if _, _, err := gg.MinBreach(Cell{-1, 0}, Cell{1, 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("from outside: got %v; want ErrOutOfBounds", err)
	}
	if _, _, err := gg.MinBreach(Cell{0, 0}, Cell{2, 2}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("to outside: got %v; want ErrOutOfBounds", err)
	}
}
