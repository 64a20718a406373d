// SPDX-License-Identifier: MIT
// Package: mazeagent/maze
//
// layout.go - cell fill strategies.
//
// Random:  every cell is a wall with probability wallProb (default).
// Perfect: rooms sit on even coordinates; Wilson's loop-erased random walk
//          carves a spanning tree between them, so exactly one simple route
//          joins any two rooms. wallProb is ignored. For even N the last row
//          and column stay open as a border corridor.

package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// Layout selects how Generate fills the grid.
type Layout uint8

const (
	// Random draws each cell independently.
	Random Layout = iota
	// Perfect carves a spanning-tree maze of rooms and corridors.
	Perfect
)

// String returns "random" or "perfect".
func (l Layout) String() string {
	switch l {
	case Random:
		return "random"
	case Perfect:
		return "perfect"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout decodes a layout name, case-insensitively.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return Random, nil
	case "perfect", "wilson":
		return Perfect, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// fillRandom blocks each cell with probability p, drawing in row-major order.
func fillRandom(n int, p float64, rng *rand.Rand) [][]gridgraph.CellState {
	states := make([][]gridgraph.CellState, n)
	for r := range states {
		states[r] = make([]gridgraph.CellState, n)
		for c := range states[r] {
			if rng.Float64() < p {
				states[r][c] = gridgraph.Blocked
			}
		}
	}
	return states
}

// roomSteps are the four moves between rooms, two cells apart.
var roomSteps = [4]gridgraph.Cell{{Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: -2}, {Row: -2, Col: 0}}

// fillPerfect runs Wilson's algorithm over the rooms of an n×n grid.
func fillPerfect(n int, rng *rand.Rand) [][]gridgraph.CellState {
	states := make([][]gridgraph.CellState, n)
	for r := range states {
		states[r] = make([]gridgraph.CellState, n)
		for c := range states[r] {
			states[r][c] = gridgraph.Blocked
		}
	}
	if n%2 == 0 {
		for k := 0; k < n; k++ {
			states[n-1][k] = gridgraph.Open
			states[k][n-1] = gridgraph.Open
		}
	}

	k := (n + 1) / 2 // rooms per side
	room := func(idx int) gridgraph.Cell { return gridgraph.Cell{Row: 2 * (idx / k), Col: 2 * (idx % k)} }
	index := func(c gridgraph.Cell) int { return (c.Row/2)*k + c.Col/2 }
	inRange := func(c gridgraph.Cell) bool { return c.Row >= 0 && c.Row < 2*k-1 && c.Col >= 0 && c.Col < 2*k-1 }

	inTree := make([]bool, k*k)
	root := rng.Intn(k * k)
	inTree[root] = true
	rc := room(root)
	states[rc.Row][rc.Col] = gridgraph.Open

	next := make([]int, k*k) // last step taken out of each room, loop-erased by overwrite
	for from := 0; from < k*k; from++ {
		if inTree[from] {
			continue
		}
		// walk until the tree is hit
		for cur := from; !inTree[cur]; {
			c := room(cur)
			var nb gridgraph.Cell
			for {
				nb = c.Add(roomSteps[rng.Intn(len(roomSteps))])
				if inRange(nb) {
					break
				}
			}
			next[cur] = index(nb)
			cur = next[cur]
		}
		// carve the loop-erased path
		for cur := from; !inTree[cur]; cur = next[cur] {
			a, b := room(cur), room(next[cur])
			states[a.Row][a.Col] = gridgraph.Open
			states[(a.Row+b.Row)/2][(a.Col+b.Col)/2] = gridgraph.Open
			inTree[cur] = true
		}
	}
	return states
}
