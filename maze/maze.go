// SPDX-License-Identifier: MIT
// Package: mazeagent/maze
//
// maze.go - random maze generation and loading.
//
// Algorithm (Generate):
//   1. Resolve config; check endpoints are in bounds and distinct.
//   2. Fill by layout. Random: for every cell draw r ∈ [0,1);
//      r < wallProb → Blocked, else Open. Perfect: see layout.go.
//   3. Stamp Start and Goal over whatever was drawn.
//   4. If solvable: MinBreach(start, goal) and open every wall on that path.
//
// Random draws in row-major order, one Float64 per cell, so a seed fixes the maze.

package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// Maze is a generated or loaded grid together with its endpoints.
type Maze struct {
	Grid  *gridgraph.Grid
	Start gridgraph.Cell
	Goal  gridgraph.Cell

	// Opened lists walls removed by WithSolvable, in path order.
	Opened []gridgraph.Cell
}

// Generate builds a random maze.
// Returns ErrEndpointOutOfBounds or ErrSameEndpoints for bad endpoints.
// Complexity: O(N²) time and memory.
func Generate(opts ...Option) (*Maze, error) {
	cfg := newMazeConfig(opts...)
	n := cfg.size
	if err := checkEndpoints(n, cfg.start, cfg.goal); err != nil {
		return nil, err
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var states [][]gridgraph.CellState
	if cfg.layout == Perfect {
		states = fillPerfect(n, rng)
	} else {
		states = fillRandom(n, cfg.wallProb, rng)
	}
	states[cfg.start.Row][cfg.start.Col] = gridgraph.Start
	states[cfg.goal.Row][cfg.goal.Col] = gridgraph.Goal

	g, err := gridgraph.New(states)
	if err != nil {
		return nil, fmt.Errorf("maze: build grid: %w", err)
	}
	m := &Maze{Grid: g, Start: cfg.start, Goal: cfg.goal}
	if cfg.solvable {
		if err = m.open(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// open removes the walls on the cheapest breach between start and goal.
func (m *Maze) open() error {
	path, cost, err := m.Grid.MinBreach(m.Start, m.Goal)
	if err != nil {
		return fmt.Errorf("maze: breach: %w", err)
	}
	if cost == 0 {
		return nil
	}
	changes := make(map[gridgraph.Cell]gridgraph.CellState, cost)
	for _, c := range path {
		if m.Grid.State(c) == gridgraph.Blocked {
			changes[c] = gridgraph.Open
			m.Opened = append(m.Opened, c)
		}
	}
	g, err := m.Grid.WithStates(changes)
	if err != nil {
		return fmt.Errorf("maze: open walls: %w", err)
	}
	m.Grid = g
	return nil
}

// FromGrid wraps an existing grid. Start and goal come from the grid's
// markers; a missing marker defaults to (0,0) or (N-1,N-1).
func FromGrid(g *gridgraph.Grid) (*Maze, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Size()
	start, ok := g.Start()
	if !ok {
		start = gridgraph.Cell{}
	}
	goal, ok := g.Goal()
	if !ok {
		goal = gridgraph.Cell{Row: n - 1, Col: n - 1}
	}
	if err := checkEndpoints(n, start, goal); err != nil {
		return nil, err
	}
	return &Maze{Grid: g, Start: start, Goal: goal}, nil
}

// Solvable reports whether the goal is reachable from the start.
func (m *Maze) Solvable() bool {
	return m.Grid.Reachable(m.Start)[m.Goal]
}

// String renders the grid with the text codec.
func (m *Maze) String() string {
	return m.Grid.String()
}

// checkEndpoints validates start and goal against an n×n grid.
func checkEndpoints(n int, start, goal gridgraph.Cell) error {
	in := func(c gridgraph.Cell) bool { return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n }
	switch {
	case !in(start):
		return fmt.Errorf("%w: start %v in %dx%d", ErrEndpointOutOfBounds, start, n, n)
	case !in(goal):
		return fmt.Errorf("%w: goal %v in %dx%d", ErrEndpointOutOfBounds, goal, n, n)
	case start == goal:
		return fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}
	return nil
}
