// SPDX-License-Identifier: MIT
// Package: mazeagent/maze
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics; it returns errors.
//   • Determinism is explicit: WithSeed or WithRand. Without either the
//     generator seeds from the clock.

package maze

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// Option customizes Generate by mutating a mazeConfig before generation.
type Option func(*mazeConfig)

// WithSize sets the side length N. Panics if n < MinSize.
func WithSize(n int) Option {
	if n < MinSize {
		panic(fmt.Sprintf("maze: WithSize(%d) below minimum %d", n, MinSize))
	}
	return func(c *mazeConfig) {
		c.size = n
	}
}

// WithWallProbability sets the chance that a cell becomes a wall.
// Panics unless 0 <= p <= 1.
func WithWallProbability(p float64) Option {
	if p < 0 || p > 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("maze: WithWallProbability(%v) outside [0,1]", p))
	}
	return func(c *mazeConfig) {
		c.wallProb = p
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *mazeConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *mazeConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStart places the start cell. Bounds are checked by Generate.
func WithStart(cell gridgraph.Cell) Option {
	return func(c *mazeConfig) {
		c.start, c.hasStart = cell, true
	}
}

// WithGoal places the goal cell. Bounds are checked by Generate.
func WithGoal(cell gridgraph.Cell) Option {
	return func(c *mazeConfig) {
		c.goal, c.hasGoal = cell, true
	}
}

// WithSolvable makes Generate open the fewest walls needed to connect
// start and goal.
func WithSolvable() Option {
	return func(c *mazeConfig) {
		c.solvable = true
	}
}

// WithLayout selects the fill strategy. Panics on an unknown layout.
func WithLayout(l Layout) Option {
	if l != Random && l != Perfect {
		panic(fmt.Sprintf("maze: WithLayout(%v)", l))
	}
	return func(c *mazeConfig) {
		c.layout = l
	}
}
