// SPDX-License-Identifier: MIT
// Package: mazeagent/maze
//
// config.go - internal configuration and defaults.
//
// Defaults (match the classic 20×20 demo maze):
//   • size      = 20
//   • wallProb  = 0.2
//   • rng       = nil        (resolved to a time-seeded source in Generate)
//   • start     = (0,0)
//   • goal      = (N-1,N-1)  (resolved after size is known)
//   • layout    = Random
//   • solvable  = false

package maze

import (
	"math/rand"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// mazeConfig aggregates all generator knobs.
type mazeConfig struct {
	size     int
	wallProb float64
	rng      *rand.Rand
	layout   Layout

	start, goal       gridgraph.Cell
	hasStart, hasGoal bool

	solvable bool
}

const (
	// DefaultSize is the side length used when WithSize is not given.
	DefaultSize = 20
	// DefaultWallProbability is the per-cell wall chance used by default.
	DefaultWallProbability = 0.2
	// MinSize is the smallest grid that can hold distinct start and goal.
	MinSize = 2
)

// newMazeConfig applies opts in order over the defaults and resolves the
// endpoints. Later options override earlier ones.
func newMazeConfig(opts ...Option) mazeConfig {
	cfg := mazeConfig{
		size:     DefaultSize,
		wallProb: DefaultWallProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasStart {
		cfg.start = gridgraph.Cell{}
	}
	if !cfg.hasGoal {
		cfg.goal = gridgraph.Cell{Row: cfg.size - 1, Col: cfg.size - 1}
	}
	return cfg
}
