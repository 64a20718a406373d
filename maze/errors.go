// SPDX-License-Identifier: MIT
// Package: mazeagent/maze
//
// errors.go - sentinel errors for the maze package.
//
// Contract:
//   • Generate and FromGrid return these (possibly wrapped with %w).
//   • Option constructors panic instead; they never produce these errors.

package maze

import "errors"

var (
	// ErrEndpointOutOfBounds indicates a start or goal outside the N×N grid.
	ErrEndpointOutOfBounds = errors.New("maze: endpoint out of bounds")

	// ErrSameEndpoints indicates start and goal are the same cell.
	ErrSameEndpoints = errors.New("maze: start and goal must differ")

	// ErrNilGrid indicates FromGrid was given a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrUnknownLayout indicates a layout name ParseLayout does not know.
	ErrUnknownLayout = errors.New("maze: unknown layout")
)
