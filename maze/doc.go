// SPDX-License-Identifier: MIT

// Package maze generates random square mazes for the search engine.
//
// Every cell is independently a wall with a configurable probability; the
// start and goal cells are then stamped as passable markers. The default is
// a 20×20 grid at 20% walls from (0,0) to (19,19).
//
// Generation is reproducible with WithSeed or WithRand. WithSolvable
// repairs the maze by opening the fewest walls between start and goal
// (gridgraph.MinBreach), so a path is guaranteed.
//
//	m, err := maze.Generate(maze.WithSize(30), maze.WithSeed(42), maze.WithSolvable())
//	if err != nil { ... }
//	res, _ := search.AStarSearch(m.Grid, m.Start, m.Goal)
//
// Option constructors panic on meaningless values (size below 2, a
// probability outside [0,1], a nil RNG). Generate returns
// ErrEndpointOutOfBounds or ErrSameEndpoints for bad endpoints.
package maze
