package search

import (
	"fmt"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// ValidatePath checks that path is a legal route on g from start to goal:
// non-empty, first cell start, last cell goal, every cell passable,
// consecutive cells orthogonally adjacent, and no cell repeated.
// Returns nil or an error wrapping ErrInvalidPath that names the index.
// Complexity: O(len(path)).
func ValidatePath(g *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, goal)
	}

	seen := make(map[gridgraph.Cell]int, len(path))
	for i, c := range path {
		if !g.Passable(c) {
			return fmt.Errorf("%w: index %d %v is not passable", ErrInvalidPath, i, c)
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: index %d repeats %v from index %d", ErrInvalidPath, i, c, j)
		}
		seen[c] = i
		if i > 0 && !path[i-1].Adjacent(c) {
			return fmt.Errorf("%w: index %d %v is not adjacent to %v", ErrInvalidPath, i, c, path[i-1])
		}
	}
	return nil
}
