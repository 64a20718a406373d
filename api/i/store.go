package i

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazeagent/maze"
)

// MazeStore keeps mazes by ID. Implementations must be safe for concurrent use.
type MazeStore interface {
	Save(m *maze.Maze) uuid.UUID
	Get(id uuid.UUID) (*maze.Maze, bool)
	Delete(id uuid.UUID) bool
	Len() int
}
