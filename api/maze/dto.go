// Package mazeapi provides the HTTP controller, request and response
// types, and in-memory storage for mazes.
package mazeapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazeagent/gridgraph"
	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/search"
)

// CreateMazeRequest asks for a generated maze. Omitted fields use the
// server defaults; a zero or missing seed picks one from the clock.
// Layout is "random" (default) or "perfect".
type CreateMazeRequest struct {
	Size            *int            `json:"size" binding:"omitempty,min=2,max=200"`
	WallProbability *float64        `json:"wallProbability" binding:"omitempty,min=0,max=1"`
	Seed            int64           `json:"seed"`
	Layout          string          `json:"layout"`
	Solvable        bool            `json:"solvable"`
	Start           *gridgraph.Cell `json:"start"`
	Goal            *gridgraph.Cell `json:"goal"`
}

// ImportMazeRequest uploads a maze in the text codec, one string per row.
type ImportMazeRequest struct {
	Rows []string `json:"rows" binding:"required,min=1,max=200"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID     uuid.UUID        `json:"id"`
	Size   int              `json:"size"`
	Start  gridgraph.Cell   `json:"start"`
	Goal   gridgraph.Cell   `json:"goal"`
	Rows   []string         `json:"rows"`
	Opened []gridgraph.Cell `json:"opened,omitempty"`
}

// SolveRequest runs one strategy. Start and Goal default to the maze's own.
type SolveRequest struct {
	Strategy      string          `json:"strategy"`
	Start         *gridgraph.Cell `json:"start"`
	Goal          *gridgraph.Cell `json:"goal"`
	MaxExpansions int             `json:"maxExpansions" binding:"min=0"`
}

// RaceRequest runs several strategies concurrently; none means all.
type RaceRequest struct {
	Strategies    []string        `json:"strategies"`
	Start         *gridgraph.Cell `json:"start"`
	Goal          *gridgraph.Cell `json:"goal"`
	MaxExpansions int             `json:"maxExpansions" binding:"min=0"`
}

// SolveResponse is the outcome of one search. TimeTakenMs is wall time
// for the request's search work.
type SolveResponse struct {
	Strategy    search.Strategy  `json:"strategy"`
	Found       bool             `json:"found"`
	Path        []gridgraph.Cell `json:"path"`
	Steps       int              `json:"steps"`
	Expanded    int              `json:"expanded"`
	Enqueued    int              `json:"enqueued"`
	Truncated   bool             `json:"truncated"`
	TimeTakenMs float64          `json:"timeTakenMs"`
}

// RaceResponse lists results in request order.
type RaceResponse struct {
	Results     []SolveResponse `json:"results"`
	TimeTakenMs float64         `json:"timeTakenMs"`
}

func newMazeResponse(id uuid.UUID, m *maze.Maze) MazeResponse {
	return MazeResponse{
		ID:     id,
		Size:   m.Grid.Size(),
		Start:  m.Start,
		Goal:   m.Goal,
		Rows:   m.Grid.Rows(),
		Opened: m.Opened,
	}
}

func newSolveResponse(r search.Result, elapsed time.Duration) SolveResponse {
	return SolveResponse{
		Strategy:    r.Strategy,
		Found:       r.Found,
		Path:        r.Path,
		Steps:       r.Steps(),
		Expanded:    r.Expanded,
		Enqueued:    r.Enqueued,
		Truncated:   r.Truncated,
		TimeTakenMs: millis(elapsed),
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
