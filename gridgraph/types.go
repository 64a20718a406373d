// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/mazeagent.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonSquare indicates the row count differs from some row length.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrDuplicateMarker indicates more than one Start or more than one Goal cell.
	ErrDuplicateMarker = errors.New("gridgraph: at most one Start and one Goal cell allowed")
	// ErrUnknownState indicates a cell state or glyph outside Open/Blocked/Start/Goal.
	ErrUnknownState = errors.New("gridgraph: unknown cell state")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoPath indicates no path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// CellState is the content of a single grid cell.
type CellState uint8

const (
	// Open is a free, passable cell.
	Open CellState = iota
	// Blocked is a wall.
	Blocked
	// Start marks the start cell. It is passable.
	Start
	// Goal marks the goal cell. It is passable.
	Goal
)

// Glyphs of the text codec.
const (
	OpenGlyph    = '.'
	BlockedGlyph = '#'
	StartGlyph   = 'S'
	GoalGlyph    = 'G'
)

// String returns the lowercase state name.
func (s CellState) String() string {
	switch s {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the four known states.
func (s CellState) Valid() bool { return s <= Goal }

// Passable reports whether a search may step onto a cell with state s.
func (s CellState) Passable() bool { return s.Valid() && s != Blocked }

// Glyph returns the rune used by the text codec.
func (s CellState) Glyph() rune {
	switch s {
	case Blocked:
		return BlockedGlyph
	case Start:
		return StartGlyph
	case Goal:
		return GoalGlyph
	default:
		return OpenGlyph
	}
}

// StateFromGlyph decodes a text codec rune. Space and '.' both decode to Open.
func StateFromGlyph(r rune) (CellState, error) {
	switch r {
	case OpenGlyph, ' ':
		return Open, nil
	case BlockedGlyph:
		return Blocked, nil
	case StartGlyph:
		return Start, nil
	case GoalGlyph:
		return Goal, nil
	default:
		return 0, fmt.Errorf("%w: glyph %q", ErrUnknownState, r)
	}
}

// Cell is a grid position. Row grows downwards, Col grows to the right.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |dRow| + |dCol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether o is one orthogonal step away from c.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// neighborOffsets is the fixed expansion order: right, down, left, up.
// Searches depend on it for DFS traversal and BFS/A* tie-breaking.
var neighborOffsets = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Grid is a square N×N field of cell states. It is immutable once built,
// so any number of goroutines may read it concurrently.
type Grid struct {
	size   int
	states [][]CellState
	start  Cell
	goal   Cell
	// hasStart/hasGoal record whether the markers are present.
	hasStart bool
	hasGoal  bool
}
