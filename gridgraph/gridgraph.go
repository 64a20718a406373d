// Package gridgraph provides utilities to treat a square 2D grid of cell
// states as a graph. It supports:
//
//   - Four-connectivity with a fixed neighbor order (right, down, left, up)
//   - A text codec ('.', '#', 'S', 'G')
//   - Identification of connected passable regions
//   - Minimum-wall breaches between two cells
//
// Cells in state Blocked are walls; Open, Start and Goal cells are passable.
package gridgraph

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, square 2D slice of states.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if states has no rows or no columns,
// ErrNonSquare if any row length differs from the row count,
// ErrUnknownState for an invalid state, and ErrDuplicateMarker
// when Start or Goal appears more than once.
// Algorithmic complexity: O(N²) time and memory.
func New(states [][]CellState) (*Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(states)
	gg := &Grid{size: n, states: make([][]CellState, n)}
	for r, row := range states {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		gg.states[r] = make([]CellState, n)
		copy(gg.states[r], row)
		for c, s := range row {
			if err := gg.mark(Cell{Row: r, Col: c}, s); err != nil {
				return nil, err
			}
		}
	}

	return gg, nil
}

// mark validates s and records Start/Goal positions.
func (gg *Grid) mark(c Cell, s CellState) error {
	switch s {
	case Open, Blocked:
	case Start:
		if gg.hasStart {
			return fmt.Errorf("%w: second Start at %v", ErrDuplicateMarker, c)
		}
		gg.start, gg.hasStart = c, true
	case Goal:
		if gg.hasGoal {
			return fmt.Errorf("%w: second Goal at %v", ErrDuplicateMarker, c)
		}
		gg.goal, gg.hasGoal = c, true
	default:
		return fmt.Errorf("%w: %v at %v", ErrUnknownState, s, c)
	}
	return nil
}

// Parse decodes a grid from text, one row per line. Trailing blank lines
// and '\r' are ignored; every other line must have exactly N glyphs.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return FromRows(lines)
}

// FromRows decodes a grid from one string per row.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	states := make([][]CellState, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		states[r] = make([]CellState, len(runes))
		for c, ch := range runes {
			s, err := StateFromGlyph(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			states[r][c] = s
		}
	}
	return New(states)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(text string) *Grid {
	gg, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return gg
}

// String encodes the grid with the text codec, one row per line.
func (gg *Grid) String() string {
	var sb strings.Builder
	sb.Grow(gg.size * (gg.size + 1))
	for _, row := range gg.states {
		for _, s := range row {
			sb.WriteRune(s.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows encodes the grid as one string per row.
func (gg *Grid) Rows() []string {
	return strings.Split(strings.TrimSuffix(gg.String(), "\n"), "\n")
}

// Size returns N, the side length.
func (gg *Grid) Size() int {
	return gg.size
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.size && c.Col >= 0 && c.Col < gg.size
}

// State returns the state of c. Cells outside the grid read as Blocked.
func (gg *Grid) State(c Cell) CellState {
	if !gg.InBounds(c) {
		return Blocked
	}
	return gg.states[c.Row][c.Col]
}

// Passable reports whether c is in bounds and not Blocked.
func (gg *Grid) Passable(c Cell) bool {
	return gg.InBounds(c) && gg.states[c.Row][c.Col] != Blocked
}

// Neighbors returns the passable cells adjacent to c in the fixed order
// right, down, left, up. The result is freshly allocated.
// Complexity: O(1).
func (gg *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if nb := c.Add(d); gg.Passable(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// Start returns the Start marker position, if the grid has one.
func (gg *Grid) Start() (Cell, bool) {
	return gg.start, gg.hasStart
}

// Goal returns the Goal marker position, if the grid has one.
func (gg *Grid) Goal() (Cell, bool) {
	return gg.goal, gg.hasGoal
}

// States returns a deep copy of the cell states, indexed [row][col].
func (gg *Grid) States() [][]CellState {
	out := make([][]CellState, gg.size)
	for r := range gg.states {
		out[r] = make([]CellState, gg.size)
		copy(out[r], gg.states[r])
	}
	return out
}

// WithStates returns a new Grid with changes applied. The receiver is not
// modified. Marker rules are re-validated on the result.
func (gg *Grid) WithStates(changes map[Cell]CellState) (*Grid, error) {
	states := gg.States()
	for c, s := range changes {
		if !gg.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		states[c.Row][c.Col] = s
	}
	return New(states)
}

// index maps c to a row-major index: Row*size + Col.
// Complexity: O(1).
func (gg *Grid) index(c Cell) int {
	return c.Row*gg.size + c.Col
}

// cellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *Grid) cellAt(idx int) Cell {
	return Cell{Row: idx / gg.size, Col: idx % gg.size}
}
