package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

//----------------------------------------------------------------------------//
// New, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or ill-marked inputs.
func TestNew_Errors(t *testing.T) {
	O, B, S, G := gridgraph.Open, gridgraph.Blocked, gridgraph.Start, gridgraph.Goal
	cases := []struct {
		name  string
		cells [][]gridgraph.CellState
		err   error
	}{
		{"EmptyRows", [][]gridgraph.CellState{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.CellState{{}}, gridgraph.ErrEmptyGrid},
		{"Rectangular", [][]gridgraph.CellState{{O, O, O}, {O, O, O}}, gridgraph.ErrNonSquare},
		{"Ragged", [][]gridgraph.CellState{{O, O}, {O}}, gridgraph.ErrNonSquare},
		{"TwoStarts", [][]gridgraph.CellState{{S, O}, {S, G}}, gridgraph.ErrDuplicateMarker},
		{"TwoGoals", [][]gridgraph.CellState{{S, G}, {B, G}}, gridgraph.ErrDuplicateMarker},
		{"BadState", [][]gridgraph.CellState{{O, 9}, {O, O}}, gridgraph.ErrUnknownState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later edits to the input do not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]gridgraph.CellState{
		{gridgraph.Start, gridgraph.Open},
		{gridgraph.Open, gridgraph.Goal},
	}
	gg, err := gridgraph.New(cells)
	require.NoError(t, err)

	cells[0][1] = gridgraph.Blocked
	assert.Equal(t, gridgraph.Open, gg.State(gridgraph.Cell{Row: 0, Col: 1}))

	out := gg.States()
	out[1][0] = gridgraph.Blocked
	assert.Equal(t, gridgraph.Open, gg.State(gridgraph.Cell{Row: 1, Col: 0}))
}

// TestParse_RoundTrip decodes a text maze and re-encodes it.
func TestParse_RoundTrip(t *testing.T) {
	const text = "S.#\n.#.\n..G\n"
	gg, err := gridgraph.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 3, gg.Size())
	assert.Equal(t, text, gg.String())
	assert.Equal(t, []string{"S.#", ".#.", "..G"}, gg.Rows())

	start, ok := gg.Start()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, start)
	goal, ok := gg.Goal()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, goal)
}

// TestParse_SpacesAndCRLF accepts the original space-for-open form and CRLF line ends.
func TestParse_SpacesAndCRLF(t *testing.T) {
	gg, err := gridgraph.Parse("S #\r\n   \r\n# G\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, "S.#\n...\n#.G\n", gg.String())
}

// TestParse_BadGlyph reports the offending position.
func TestParse_BadGlyph(t *testing.T) {
	_, err := gridgraph.Parse("S.\n.x\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gridgraph.ErrUnknownState))
	assert.Contains(t, err.Error(), "row 1 col 1")
}

// TestParse_NoMarkers is legal: endpoints may be supplied by the caller.
func TestParse_NoMarkers(t *testing.T) {
	gg, err := gridgraph.Parse("..\n..")
	require.NoError(t, err)
	_, ok := gg.Start()
	assert.False(t, ok)
	_, ok = gg.Goal()
	assert.False(t, ok)
}

// TestInBoundsAndState checks bounds and the Blocked reading of outside cells.
func TestInBoundsAndState(t *testing.T) {
	gg := gridgraph.MustParse("S#\n.G")

	for _, c := range []gridgraph.Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		assert.True(t, gg.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		assert.False(t, gg.InBounds(c), "InBounds(%v)", c)
		assert.Equal(t, gridgraph.Blocked, gg.State(c))
		assert.False(t, gg.Passable(c))
	}
	assert.Equal(t, gridgraph.Blocked, gg.State(gridgraph.Cell{Row: 0, Col: 1}))
	assert.True(t, gg.Passable(gridgraph.Cell{Row: 0, Col: 0}), "Start is passable")
	assert.True(t, gg.Passable(gridgraph.Cell{Row: 1, Col: 1}), "Goal is passable")
}

//----------------------------------------------------------------------------//
// Neighbor expansion
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the right, down, left, up order in an open grid.
func TestNeighbors_Order(t *testing.T) {
	gg := gridgraph.MustParse("...\n...\n...")
	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{1, 2}, {2, 1}, {1, 0}, {0, 1}}
	assert.Equal(t, want, got)
}

// TestNeighbors_BoundsAndWalls drops out-of-range and Blocked cells but keeps order.
func TestNeighbors_BoundsAndWalls(t *testing.T) {
	gg := gridgraph.MustParse(".#.\n...\n.#.")

	assert.Equal(t, []gridgraph.Cell{{1, 0}}, gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, []gridgraph.Cell{{1, 2}, {1, 0}}, gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1}))
	assert.Equal(t, []gridgraph.Cell{{1, 2}}, gg.Neighbors(gridgraph.Cell{Row: 2, Col: 2}))
}

// TestNeighbors_FreshSlice ensures callers may mutate the result safely.
func TestNeighbors_FreshSlice(t *testing.T) {
	gg := gridgraph.MustParse("..\n..")
	a := gg.Neighbors(gridgraph.Cell{})
	a[0] = gridgraph.Cell{Row: 9, Col: 9}
	b := gg.Neighbors(gridgraph.Cell{})
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 1}, b[0])
}

//----------------------------------------------------------------------------//
// WithStates and Cell helpers
//----------------------------------------------------------------------------//

// TestWithStates returns an edited copy and leaves the receiver intact.
func TestWithStates(t *testing.T) {
	gg := gridgraph.MustParse("S.\n.G")
	edited, err := gg.WithStates(map[gridgraph.Cell]gridgraph.CellState{
		{Row: 0, Col: 1}: gridgraph.Blocked,
	})
	require.NoError(t, err)
	assert.Equal(t, "S#\n.G\n", edited.String())
	assert.Equal(t, "S.\n.G\n", gg.String())

	_, err = gg.WithStates(map[gridgraph.Cell]gridgraph.CellState{{Row: 5, Col: 0}: gridgraph.Open})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gg.WithStates(map[gridgraph.Cell]gridgraph.CellState{{Row: 1, Col: 0}: gridgraph.Start})
	assert.ErrorIs(t, err, gridgraph.ErrDuplicateMarker)
}

// TestCellHelpers covers Manhattan, Adjacent and String.
func TestCellHelpers(t *testing.T) {
	a := gridgraph.Cell{Row: 0, Col: 0}
	b := gridgraph.Cell{Row: 2, Col: 3}
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 5, b.Manhattan(a))
	assert.True(t, a.Adjacent(gridgraph.Cell{Row: 1, Col: 0}))
	assert.False(t, a.Adjacent(gridgraph.Cell{Row: 1, Col: 1}))
	assert.False(t, a.Adjacent(a))
	assert.Equal(t, "(2,3)", b.String())
}

// TestCellState_Codec checks names and glyph round-trips.
func TestCellState_Codec(t *testing.T) {
	for _, s := range []gridgraph.CellState{gridgraph.Open, gridgraph.Blocked, gridgraph.Start, gridgraph.Goal} {
		got, err := gridgraph.StateFromGlyph(s.Glyph())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "blocked", gridgraph.Blocked.String())
	assert.Equal(t, "CellState(7)", gridgraph.CellState(7).String())
	assert.False(t, gridgraph.CellState(7).Passable())
}
