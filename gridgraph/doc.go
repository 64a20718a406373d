// Package gridgraph treats a square 2D grid of cell states as a graph,
// giving the search engine its neighbor expansion and the maze generator
// its connectivity analysis.
//
// What:
//
//   - Grid wraps an N×N [][]CellState (Open, Blocked, Start, Goal) and is
//     immutable once built; edits produce a new Grid via WithStates.
//   - Neighbors yields passable orthogonal cells in the fixed order
//     right, down, left, up. Search strategies rely on that order for
//     DFS traversal and BFS/A* tie-breaking.
//   - ConnectedComponents / Reachable flood-fill passable regions.
//   - MinBreach computes the path crossing the fewest walls (0-1 BFS).
//   - Parse / String implement a text codec: '.' (or ' ') open, '#' wall,
//     'S' start, 'G' goal.
//
// Why:
//
//   - Pathfinding: a read-only grid can be shared by concurrent searches.
//   - Maze repair: open the minimal set of walls to make a maze solvable.
//   - Fixtures: readable text mazes in tests and on the command line.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(N²), Memory: O(N²).
//   - MinBreach:           O(N²), Memory: O(N²).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonSquare: a row length differs from the row count.
//   - ErrDuplicateMarker: more than one Start or Goal.
//   - ErrUnknownState: a state or glyph outside the codec.
//   - ErrOutOfBounds: a requested cell lies outside the grid.
//   - ErrNoPath: no path exists between the specified cells.
package gridgraph
