// Package mazeagent finds routes through square grid mazes with three
// classic strategies: breadth-first search, depth-first search and A*
// with the Manhattan heuristic.
//
// What is in the box?
//
//   - gridgraph: immutable N×N grid of Open, Blocked, Start and Goal cells;
//     neighbor expansion in the fixed order right, down, left, up; text
//     codec; connectivity and breach analysis.
//   - search: BFS, DFS and A* behind one FindPath call, path validation,
//     and a concurrent Race of all strategies.
//   - maze: seeded random and perfect (Wilson) maze generation with
//     optional solvability repair.
//   - render: plain or ANSI-coloured text frames and path animation.
//   - config: environment and .env settings.
//   - api: gin HTTP API to generate, import, solve and race mazes.
//   - cmd/mazeagent: command-line front end and HTTP server.
//
// Contract shared by every strategy:
//
//   - Invalid input (nil grid, endpoint outside or on a wall, unknown
//     strategy) is an error wrapping search.ErrInvalidInput.
//   - An unreachable goal is not an error: Result.Found is false and
//     Result.Path is nil.
//   - A returned path starts at start, ends at goal, moves one orthogonal
//     step at a time over passable cells and never repeats a cell.
//   - BFS and A* paths are shortest; DFS paths are valid but not minimal.
//
// Quick example:
//
//	S . #
//	. . #        BFS / A*: (0,0) (0,1) (1,1) (2,1) (2,2)
//	# . G
//
//	g := gridgraph.MustParse("S.#\n..#\n#.G")
//	res, err := search.FindPath(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, search.AStar)
//
//	go install github.com/katalvlaran/mazeagent/cmd/mazeagent@latest
package mazeagent
