package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// entry is one frontier item: a cell, the path that reached it and, for
// A*, its priority data. Each entry owns its path; paths are never shared.
type entry struct {
	cell gridgraph.Cell
	path []gridgraph.Cell
	g    int // steps from start
	f    int // g + heuristic, A* only
	seq  int // insertion order, A* tie-break
}

// frontier is the only part that differs between strategies.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// Finder is implemented by every Strategy.
type Finder interface {
	FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error)
}

var _ Finder = BFS

// newFrontier maps each strategy to its frontier constructor.
var newFrontier = map[Strategy]func(goal gridgraph.Cell) frontier{
	BFS:   func(gridgraph.Cell) frontier { return &fifo{} },
	DFS:   func(gridgraph.Cell) frontier { return &lifo{} },
	AStar: func(goal gridgraph.Cell) frontier { return newPriorityFrontier(goal) },
}

// FindPath searches g from start to goal with the given strategy.
//
// Returns an error wrapping ErrInvalidInput when the grid is nil, the
// strategy is unknown, or start/goal are out of bounds or Blocked;
// ErrOptionViolation for bad options; and ctx.Err() when cancelled.
// An unreachable goal is not an error: the Result has Found == false.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell, strategy Strategy, opts ...Option) (Result, error) {
	return strategy.FindPath(g, start, goal, opts...)
}

// FindPath runs the strategy; see the package-level FindPath.
func (s Strategy) FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	mk, ok := newFrontier[s]
	if !ok {
		return Result{Strategy: s}, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{Strategy: s}, err
	}
	if err = validate(g, start, goal); err != nil {
		return Result{Strategy: s}, err
	}

	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		front:   mk(goal),
		visited: make(map[gridgraph.Cell]bool),
		res:     Result{Strategy: s},
	}
	return w.run(start)
}

// BreadthFirst is FindPath with BFS.
func BreadthFirst(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	return BFS.FindPath(g, start, goal, opts...)
}

// DepthFirst is FindPath with DFS.
func DepthFirst(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	return DFS.FindPath(g, start, goal, opts...)
}

// AStarSearch is FindPath with AStar.
func AStarSearch(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	return AStar.FindPath(g, start, goal, opts...)
}

// validate checks the caller's preconditions in a fixed order.
func validate(g *gridgraph.Grid, start, goal gridgraph.Cell) error {
	switch {
	case g == nil:
		return ErrNilGrid
	case !g.InBounds(start):
		return fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Size(), g.Size())
	case !g.InBounds(goal):
		return fmt.Errorf("%w: %v in %dx%d grid", ErrGoalOutOfBounds, goal, g.Size(), g.Size())
	case !g.Passable(start):
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	case !g.Passable(goal):
		return fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}
	return nil
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	grid    *gridgraph.Grid
	goal    gridgraph.Cell
	opts    Options
	ctx     context.Context
	front   frontier
	visited map[gridgraph.Cell]bool
	res     Result
}

// run seeds the frontier with start and processes it until the goal is
// popped, the frontier is exhausted, the budget runs out, or ctx is done.
func (w *walker) run(start gridgraph.Cell) (Result, error) {
	w.enqueue(entry{cell: start, path: []gridgraph.Cell{start}})

	for w.front.len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.notFound(false), w.ctx.Err()
		default:
		}

		e := w.front.pop()
		if e.cell == w.goal {
			w.res.Path = e.path
			w.res.Found = true
			return w.res, nil
		}
		// stale duplicate: a cheaper (or earlier) entry already expanded it
		if w.visited[e.cell] {
			continue
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return w.notFound(true), nil
		}
		w.expand(e)
	}

	return w.notFound(false), nil
}

// expand marks e visited and pushes every unvisited neighbor.
func (w *walker) expand(e entry) {
	w.visited[e.cell] = true
	w.res.Expanded++
	w.opts.OnExpand(e.cell, e.g)

	for _, nb := range w.grid.Neighbors(e.cell) {
		if w.visited[nb] {
			continue
		}
		w.enqueue(entry{cell: nb, path: extend(e.path, nb), g: e.g + 1})
	}
}

// enqueue pushes e and calls OnEnqueue.
func (w *walker) enqueue(e entry) {
	w.front.push(e)
	w.res.Enqueued++
	w.opts.OnEnqueue(e.cell, e.g)
}

// notFound finalizes a result without a path.
func (w *walker) notFound(truncated bool) Result {
	w.res.Path = nil
	w.res.Found = false
	w.res.Truncated = truncated
	return w.res
}

// extend returns a new path: a copy of parent with c appended.
func extend(parent []gridgraph.Cell, c gridgraph.Cell) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(parent)+1)
	copy(out, parent)
	out[len(parent)] = c
	return out
}
