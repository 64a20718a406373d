// Package search finds a route between two cells of a gridgraph.Grid with
// one of three interchangeable strategies.
//
// What
//
//   - BFS: first-in-first-out frontier; the first time the goal is dequeued
//     its path has the fewest possible steps.
//   - DFS: last-in-first-out frontier; returns the first path depth-first
//     order discovers, with no optimality guarantee.
//   - AStar: priority frontier on f = g + h, h the Manhattan distance to the
//     goal (admissible and consistent for 4-directional unit steps), so the
//     first pop of the goal is optimal. Equal f values pop in insertion order.
//
// All three share one loop: pop an entry, return if it is the goal, skip it
// if its cell was already expanded, otherwise mark it visited and push its
// unvisited neighbors with path = parent path + neighbor. A cell is marked
// visited on pop, never on push, so duplicates may coexist on the frontier.
//
// Determinism
//
//	gridgraph.Grid.Neighbors returns cells in the fixed order right, down,
//	left, up. Together with the insertion-order tie-break this makes every
//	strategy's output reproducible for identical input.
//
// Results
//
//   - Found:    Path runs from start to goal, adjacent steps, no repeats.
//   - NotFound: Found == false, Path == nil, err == nil. An unreachable goal
//     is an expected outcome, not a fault.
//   - start == goal: Path == [start] with zero expansions.
//
// Concurrency
//
//	A search is synchronous. The grid is read-only, so any number of
//	searches may run in parallel on it; Race does exactly that.
//
// Complexity (N = grid side, C = N² cells)
//
//   - Time:   O(C) pops for BFS/DFS, O(C log C) for AStar.
//   - Memory: O(C·L) where L is the path length carried by each entry.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per pop.
//   - WithMaxExpansions(n):    abandon after n expansions; reported as not
//     found with Result.Truncated set.
//   - WithOnEnqueue(fn):       hook on every frontier push.
//   - WithOnExpand(fn):        hook on every expansion.
//
// Errors
//
//   - ErrInvalidInput and its refinements ErrNilGrid, ErrStartOutOfBounds,
//     ErrGoalOutOfBounds, ErrStartBlocked, ErrGoalBlocked, ErrUnknownStrategy.
//   - ErrOptionViolation for an invalid Option.
//   - ctx.Err() when cancelled.
//   - ErrInvalidPath from ValidatePath.
package search
