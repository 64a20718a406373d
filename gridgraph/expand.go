package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreach finds a path from `from` to `to` that crosses the fewest
// Blocked cells. Stepping onto a passable cell costs 0, onto a Blocked
// cell costs 1; a Blocked origin counts as well.
// Returns the path (both endpoints included) and the number of Blocked
// cells on it. Opening exactly those cells connects the two endpoints.
//
// Behavior:
//  1. Validate both endpoints are in bounds.
//  2. 0–1 BFS from `from`:
//     • cost-0 moves go to the front of the deque
//     • cost-1 moves go to the back
//  3. Stop when `to` is popped.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(N²) time and memory.
func (gg *Grid) MinBreach(from, to Cell) (path []Cell, cost int, err error) {
	if !gg.InBounds(from) {
		return nil, 0, fmt.Errorf("%w: from %v", ErrOutOfBounds, from)
	}
	if !gg.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: to %v", ErrOutOfBounds, to)
	}

	total := gg.size * gg.size
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src := gg.index(from)
	dist[src] = gg.stepCost(from)
	dq := list.New()
	dq.PushFront(src)
	target := gg.index(to)
	done := make([]bool, total)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == target {
			break
		}
		uc := gg.cellAt(u)
		for _, d := range neighborOffsets {
			vc := uc.Add(d)
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := gg.stepCost(vc)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if dist[target] == inf {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.cellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// stepCost is 1 for Blocked cells and 0 otherwise.
func (gg *Grid) stepCost(c Cell) int {
	if gg.states[c.Row][c.Col] == Blocked {
		return 1
	}
	return 0
}
