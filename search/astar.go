package search

import (
	"container/heap"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// priorityFrontier is the A* frontier: a min-heap on f = g + h with the
// Manhattan distance to goal as h. Equal f values leave in insertion order.
//
// Stale entries are never removed (lazy decrease-key); the walker drops
// them on pop via the visited set. With a consistent heuristic the first
// pop of any cell carries its minimal f.
type priorityFrontier struct {
	goal gridgraph.Cell
	pq   entryPQ
	seq  int
}

func newPriorityFrontier(goal gridgraph.Cell) *priorityFrontier {
	pf := &priorityFrontier{goal: goal}
	heap.Init(&pf.pq)
	return pf
}

func (pf *priorityFrontier) push(e entry) {
	e.f = e.g + e.cell.Manhattan(pf.goal)
	e.seq = pf.seq
	pf.seq++
	heap.Push(&pf.pq, e)
}

func (pf *priorityFrontier) pop() entry { return heap.Pop(&pf.pq).(entry) }

func (pf *priorityFrontier) len() int { return pf.pq.Len() }

// entryPQ is a min-heap of entries ordered by (f, seq) ascending.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*pq = old[:n-1]

	return item
}
