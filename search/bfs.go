package search

// fifo is the BFS frontier: entries leave in exactly the order they
// arrived, across all expansion rounds.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) push(e entry) { q.items = append(q.items, e) }

func (q *fifo) pop() entry {
	e := q.items[q.head]
	q.items[q.head] = entry{} // release the path for GC
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return e
}

func (q *fifo) len() int { return len(q.items) - q.head }
