package search

// lifo is the DFS frontier. Neighbors are pushed right, down, left, up,
// so the last pushed ("up") is expanded first.
type lifo struct {
	items []entry
}

func (s *lifo) push(e entry) { s.items = append(s.items, e) }

func (s *lifo) pop() entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = entry{}
	s.items = s.items[:n]
	return e
}

func (s *lifo) len() int { return len(s.items) }
