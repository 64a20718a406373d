package mazeapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazeagent/maze"
)

// MemoryStore is a process-local MazeStore. When capacity is positive the
// oldest maze is evicted once the store is full.
type MemoryStore struct {
	mu       sync.RWMutex
	mazes    map[uuid.UUID]*maze.Maze
	order    []uuid.UUID
	capacity int
}

// NewMemoryStore returns an empty store; capacity <= 0 means unbounded.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		mazes:    make(map[uuid.UUID]*maze.Maze),
		capacity: capacity,
	}
}

// Save stores m under a fresh random ID.
func (s *MemoryStore) Save(m *maze.Maze) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity > 0 {
		for len(s.order) >= s.capacity {
			delete(s.mazes, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.mazes[id] = m
	s.order = append(s.order, id)
	return id
}

// Get returns the maze stored under id.
func (s *MemoryStore) Get(id uuid.UUID) (*maze.Maze, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mazes[id]
	return m, ok
}

// Delete removes id and reports whether it was present.
func (s *MemoryStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mazes[id]; !ok {
		return false
	}
	delete(s.mazes, id)
	for k, v := range s.order {
		if v == id {
			s.order = append(s.order[:k], s.order[k+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored mazes.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mazes)
}
