package store

import (
	"sync"

	"github.com/foresight-labs/foresight/internal/domain"
)

// TaskStore is an insertion-ordered in-memory task store keyed by task id.
type TaskStore struct {
	mu    sync.RWMutex
	order []string
	tasks map[string]domain.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]domain.Task),
	}
}

// Put inserts or wholly replaces the task by id. Old fields are not retained.
func (s *TaskStore) Put(t domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[t.ID]; !exists {
		s.order = append(s.order, t.ID)
	}
	s.tasks[t.ID] = t
}

func (s *TaskStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	return t, ok
}

// List returns all tasks in insertion order.
func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id])
	}
	return out
}
