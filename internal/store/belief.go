package store

import (
	"sync"

	"github.com/foresight-labs/foresight/internal/domain"
)

// BeliefStore is an insertion-ordered in-memory belief store.
type BeliefStore struct {
	mu      sync.RWMutex
	order   []string
	beliefs map[string]domain.Belief
}

func NewBeliefStore() *BeliefStore {
	return &BeliefStore{
		beliefs: make(map[string]domain.Belief),
	}
}

// Put inserts or wholly replaces the belief at key. A replaced key keeps its
// original position in the iteration order.
func (s *BeliefStore) Put(key string, b domain.Belief) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.beliefs[key]; !exists {
		s.order = append(s.order, key)
	}
	s.beliefs[key] = b
}

func (s *BeliefStore) Get(key string) (domain.Belief, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.beliefs[key]
	return b, ok
}

// List returns all beliefs in insertion order.
func (s *BeliefStore) List() []domain.KeyedBelief {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.KeyedBelief, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, domain.KeyedBelief{Key: key, Belief: s.beliefs[key]})
	}
	return out
}
