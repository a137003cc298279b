package store

import (
	"testing"

	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeliefStore_InsertionOrder(t *testing.T) {
	s := NewBeliefStore()

	s.Put("api", domain.Belief{Hypothesis: "api works", Prior: 0.8})
	s.Put("db", domain.Belief{Hypothesis: "db ready", Prior: 0.5})
	s.Put("cache", domain.Belief{Hypothesis: "cache warm", Prior: 0.3})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "api", list[0].Key)
	assert.Equal(t, "db", list[1].Key)
	assert.Equal(t, "cache", list[2].Key)
}

func TestBeliefStore_ReplaceKeepsPosition(t *testing.T) {
	s := NewBeliefStore()

	s.Put("api", domain.Belief{Hypothesis: "old", Prior: 0.8})
	s.Put("db", domain.Belief{Hypothesis: "db ready", Prior: 0.5})
	s.Put("api", domain.Belief{Hypothesis: "new", Prior: 0.2})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "api", list[0].Key)
	assert.Equal(t, "new", list[0].Hypothesis)
	assert.Equal(t, 0.2, list[0].Prior)
}

func TestBeliefStore_GetMissing(t *testing.T) {
	s := NewBeliefStore()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestTaskStore_ReplaceDropsOldFields(t *testing.T) {
	s := NewTaskStore()

	s.Put(domain.Task{ID: "1", Name: "first", Estimate: 5, Confidence: 0.85})
	s.Put(domain.Task{ID: "1", Name: "rewritten", ExpectedGain: 0.4})

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "rewritten", got.Name)
	assert.Equal(t, 0, got.Estimate)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Equal(t, 0.4, got.ExpectedGain)

	assert.Len(t, s.List(), 1)
}

func TestTaskStore_InsertionOrder(t *testing.T) {
	s := NewTaskStore()

	s.Put(domain.Task{ID: "b", Name: "second"})
	s.Put(domain.Task{ID: "a", Name: "first"})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}
