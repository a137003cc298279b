package service

import (
	"sort"

	"github.com/foresight-labs/foresight/internal/domain"
	"go.uber.org/zap"
)

type TaskService struct {
	store  domain.TaskStore
	logger *zap.Logger
}

func NewTaskService(store domain.TaskStore, logger *zap.Logger) *TaskService {
	return &TaskService{store: store, logger: logger}
}

// Add inserts or wholly replaces the task by id.
func (s *TaskService) Add(t domain.Task) {
	s.store.Put(t)

	s.logger.Debug("task added",
		zap.String("id", t.ID),
		zap.Float64("expected_gain", t.ExpectedGain))
}

func (s *TaskService) Get(id string) (domain.Task, bool) {
	return s.store.Get(id)
}

// List returns all tasks in insertion order.
func (s *TaskService) List() []domain.Task {
	return s.store.List()
}

// Ranked returns all tasks ordered by expected gain descending; equal gains
// keep insertion order. This is a flat priority ranking, not a dependency
// resolution: depends_on is carried as data only and never enforced.
func (s *TaskService) Ranked() []domain.Task {
	tasks := s.store.List()
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].ExpectedGain > tasks[j].ExpectedGain
	})
	return tasks
}
