package service

import (
	"encoding/json"

	"github.com/foresight-labs/foresight/internal/domain"
)

// SnapshotService assembles the combined planning snapshot from the belief
// and task services.
type SnapshotService struct {
	beliefs *BeliefService
	tasks   *TaskService
}

func NewSnapshotService(beliefs *BeliefService, tasks *TaskService) *SnapshotService {
	return &SnapshotService{beliefs: beliefs, tasks: tasks}
}

// Build returns the snapshot document: beliefs in insertion order, tasks
// ranked by expected gain. A task with no dependencies serializes dependsOn
// as an empty list, never null.
func (s *SnapshotService) Build() domain.Snapshot {
	keyed := s.beliefs.List()
	beliefs := make([]domain.Belief, 0, len(keyed))
	for _, kb := range keyed {
		beliefs = append(beliefs, kb.Belief)
	}

	ranked := s.tasks.Ranked()
	tasks := make([]domain.SnapshotTask, 0, len(ranked))
	for _, t := range ranked {
		deps := t.DependsOn
		if deps == nil {
			deps = []string{}
		}
		tasks = append(tasks, domain.SnapshotTask{
			ID:           t.ID,
			Name:         t.Name,
			DependsOn:    deps,
			Estimate:     t.Estimate,
			ExpectedGain: t.ExpectedGain,
			Confidence:   t.Confidence,
		})
	}

	return domain.Snapshot{
		Status:  domain.SnapshotStatus,
		Beliefs: beliefs,
		Tasks:   tasks,
	}
}

// Render returns the snapshot as pretty-printed JSON with stable key order.
func (s *SnapshotService) Render() ([]byte, error) {
	return json.MarshalIndent(s.Build(), "", "  ")
}
