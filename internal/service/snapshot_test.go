package service

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/foresight-labs/foresight/internal/store"
	"go.uber.org/zap"
)

func newPlanningServices() (*BeliefService, *TaskService, *SnapshotService) {
	logger := zap.NewNop()
	beliefs := NewBeliefService(store.NewBeliefStore(), logger)
	tasks := NewTaskService(store.NewTaskStore(), logger)
	return beliefs, tasks, NewSnapshotService(beliefs, tasks)
}

func TestSnapshotService_Empty(t *testing.T) {
	_, _, snap := newPlanningServices()

	out, err := snap.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(doc["beliefs"]) != "[]" {
		t.Errorf("beliefs = %s, want []", doc["beliefs"])
	}
	if string(doc["tasks"]) != "[]" {
		t.Errorf("tasks = %s, want []", doc["tasks"])
	}
}

func TestSnapshotService_EndToEnd(t *testing.T) {
	beliefs, tasks, snap := newPlanningServices()

	beliefs.Add("api", "GraphQL API works", 0.8)
	beliefs.Add("db", "DB schema supports new field", 0.5)

	if _, _, err := beliefs.Update("api", 0.9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := beliefs.Update("db", 0.6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks.Add(domain.Task{
		ID:           "1",
		Name:         "Create user profile page",
		Estimate:     5,
		ExpectedGain: 0.9,
		Confidence:   0.85,
	})
	tasks.Add(domain.Task{
		ID:           "2",
		Name:         "Update database schema",
		DependsOn:    []string{"1"},
		Estimate:     3,
		ExpectedGain: 0.7,
		Confidence:   0.8,
	})

	doc := snap.Build()

	if doc.Status != "ready_for_execution" {
		t.Errorf("status = %q, want ready_for_execution", doc.Status)
	}

	if len(doc.Beliefs) != 2 {
		t.Fatalf("got %d beliefs, want 2", len(doc.Beliefs))
	}
	if doc.Beliefs[0].Hypothesis != "GraphQL API works" {
		t.Errorf("beliefs[0] = %q, want api belief first (insertion order)", doc.Beliefs[0].Hypothesis)
	}
	wantPosterior := (0.8 * 0.9) / (0.8*0.9 + 0.2*0.1)
	if math.Abs(doc.Beliefs[0].Posterior-wantPosterior) > 1e-12 {
		t.Errorf("api posterior = %f, want %f", doc.Beliefs[0].Posterior, wantPosterior)
	}

	if len(doc.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(doc.Tasks))
	}
	if doc.Tasks[0].ID != "1" || doc.Tasks[1].ID != "2" {
		t.Errorf("task order = [%s %s], want [1 2] by gain descending", doc.Tasks[0].ID, doc.Tasks[1].ID)
	}
	if len(doc.Tasks[1].DependsOn) != 1 || doc.Tasks[1].DependsOn[0] != "1" {
		t.Errorf("task 2 dependsOn = %v, want [1]", doc.Tasks[1].DependsOn)
	}
	if doc.Tasks[0].DependsOn == nil || len(doc.Tasks[0].DependsOn) != 0 {
		t.Errorf("task 1 dependsOn = %v, want empty non-nil list", doc.Tasks[0].DependsOn)
	}
}

func TestSnapshotService_Render_StableKeyOrder(t *testing.T) {
	beliefs, tasks, snap := newPlanningServices()

	beliefs.Add("api", "GraphQL API works", 0.8)
	tasks.Add(domain.Task{ID: "2", Name: "Update database schema", DependsOn: []string{"1"}, Estimate: 3, ExpectedGain: 0.7, Confidence: 0.8})

	out, err := snap.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	rendered := string(out)

	if !strings.Contains(rendered, "\n  ") {
		t.Error("output is not pretty-printed")
	}

	// Top-level and per-object key order is part of the external contract.
	for _, ordered := range [][]string{
		{`"status"`, `"beliefs"`, `"tasks"`},
		{`"hypothesis"`, `"prior"`, `"likelihood"`, `"posterior"`},
		{`"id"`, `"name"`, `"dependsOn"`, `"estimate"`, `"expectedGain"`, `"confidence"`},
	} {
		last := -1
		for _, key := range ordered {
			idx := strings.Index(rendered, key)
			if idx < 0 {
				t.Fatalf("key %s missing from output", key)
			}
			if idx < last {
				t.Errorf("key %s out of order", key)
			}
			last = idx
		}
	}

	if strings.Contains(rendered, `"depends_on"`) || strings.Contains(rendered, `"expected_gain"`) {
		t.Error("snapshot leaked internal snake_case field names")
	}
}
