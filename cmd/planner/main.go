// Command planner is a demonstration harness: it builds a small sample plan
// in memory and prints the combined snapshot to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/foresight-labs/foresight/internal/service"
	"github.com/foresight-labs/foresight/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger := zap.NewNop()

	beliefs := service.NewBeliefService(store.NewBeliefStore(), logger)
	tasks := service.NewTaskService(store.NewTaskStore(), logger)
	snapshot := service.NewSnapshotService(beliefs, tasks)

	beliefs.Add("api", "GraphQL API works", 0.8)
	beliefs.Add("db", "DB schema supports new field", 0.5)

	if _, _, err := beliefs.Update("api", 0.9); err != nil {
		fail(err)
	}
	if _, _, err := beliefs.Update("db", 0.6); err != nil {
		fail(err)
	}

	tasks.Add(domain.Task{
		ID:           "1",
		Name:         "Create user profile page",
		DependsOn:    []string{},
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

	out, err := snapshot.Render()
	if err != nil {
		fail(err)
	}

	fmt.Println(string(out))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "planner:", err)
	os.Exit(1)
}
