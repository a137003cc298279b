package domain

// SnapshotStatus is the constant status emitted with every snapshot.
const SnapshotStatus = "ready_for_execution"

// Snapshot is the combined planning document: beliefs in insertion order,
// tasks ranked by expected gain descending.
type Snapshot struct {
	Status  string         `json:"status"`
	Beliefs []Belief       `json:"beliefs"`
	Tasks   []SnapshotTask `json:"tasks"`
}

// SnapshotTask maps the internal snake_case task fields onto the camelCase
// external contract. The field order here is the serialized key order.
type SnapshotTask struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DependsOn    []string `json:"dependsOn"`
	Estimate     int      `json:"estimate"`
	ExpectedGain float64  `json:"expectedGain"`
	Confidence   float64  `json:"confidence"`
}
