package domain

// Task is a unit of plannable work. DependsOn carries dependency references by
// id only; dangling ids are not validated and no scheduling is derived from
// them. ExpectedGain is the sole ranking signal; Confidence is informational.
type Task struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DependsOn    []string `json:"depends_on"`
	Estimate     int      `json:"estimate"` // hours
	ExpectedGain float64  `json:"expected_gain"`
	Confidence   float64  `json:"confidence"`
}
