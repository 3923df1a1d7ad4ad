// ABOUTME: Weight tracking records: entries, the goal, and milestones.
// ABOUTME: Weights are kilograms; milestones are generated by the store.
package models

// WeightEntry is a single weigh-in.
type WeightEntry struct {
	ID     string  `json:"id" yaml:"id"`
	Weight float64 `json:"weight" yaml:"weight"`
	Date   string  `json:"date" yaml:"date"`
	Time   string  `json:"time" yaml:"time"`
	Note   *string `json:"note,omitempty" yaml:"note,omitempty"`
}

// WeightGoal is the user's target. StartWeight is the baseline for
// progress and never follows later weigh-ins.
type WeightGoal struct {
	TargetWeight float64 `json:"targetWeight" yaml:"targetWeight"`
	StartWeight  float64 `json:"startWeight" yaml:"startWeight"`
	StartDate    string  `json:"startDate" yaml:"startDate"`
	TargetDate   string  `json:"targetDate" yaml:"targetDate"`
}

// Milestone celebrates a weight-loss threshold. Weight is the weigh-in
// that triggered it.
type Milestone struct {
	ID      string  `json:"id" yaml:"id"`
	Weight  float64 `json:"weight" yaml:"weight"`
	Date    string  `json:"date" yaml:"date"`
	Message string  `json:"message" yaml:"message"`
}
