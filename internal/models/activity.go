// ABOUTME: Activity record for exercise sessions.
// ABOUTME: Icon fields are presentation metadata and are never interpreted.
package models

// Activity is a logged exercise session.
type Activity struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Duration    int    `json:"duration" yaml:"duration"`
	Calories    int    `json:"calories" yaml:"calories"`
	Time        string `json:"time" yaml:"time"`
	Date        string `json:"date" yaml:"date"`
	Icon        string `json:"icon" yaml:"icon"`
	AndroidIcon string `json:"androidIcon" yaml:"androidIcon"`
}

// ActivityTotals sums duration and burned calories.
type ActivityTotals struct {
	Minutes  int `json:"minutes"`
	Calories int `json:"calories"`
}

// SumActivities totals minutes and calories across activities.
func SumActivities(activities []Activity) ActivityTotals {
	var t ActivityTotals
	for _, a := range activities {
		t.Minutes += a.Duration
		t.Calories += a.Calories
	}
	return t
}
