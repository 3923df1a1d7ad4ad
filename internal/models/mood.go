// ABOUTME: MoodEntry record and the five-step mood scale.
// ABOUTME: Values run from Bad=1 to Great=5.
package models

import "strings"

const (
	MoodValueMin = 1
	MoodValueMax = 5
)

// MoodPreset pairs a mood label with its glyph and scale value.
type MoodPreset struct {
	Label string
	Emoji string
	Value int
}

// MoodPresets is the mood picker, best first.
var MoodPresets = []MoodPreset{
	{Label: "Great", Emoji: "😊", Value: 5},
	{Label: "Good", Emoji: "🙂", Value: 4},
	{Label: "Okay", Emoji: "😐", Value: 3},
	{Label: "Low", Emoji: "😔", Value: 2},
	{Label: "Bad", Emoji: "😢", Value: 1},
}

// LookupMood finds a preset by label, case-insensitively.
func LookupMood(label string) (MoodPreset, bool) {
	label = strings.TrimSpace(label)
	for _, p := range MoodPresets {
		if strings.EqualFold(p.Label, label) {
			return p, true
		}
	}
	return MoodPreset{}, false
}

// ValidMoodValue reports whether v is on the 1-5 scale.
func ValidMoodValue(v int) bool {
	return v >= MoodValueMin && v <= MoodValueMax
}

// MoodEntry is a logged mood with an optional note.
type MoodEntry struct {
	ID    string  `json:"id" yaml:"id"`
	Mood  string  `json:"mood" yaml:"mood"`
	Emoji string  `json:"emoji" yaml:"emoji"`
	Value int     `json:"value" yaml:"value"`
	Note  *string `json:"note,omitempty" yaml:"note,omitempty"`
	Time  string  `json:"time" yaml:"time"`
	Date  string  `json:"date" yaml:"date"`
}
