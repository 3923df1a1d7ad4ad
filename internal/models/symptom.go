// ABOUTME: Symptom record and Severity enum.
// ABOUTME: Severity is restricted to mild, moderate, and severe.
package models

import "strings"

// Severity grades how strongly a symptom was felt.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// AllSeverities lists the valid severity levels, mildest first.
var AllSeverities = []Severity{SeverityMild, SeverityModerate, SeveritySevere}

// Valid reports whether s is one of the known levels.
func (s Severity) Valid() bool {
	for _, v := range AllSeverities {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSeverity converts user input to a Severity, ignoring case and spaces.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	return sev, sev.Valid()
}

// Symptom is a logged symptom with an optional note.
type Symptom struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Note        *string  `json:"note,omitempty" yaml:"note,omitempty"`
	Time        string   `json:"time" yaml:"time"`
	Date        string   `json:"date" yaml:"date"`
	Icon        string   `json:"icon" yaml:"icon"`
	AndroidIcon string   `json:"androidIcon" yaml:"androidIcon"`
}
