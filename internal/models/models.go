// ABOUTME: Shared layouts and helpers for wellness records.
// ABOUTME: Defines calendar-day and display-time formats used by every record.
package models

import "time"

const (
	// DateLayout is the calendar-day format stamped on every record.
	// Values sort lexicographically in date order.
	DateLayout = "2006-01-02"

	// TimeLayout is the display time of day, e.g. "8:30 AM".
	TimeLayout = "3:04 PM"
)

// DayOf returns the calendar-day string for t in t's location.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOf returns the display time of day for t.
func TimeOf(t time.Time) string {
	return t.Format(TimeLayout)
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
