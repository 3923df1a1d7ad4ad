// ABOUTME: Mood entry operations for the wellness store.
// ABOUTME: Mood values must sit on the 1-5 scale.
package store

import (
	"errors"
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidMoodValue is returned when a mood value is outside 1-5.
var ErrInvalidMoodValue = errors.New("mood value must be between 1 and 5")

// MoodInput holds the caller-supplied fields of a mood entry.
type MoodInput struct {
	Mood  string
	Emoji string
	Value int
	Note  *string
	Time  string
}

// MoodInputFromPreset builds a MoodInput from a picker preset.
func MoodInputFromPreset(p models.MoodPreset, note *string) MoodInput {
	return MoodInput{
		Mood:  p.Label,
		Emoji: p.Emoji,
		Value: p.Value,
		Note:  note,
	}
}

// AddMoodEntry records a mood entry dated today and returns it.
func (s *Store) AddMoodEntry(in MoodInput) (models.MoodEntry, error) {
	if !models.ValidMoodValue(in.Value) {
		return models.MoodEntry{}, fmt.Errorf("add mood %q: %w (got %d)", in.Mood, ErrInvalidMoodValue, in.Value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.MoodEntry{
		ID:    s.newID(),
		Mood:  in.Mood,
		Emoji: in.Emoji,
		Value: in.Value,
		Note:  in.Note,
		Time:  s.timeOr(in.Time),
		Date:  s.today(),
	}
	s.moodEntries = append(s.moodEntries, e)

	s.logger.Debug("mood entry added",
		zap.String("id", e.ID),
		zap.String("mood", e.Mood),
		zap.Int("value", e.Value))
	return e, nil
}

// DeleteMoodEntry removes a mood entry. Unknown ids are ignored.
func (s *Store) DeleteMoodEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.moodEntries, removed = removeByID(s.moodEntries, id, func(e models.MoodEntry) string { return e.ID })
	s.logger.Debug("mood entry deleted", zap.String("id", id), zap.Bool("found", removed))
}

// MoodEntries returns every mood entry in insertion order.
func (s *Store) MoodEntries() []models.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.moodEntries)
}

// TodaysMoodEntries returns the mood entries dated today in insertion order.
func (s *Store) TodaysMoodEntries() []models.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDay(s.moodEntries, s.today(), func(e models.MoodEntry) string { return e.Date })
}
