// ABOUTME: Weight entries, the weight goal, and milestone detection.
// ABOUTME: Entries stay sorted by date; milestones are appended on weigh-in.
package store

import (
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

const (
	firstMilestoneMessage = "Lost first 0.5 kg!"
	downMilestoneFormat   = "Down %.1f kg from start!"
)

// AddWeightEntry records a weigh-in dated now, keeps entries ordered by
// date, and may append a milestone.
func (s *Store) AddWeightEntry(weight float64, note *string) models.WeightEntry {
	e, _ := s.LogWeight(weight, note)
	return e
}

// LogWeight is AddWeightEntry that also returns the milestone the weigh-in
// unlocked, or nil.
func (s *Store) LogWeight(weight float64, note *string) (models.WeightEntry, *models.Milestone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := models.WeightEntry{
		ID:     s.newID(),
		Weight: weight,
		Date:   models.DayOf(now),
		Time:   models.TimeOf(now),
		Note:   note,
	}
	s.insertWeightEntry(e)

	s.logger.Debug("weight entry added",
		zap.String("id", e.ID),
		zap.Float64("weight", e.Weight))

	m, ok := s.detectMilestone(weight)
	if !ok {
		return e, nil
	}
	s.milestones = append(s.milestones, m)
	s.logger.Info("milestone reached",
		zap.String("id", m.ID),
		zap.String("message", m.Message))
	return e, &m
}

// insertWeightEntry appends e and restores ascending date order. The sort
// is stable, so entries sharing a date keep insertion order.
func (s *Store) insertWeightEntry(e models.WeightEntry) {
	s.weightEntries = append(s.weightEntries, e)
	sort.SliceStable(s.weightEntries, func(i, j int) bool {
		return s.weightEntries[i].Date < s.weightEntries[j].Date
	})
}

// detectMilestone applies the milestone rule to a new weigh-in. Without a
// goal the weigh-in is its own baseline, so nothing is lost.
// A milestone is skipped when one already exists whose weight equals the
// floor of the new weight.
func (s *Store) detectMilestone(weight float64) (models.Milestone, bool) {
	start := weight
	if s.goal != nil {
		start = s.goal.StartWeight
	}
	lost := start - weight

	var message string
	switch {
	case lost >= 0.5 && lost < 1:
		message = firstMilestoneMessage
	case lost >= 1:
		message = fmt.Sprintf(downMilestoneFormat, lost)
	default:
		return models.Milestone{}, false
	}

	floor := math.Floor(weight)
	for _, m := range s.milestones {
		if m.Weight == floor {
			return models.Milestone{}, false
		}
	}

	return models.Milestone{
		ID:      s.newID(),
		Weight:  weight,
		Date:    s.today(),
		Message: message,
	}, true
}

// DeleteWeightEntry removes a weigh-in. Unknown ids are ignored.
func (s *Store) DeleteWeightEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.weightEntries, removed = removeByID(s.weightEntries, id, func(e models.WeightEntry) string { return e.ID })
	s.logger.Debug("weight entry deleted", zap.String("id", id), zap.Bool("found", removed))
}

// WeightEntries returns every weigh-in, oldest date first.
func (s *Store) WeightEntries() []models.WeightEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.weightEntries)
}

// Milestones returns every milestone in the order reached.
func (s *Store) Milestones() []models.Milestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.milestones)
}

// DeleteMilestone removes a milestone. Unknown ids are ignored.
func (s *Store) DeleteMilestone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.milestones, removed = removeByID(s.milestones, id, func(m models.Milestone) string { return m.ID })
	s.logger.Debug("milestone deleted", zap.String("id", id), zap.Bool("found", removed))
}

// SetWeightGoal replaces the goal. The caller supplies StartWeight.
func (s *Store) SetWeightGoal(goal models.WeightGoal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goal = &goal
	s.logger.Debug("weight goal set",
		zap.Float64("start", goal.StartWeight),
		zap.Float64("target", goal.TargetWeight),
		zap.String("target_date", goal.TargetDate))
}

// ClearWeightGoal removes the goal.
func (s *Store) ClearWeightGoal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goal = nil
	s.logger.Debug("weight goal cleared")
}

// WeightGoal returns the current goal, if one is set.
func (s *Store) WeightGoal() (models.WeightGoal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.goal == nil {
		return models.WeightGoal{}, false
	}
	return *s.goal, true
}
