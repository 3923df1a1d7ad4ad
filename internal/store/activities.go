// ABOUTME: Activity operations for the wellness store.
// ABOUTME: Adds, deletes, and filters activities; sums today's effort.
package store

import (
	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

// ActivityInput holds the caller-supplied fields of an activity.
type ActivityInput struct {
	Name        string
	Duration    int
	Calories    int
	Time        string
	Icon        string
	AndroidIcon string
}

// AddActivity records an activity dated today and returns it.
func (s *Store) AddActivity(in ActivityInput) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Activity{
		ID:          s.newID(),
		Name:        in.Name,
		Duration:    in.Duration,
		Calories:    in.Calories,
		Time:        s.timeOr(in.Time),
		Date:        s.today(),
		Icon:        in.Icon,
		AndroidIcon: in.AndroidIcon,
	}
	s.activities = append(s.activities, a)

	s.logger.Debug("activity added",
		zap.String("id", a.ID),
		zap.String("name", a.Name),
		zap.Int("duration", a.Duration))
	return a
}

// DeleteActivity removes an activity. Unknown ids are ignored.
func (s *Store) DeleteActivity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.activities, removed = removeByID(s.activities, id, func(a models.Activity) string { return a.ID })
	s.logger.Debug("activity deleted", zap.String("id", id), zap.Bool("found", removed))
}

// Activities returns every activity in insertion order.
func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.activities)
}

// TodaysActivities returns the activities dated today in insertion order.
func (s *Store) TodaysActivities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDay(s.activities, s.today(), func(a models.Activity) string { return a.Date })
}

// TodaysActivityTotals sums minutes and calories over today's activities.
func (s *Store) TodaysActivityTotals() models.ActivityTotals {
	return models.SumActivities(s.TodaysActivities())
}
