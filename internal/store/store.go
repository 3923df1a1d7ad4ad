// ABOUTME: In-memory wellness store construction and shared helpers.
// ABOUTME: Holds every tracked collection for the lifetime of one session.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

// DefaultHeight is the profile height in centimeters before the user sets one.
const DefaultHeight = 170.0

// Store is the in-memory source of truth for one user's wellness data.
// All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	now    func() time.Time
	newID  func() string
	logger *zap.Logger

	meals       []models.Meal
	activities  []models.Activity
	symptoms    []models.Symptom
	moodEntries []models.MoodEntry

	// weightEntries is kept in ascending date order.
	weightEntries []models.WeightEntry
	milestones    []models.Milestone
	goal          *models.WeightGoal

	// water holds glasses per calendar day.
	water map[string]int

	height   float64
	nickname string
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids, dates, and today filters.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used to record mutations.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithHeight sets the initial profile height in centimeters.
func WithHeight(cm float64) Option {
	return func(s *Store) {
		s.height = cm
	}
}

// WithNickname sets the initial profile nickname.
func WithNickname(name string) Option {
	return func(s *Store) {
		s.nickname = name
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      zap.NewNop(),
		meals:       []models.Meal{},
		activities:  []models.Activity{},
		symptoms:    []models.Symptom{},
		moodEntries: []models.MoodEntry{},

		weightEntries: []models.WeightEntry{},
		milestones:    []models.Milestone{},
		water:         make(map[string]int),
		height:        DefaultHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar-day string.
func (s *Store) today() string {
	return models.DayOf(s.now())
}

// timeOr returns t, or the current display time when t is empty.
func (s *Store) timeOr(t string) string {
	if t != "" {
		return t
	}
	return models.TimeOf(s.now())
}

// removeByID drops the first element whose id matches. Unknown ids leave
// the slice untouched.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

// filterDay returns the items dated day, preserving order.
func filterDay[T any](items []T, day string, dateOf func(T) string) []T {
	out := []T{}
	for _, item := range items {
		if dateOf(item) == day {
			out = append(out, item)
		}
	}
	return out
}

// clone copies a slice so callers cannot alias store state.
func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
