// ABOUTME: Symptom operations for the wellness store.
// ABOUTME: Rejects unknown severity levels; otherwise mirrors meals.
package store

import (
	"errors"
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidSeverity is returned when a symptom's severity is not
// mild, moderate, or severe.
var ErrInvalidSeverity = errors.New("invalid severity")

// SymptomInput holds the caller-supplied fields of a symptom.
type SymptomInput struct {
	Name        string
	Severity    models.Severity
	Note        *string
	Time        string
	Icon        string
	AndroidIcon string
}

// AddSymptom records a symptom dated today and returns it.
func (s *Store) AddSymptom(in SymptomInput) (models.Symptom, error) {
	if !in.Severity.Valid() {
		return models.Symptom{}, fmt.Errorf("add symptom %q: %w: %q", in.Name, ErrInvalidSeverity, in.Severity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sym := models.Symptom{
		ID:          s.newID(),
		Name:        in.Name,
		Severity:    in.Severity,
		Note:        in.Note,
		Time:        s.timeOr(in.Time),
		Date:        s.today(),
		Icon:        in.Icon,
		AndroidIcon: in.AndroidIcon,
	}
	s.symptoms = append(s.symptoms, sym)

	s.logger.Debug("symptom added",
		zap.String("id", sym.ID),
		zap.String("name", sym.Name),
		zap.String("severity", string(sym.Severity)))
	return sym, nil
}

// DeleteSymptom removes a symptom. Unknown ids are ignored.
func (s *Store) DeleteSymptom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.symptoms, removed = removeByID(s.symptoms, id, func(sym models.Symptom) string { return sym.ID })
	s.logger.Debug("symptom deleted", zap.String("id", id), zap.Bool("found", removed))
}

// Symptoms returns every symptom in insertion order.
func (s *Store) Symptoms() []models.Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.symptoms)
}

// TodaysSymptoms returns the symptoms dated today in insertion order.
func (s *Store) TodaysSymptoms() []models.Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDay(s.symptoms, s.today(), func(sym models.Symptom) string { return sym.Date })
}
