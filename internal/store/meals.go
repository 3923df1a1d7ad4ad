// ABOUTME: Meal operations for the wellness store.
// ABOUTME: Adds, deletes, and filters meals; sums today's nutrition.
package store

import (
	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
)

// MealInput holds the caller-supplied fields of a meal.
// Time defaults to the current time of day when empty.
type MealInput struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Time     string
}

// AddMeal records a meal dated today and returns it.
func (s *Store) AddMeal(in MealInput) models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Meal{
		ID:       s.newID(),
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Time:     s.timeOr(in.Time),
		Date:     s.today(),
	}
	s.meals = append(s.meals, m)

	s.logger.Debug("meal added",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
		zap.Int("calories", m.Calories))
	return m
}

// DeleteMeal removes a meal. Unknown ids are ignored.
func (s *Store) DeleteMeal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.meals, removed = removeByID(s.meals, id, func(m models.Meal) string { return m.ID })
	s.logger.Debug("meal deleted", zap.String("id", id), zap.Bool("found", removed))
}

// Meals returns every meal in insertion order.
func (s *Store) Meals() []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.meals)
}

// TodaysMeals returns the meals dated today in insertion order.
func (s *Store) TodaysMeals() []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDay(s.meals, s.today(), func(m models.Meal) string { return m.Date })
}

// TodaysNutrition totals calories and macros over today's meals.
func (s *Store) TodaysNutrition() models.NutritionTotals {
	return models.SumNutrition(s.TodaysMeals())
}
