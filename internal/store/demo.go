// ABOUTME: Sample data for trying the app without logging anything first.
// ABOUTME: Seeds meals, activities, a month of weigh-ins, a goal, and milestones.
package store

import (
	"time"

	"github.com/harperreed/balance/internal/models"
)

const day = 24 * time.Hour

// SeedDemo fills s with a representative day of data and a 30-day weight
// history. Weigh-ins are inserted directly, so no milestones are generated
// for them; the seeded milestones stand in.
func SeedDemo(s *Store) {
	s.AddMeal(MealInput{Name: "Oatmeal with berries", Calories: 350, Protein: 12, Carbs: 58, Fat: 8, Time: "8:30 AM"})
	s.AddMeal(MealInput{Name: "Grilled chicken salad", Calories: 550, Protein: 45, Carbs: 32, Fat: 22, Time: "12:45 PM"})
	s.AddMeal(MealInput{Name: "Salmon with vegetables", Calories: 550, Protein: 42, Carbs: 28, Fat: 26, Time: "7:00 PM"})

	s.AddActivity(ActivityInput{Name: "Morning Run", Duration: 30, Calories: 320, Time: "7:00 AM", Icon: "figure.run", AndroidIcon: "directions-run"})
	s.AddActivity(ActivityInput{Name: "Yoga Session", Duration: 45, Calories: 180, Time: "6:00 PM", Icon: "figure.yoga", AndroidIcon: "self-improvement"})

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ago := func(days int) string {
		return models.DayOf(now.Add(-time.Duration(days) * day))
	}

	history := []struct {
		daysAgo int
		weight  float64
		time    string
		note    string
	}{
		{30, 75.5, "8:00 AM", "Starting weight"},
		{23, 74.8, "8:15 AM", ""},
		{16, 74.2, "8:10 AM", ""},
		{9, 73.8, "8:05 AM", ""},
		{2, 73.5, "8:20 AM", ""},
		{0, 73.2, "8:00 AM", "Feeling great!"},
	}
	for _, h := range history {
		s.insertWeightEntry(models.WeightEntry{
			ID:     s.newID(),
			Weight: h.weight,
			Date:   ago(h.daysAgo),
			Time:   h.time,
			Note:   models.StringPtr(h.note),
		})
	}

	s.goal = &models.WeightGoal{
		TargetWeight: 70,
		StartWeight:  75.5,
		StartDate:    ago(30),
		TargetDate:   models.DayOf(now.Add(60 * day)),
	}

	s.milestones = append(s.milestones,
		models.Milestone{ID: s.newID(), Weight: 75, Date: ago(25), Message: "Lost first 0.5 kg!"},
		models.Milestone{ID: s.newID(), Weight: 74, Date: ago(18), Message: "Down 1.5 kg from start!"},
		models.Milestone{ID: s.newID(), Weight: 73, Date: ago(5), Message: "Amazing progress! 2.5 kg lost!"},
	)

	for range 6 {
		s.water[models.DayOf(now)]++
	}
}
