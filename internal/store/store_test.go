// ABOUTME: Tests for meal, activity, symptom, mood, and profile operations.
// ABOUTME: Verifies today filters, idempotent deletes, and input validation.
package store

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/balance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	assert.Equal(t, DefaultHeight, s.Height())
	assert.Empty(t, s.Nickname())
	assert.Empty(t, s.Meals())
	assert.Empty(t, s.WeightEntries())
	_, ok := s.WeightGoal()
	assert.False(t, ok)
}

func TestAddMealAssignsIDAndDate(t *testing.T) {
	s := New()

	m := s.AddMeal(MealInput{Name: "Oatmeal", Calories: 350, Protein: 12, Carbs: 58, Fat: 8, Time: "8:30 AM"})

	_, err := uuid.Parse(m.ID)
	require.NoError(t, err, "expected a UUID id")
	assert.Equal(t, models.DayOf(s.now()), m.Date)
	assert.Equal(t, "8:30 AM", m.Time)
	assert.Equal(t, 350, m.Calories)
}

func TestAddMealDefaultsTime(t *testing.T) {
	s, _ := setupTestStore(t)

	m := s.AddMeal(MealInput{Name: "Snack"})
	assert.Equal(t, "9:30 AM", m.Time)
}

func TestUniqueIDs(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m := s.AddMeal(MealInput{Name: "meal"})
		require.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestTodaysMealsFiltersByDay(t *testing.T) {
	s, clock := setupTestStore(t)

	yesterday := s.AddMeal(MealInput{Name: "Yesterday dinner"})
	clock.Advance(day)
	first := s.AddMeal(MealInput{Name: "Breakfast"})
	second := s.AddMeal(MealInput{Name: "Lunch"})

	got := s.TodaysMeals()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)

	all := s.Meals()
	require.Len(t, all, 3)
	assert.Equal(t, yesterday.ID, all[0].ID)
}

func TestTodaysFiltersAllCollections(t *testing.T) {
	s, clock := setupTestStore(t)

	s.AddActivity(ActivityInput{Name: "Old run"})
	_, err := s.AddSymptom(SymptomInput{Name: "Old headache", Severity: models.SeverityMild})
	require.NoError(t, err)
	_, err = s.AddMoodEntry(MoodInput{Mood: "Low", Value: 2})
	require.NoError(t, err)

	clock.Advance(day)

	run := s.AddActivity(ActivityInput{Name: "Morning Run", Duration: 30, Calories: 320, Icon: "figure.run", AndroidIcon: "directions-run"})
	yoga := s.AddActivity(ActivityInput{Name: "Yoga", Duration: 45, Calories: 180})
	sym, err := s.AddSymptom(SymptomInput{Name: "Headache", Severity: models.SeverityModerate, Note: models.StringPtr("after lunch")})
	require.NoError(t, err)
	mood, err := s.AddMoodEntry(MoodInputFromPreset(models.MoodPresets[0], nil))
	require.NoError(t, err)

	activities := s.TodaysActivities()
	require.Len(t, activities, 2)
	assert.Equal(t, []string{run.ID, yoga.ID}, []string{activities[0].ID, activities[1].ID})

	symptoms := s.TodaysSymptoms()
	require.Len(t, symptoms, 1)
	assert.Equal(t, sym.ID, symptoms[0].ID)
	require.NotNil(t, symptoms[0].Note)
	assert.Equal(t, "after lunch", *symptoms[0].Note)

	moods := s.TodaysMoodEntries()
	require.Len(t, moods, 1)
	assert.Equal(t, mood.ID, moods[0].ID)
	assert.Equal(t, "Great", moods[0].Mood)
	assert.Equal(t, 5, moods[0].Value)

	assert.Len(t, s.Activities(), 3)
	assert.Len(t, s.Symptoms(), 2)
	assert.Len(t, s.MoodEntries(), 2)
}

func TestDeleteRemovesRecord(t *testing.T) {
	s, _ := setupTestStore(t)

	meal := s.AddMeal(MealInput{Name: "Salad"})
	keep := s.AddMeal(MealInput{Name: "Soup"})
	act := s.AddActivity(ActivityInput{Name: "Swim"})
	sym, _ := s.AddSymptom(SymptomInput{Name: "Cough", Severity: models.SeverityMild})
	mood, _ := s.AddMoodEntry(MoodInput{Mood: "Okay", Value: 3})

	s.DeleteMeal(meal.ID)
	s.DeleteActivity(act.ID)
	s.DeleteSymptom(sym.ID)
	s.DeleteMoodEntry(mood.ID)

	meals := s.TodaysMeals()
	require.Len(t, meals, 1)
	assert.Equal(t, keep.ID, meals[0].ID)
	assert.Empty(t, s.TodaysActivities())
	assert.Empty(t, s.TodaysSymptoms())
	assert.Empty(t, s.TodaysMoodEntries())
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s, _ := setupTestStore(t)

	s.AddMeal(MealInput{Name: "Salad"})
	s.AddActivity(ActivityInput{Name: "Swim"})
	before := s.Export()

	s.DeleteMeal("missing")
	s.DeleteActivity("missing")
	s.DeleteSymptom("missing")
	s.DeleteMoodEntry("missing")
	s.DeleteWeightEntry("missing")
	s.DeleteMilestone("missing")

	after := s.Export()
	assert.Equal(t, before.Meals, after.Meals)
	assert.Equal(t, before.Activities, after.Activities)
}

func TestAddSymptomRejectsUnknownSeverity(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.AddSymptom(SymptomInput{Name: "Nausea", Severity: "unbearable"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSeverity))
	assert.Empty(t, s.Symptoms())
}

func TestAddMoodEntryRejectsOutOfRange(t *testing.T) {
	s, _ := setupTestStore(t)

	for _, v := range []int{0, 6, -1} {
		_, err := s.AddMoodEntry(MoodInput{Mood: "?", Value: v})
		assert.ErrorIs(t, err, ErrInvalidMoodValue, "value %d", v)
	}
	assert.Empty(t, s.MoodEntries())
}

func TestReturnedSlicesDoNotAliasState(t *testing.T) {
	s, _ := setupTestStore(t)
	s.AddMeal(MealInput{Name: "Original"})

	meals := s.Meals()
	meals[0].Name = "Changed"

	assert.Equal(t, "Original", s.Meals()[0].Name)
}

func TestProfileSetters(t *testing.T) {
	s, _ := setupTestStore(t)

	s.SetHeight(182.5)
	s.SetNickname("Sam")

	assert.Equal(t, 182.5, s.Height())
	assert.Equal(t, "Sam", s.Nickname())

	s.SetHeight(0)
	assert.Equal(t, 0.0, s.Height())
}

func TestWaterIntakeBounds(t *testing.T) {
	s, clock := setupTestStore(t)

	assert.Equal(t, 0, s.RemoveWater(), "never below zero")
	for i := 0; i < MaxWaterGlasses+5; i++ {
		s.AddWater()
	}
	assert.Equal(t, MaxWaterGlasses, s.WaterToday())
	assert.Equal(t, MaxWaterGlasses-1, s.RemoveWater())

	clock.Advance(day)
	assert.Equal(t, 0, s.WaterToday(), "water count is per day")
	assert.Equal(t, 1, s.AddWater())
}

func TestAdjustWaterAppliesDeltaOnce(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.Equal(t, 3, s.AdjustWater(3))
	assert.Equal(t, MaxWaterGlasses, s.AdjustWater(math.MaxInt))
	assert.Equal(t, MaxWaterGlasses-5, s.AdjustWater(-5))
	assert.Equal(t, 0, s.AdjustWater(math.MinInt))
	assert.Equal(t, 0, s.WaterToday())
}

func TestWaterProgress(t *testing.T) {
	assert.InDelta(t, 75.0, WaterProgress(6, 8), 1e-9)
	assert.InDelta(t, 0.0, WaterProgress(3, 0), 1e-9)
	assert.InDelta(t, 125.0, WaterProgress(10, 8), 1e-9)
}

func TestTodaysTotals(t *testing.T) {
	s, _ := setupTestStore(t)

	s.AddMeal(MealInput{Name: "A", Calories: 350, Protein: 12, Carbs: 58, Fat: 8})
	s.AddMeal(MealInput{Name: "B", Calories: 550, Protein: 45, Carbs: 32, Fat: 22})
	s.AddActivity(ActivityInput{Name: "Run", Duration: 30, Calories: 320})

	assert.Equal(t, models.NutritionTotals{Calories: 900, Protein: 57, Carbs: 90, Fat: 30}, s.TodaysNutrition())
	assert.Equal(t, models.ActivityTotals{Minutes: 30, Calories: 320}, s.TodaysActivityTotals())
}

func TestConcurrentAdds(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddMeal(MealInput{Name: "meal"})
			s.AddWeightEntry(80, nil)
			_, _ = s.BMI()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Meals(), 20)
	assert.Len(t, s.WeightEntries(), 20)
}
