// ABOUTME: Repository interface for the wellness store.
// ABOUTME: Defines the contract consumed by the CLI and the MCP server.
package store

import "github.com/harperreed/balance/internal/models"

// Repository defines the wellness store interface.
// Consumers take a Repository so tests can swap implementations.
type Repository interface {
	// Meal operations
	AddMeal(in MealInput) models.Meal
	DeleteMeal(id string)
	Meals() []models.Meal
	TodaysMeals() []models.Meal
	TodaysNutrition() models.NutritionTotals

	// Activity operations
	AddActivity(in ActivityInput) models.Activity
	DeleteActivity(id string)
	Activities() []models.Activity
	TodaysActivities() []models.Activity
	TodaysActivityTotals() models.ActivityTotals

	// Symptom operations
	AddSymptom(in SymptomInput) (models.Symptom, error)
	DeleteSymptom(id string)
	Symptoms() []models.Symptom
	TodaysSymptoms() []models.Symptom

	// Mood operations
	AddMoodEntry(in MoodInput) (models.MoodEntry, error)
	DeleteMoodEntry(id string)
	MoodEntries() []models.MoodEntry
	TodaysMoodEntries() []models.MoodEntry

	// Weight operations
	AddWeightEntry(weight float64, note *string) models.WeightEntry
	LogWeight(weight float64, note *string) (models.WeightEntry, *models.Milestone)
	DeleteWeightEntry(id string)
	WeightEntries() []models.WeightEntry
	Milestones() []models.Milestone
	DeleteMilestone(id string)
	SetWeightGoal(goal models.WeightGoal)
	ClearWeightGoal()
	WeightGoal() (models.WeightGoal, bool)

	// Water intake
	AddWater() int
	RemoveWater() int
	AdjustWater(delta int) int
	WaterToday() int

	// Profile
	SetHeight(cm float64)
	SetNickname(name string)
	Height() float64
	Nickname() string

	// Derived metrics
	CurrentWeight() (float64, bool)
	BMI() (float64, bool)
	BMICategory() models.BMICategory
	WeightProgress() float64

	// Export
	Export() *ExportData
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown() string
	Encode(f Format) ([]byte, error)
	WriteExport(dir string, f Format) (string, error)
}
