// ABOUTME: Meal record and daily nutrition totals.
// ABOUTME: Meals carry calories and macronutrients in grams.
package models

// Meal is a logged meal. Records are never edited after creation.
type Meal struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Calories int    `json:"calories" yaml:"calories"`
	Protein  int    `json:"protein" yaml:"protein"`
	Carbs    int    `json:"carbs" yaml:"carbs"`
	Fat      int    `json:"fat" yaml:"fat"`
	Time     string `json:"time" yaml:"time"`
	Date     string `json:"date" yaml:"date"`
}

// NutritionTotals sums the macronutrients of a set of meals.
type NutritionTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// SumNutrition totals calories and macros across meals.
func SumNutrition(meals []Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}
