package utils

import (
	"math"

	"github.com/matheuarenivas/Hygieia/models"
)

// CompositionTotals sums per-unit macros scaled by quantity over an
// in-progress composition. Pure: the same input always yields bit-identical
// totals.
func CompositionTotals(foods []models.SelectedFood) models.MacroTotals {
	var t models.MacroTotals
	for _, f := range foods {
		q := float64(f.Quantity)
		t.Calories += f.Food.Calories * q
		t.Protein += f.Food.Protein * q
		t.Carbs += f.Food.Carbs * q
		t.Fat += f.Food.Fat * q
	}
	return t
}

// MealTotals recomputes totals from a saved meal's snapshot rows.
func MealTotals(items []models.MealFood) models.MacroTotals {
	var t models.MacroTotals
	for _, it := range items {
		q := float64(it.Quantity)
		t.Calories += it.Calories * q
		t.Protein += it.Protein * q
		t.Carbs += it.Carbs * q
		t.Fat += it.Fat * q
	}
	return t
}

// DayTotals sums the frozen totals of every meal logged on a day.
func DayTotals(meals []models.Meal) models.MacroTotals {
	var t models.MacroTotals
	for _, m := range meals {
		t.Calories += m.TotalCalories
		t.Protein += m.TotalProtein
		t.Carbs += m.TotalCarbs
		t.Fat += m.TotalFat
	}
	return t
}

// RoundCalories is the display rounding for calorie totals.
func RoundCalories(v float64) int {
	return int(math.Round(v))
}

// RoundMacro rounds gram totals to one decimal place for display.
func RoundMacro(v float64) float64 {
	return math.Round(v*10) / 10
}
