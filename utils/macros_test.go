package utils

import (
	"math/rand"
	"testing"

	"github.com/matheuarenivas/Hygieia/models"

	"github.com/stretchr/testify/require"
)

func TestCompositionTotals(t *testing.T) {
	foods := []models.SelectedFood{
		{Food: models.FoodItem{Calories: 150, Protein: 6, Carbs: 27, Fat: 2.5}, Quantity: 2},
		{Food: models.FoodItem{Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4}, Quantity: 1},
	}

	got := CompositionTotals(foods)
	require.Equal(t, 405.0, got.Calories)
	require.Equal(t, 13.3, got.Protein)
	require.Equal(t, 81.0, got.Carbs)
	require.Equal(t, 5.4, got.Fat)
}

func TestCompositionTotalsEmpty(t *testing.T) {
	require.Equal(t, models.MacroTotals{}, CompositionTotals(nil))
}

// Totals are a pure function of the input: repeated calls must agree to
// the bit.
func TestCompositionTotalsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := rng.Intn(8) + 1
		foods := make([]models.SelectedFood, n)
		for j := range foods {
			foods[j] = models.SelectedFood{
				Food: models.FoodItem{
					Calories: rng.Float64() * 500,
					Protein:  rng.Float64() * 40,
					Carbs:    rng.Float64() * 80,
					Fat:      rng.Float64() * 30,
				},
				Quantity: rng.Intn(5) + 1,
			}
		}
		require.Equal(t, CompositionTotals(foods), CompositionTotals(foods))
	}
}

func TestMealTotalsMatchesComposition(t *testing.T) {
	foods := []models.SelectedFood{
		{Food: models.FoodItem{ID: 1, Calories: 150, Protein: 6, Carbs: 27, Fat: 2.5}, Quantity: 3},
	}
	items := []models.MealFood{
		{FoodID: 1, Quantity: 3, Calories: 150, Protein: 6, Carbs: 27, Fat: 2.5},
	}
	require.Equal(t, CompositionTotals(foods), MealTotals(items))
}

func TestDayTotalsSumsFrozenTotals(t *testing.T) {
	meals := []models.Meal{
		{TotalCalories: 300, TotalProtein: 12, TotalCarbs: 54, TotalFat: 5},
		{TotalCalories: 105, TotalProtein: 1.3, TotalCarbs: 27, TotalFat: 0.4},
	}

	got := DayTotals(meals)
	require.Equal(t, 405.0, got.Calories)
	require.Equal(t, 13.3, got.Protein)
	require.Equal(t, 81.0, got.Carbs)
	require.Equal(t, 5.4, got.Fat)
}

func TestRounding(t *testing.T) {
	require.Equal(t, 300, RoundCalories(299.5))
	require.Equal(t, 299, RoundCalories(299.4))
	require.Equal(t, 5.3, RoundMacro(5.25))
	require.Equal(t, 5.0, RoundMacro(5.04))
}
