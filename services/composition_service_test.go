package services

import (
	"testing"

	"github.com/matheuarenivas/Hygieia/models"

	"github.com/stretchr/testify/require"
)

var (
	testOatmeal = models.FoodItem{ID: 1, Name: "Oatmeal", Calories: 150, Protein: 6, Carbs: 27, Fat: 2.5}
	testBanana  = models.FoodItem{ID: 3, Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4}
)

func TestCompositionDefaults(t *testing.T) {
	store := NewCompositionStore()

	c := store.Get(1)
	require.Equal(t, "Breakfast", c.MealType)
	require.Empty(t, c.Foods)
}

func TestCompositionAddAllowsDuplicates(t *testing.T) {
	store := NewCompositionStore()

	store.AddFood(1, testOatmeal)
	c := store.AddFood(1, testOatmeal)

	require.Len(t, c.Foods, 2)
	require.Equal(t, 1, c.Foods[0].Quantity)
	require.Equal(t, 1, c.Foods[1].Quantity)
}

func TestCompositionQuantityEdits(t *testing.T) {
	store := NewCompositionStore()
	store.AddFood(1, testOatmeal)

	c := store.SetQuantity(1, testOatmeal.ID, 5)
	require.Equal(t, 5, c.Foods[0].Quantity)

	c = store.SetQuantity(1, testOatmeal.ID, 0) // floored at 1
	require.Equal(t, 1, c.Foods[0].Quantity)

	c = store.IncrementQuantity(1, testOatmeal.ID)
	require.Equal(t, 2, c.Foods[0].Quantity)

	store.DecrementQuantity(1, testOatmeal.ID)
	c = store.DecrementQuantity(1, testOatmeal.ID) // clamps at 1
	require.Equal(t, 1, c.Foods[0].Quantity)
}

func TestCompositionRemoveDropsAllRows(t *testing.T) {
	store := NewCompositionStore()
	store.AddFood(1, testOatmeal)
	store.AddFood(1, testBanana)
	store.AddFood(1, testOatmeal)

	c := store.RemoveFood(1, testOatmeal.ID)
	require.Len(t, c.Foods, 1)
	require.Equal(t, testBanana.ID, c.Foods[0].Food.ID)
}

func TestCompositionTotalsTrackEdits(t *testing.T) {
	store := NewCompositionStore()
	store.AddFood(1, testOatmeal)
	store.SetQuantity(1, testOatmeal.ID, 2)

	totals := store.Totals(1)
	require.Equal(t, 300.0, totals.Calories)
	require.Equal(t, 12.0, totals.Protein)
	require.Equal(t, 54.0, totals.Carbs)
	require.Equal(t, 5.0, totals.Fat)
}

func TestCompositionClear(t *testing.T) {
	store := NewCompositionStore()
	store.SetMealType(1, "Dinner")
	store.AddFood(1, testOatmeal)

	store.Clear(1)

	c := store.Get(1)
	require.Equal(t, "Breakfast", c.MealType)
	require.Empty(t, c.Foods)
}

func TestCompositionIsPerUser(t *testing.T) {
	store := NewCompositionStore()
	store.AddFood(1, testOatmeal)
	store.SetMealType(1, "Lunch")

	c := store.Get(2)
	require.Equal(t, "Breakfast", c.MealType)
	require.Empty(t, c.Foods)
}

func TestCompositionGetReturnsSnapshot(t *testing.T) {
	store := NewCompositionStore()
	store.AddFood(1, testOatmeal)

	c := store.Get(1)
	c.Foods[0].Quantity = 99

	require.Equal(t, 1, store.Get(1).Foods[0].Quantity)
}
