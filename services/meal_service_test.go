package services

import (
	"testing"

	"github.com/matheuarenivas/Hygieia/models"

	"github.com/stretchr/testify/require"
)

func TestAddMealFreezesTotalsAndCommits(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	oatmeal := catalogFood(t, 1) // 150 kcal, 6 P, 27 C, 2.5 F per unit
	meal, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 2},
	})
	require.NoError(t, err)

	require.NotEmpty(t, meal.ID)
	require.Equal(t, "2024-03-15", meal.Date)
	require.Equal(t, "Breakfast", meal.Type)
	require.Equal(t, 1, meal.Position)
	require.Equal(t, models.MealStatusCommitted, meal.Status)

	require.Equal(t, 300.0, meal.TotalCalories)
	require.Equal(t, 12.0, meal.TotalProtein)
	require.Equal(t, 54.0, meal.TotalCarbs)
	require.Equal(t, 5.0, meal.TotalFat)

	day, err := svc.MealsForDate(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day, 1)
	require.Len(t, day[0].Foods, 1)
	require.Equal(t, 2, day[0].Foods[0].Quantity)

	var dp models.DailyProgress
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, "2024-03-15").First(&dp).Error)
	require.Equal(t, 300.0, dp.Calories)
}

func TestAddMealAppendsInOrder(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	banana := catalogFood(t, 3)
	for _, typ := range []string{"Breakfast", "Lunch", "Dinner"} {
		_, err := svc.AddMeal(user.ID, "2024-03-15", typ, []models.SelectedFood{
			{Food: banana, Quantity: 1},
		})
		require.NoError(t, err)
	}

	day, err := svc.MealsForDate(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day, 3)
	for i, m := range day {
		require.Equal(t, i+1, m.Position)
	}
	require.Equal(t, "Breakfast", day[0].Type)
	require.Equal(t, "Dinner", day[2].Type)
}

func TestAddMealValidation(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)
	oatmeal := catalogFood(t, 1)
	foods := []models.SelectedFood{{Food: oatmeal, Quantity: 1}}

	_, err := svc.AddMeal(user.ID, "03/15/2024", "Breakfast", foods)
	require.Error(t, err)

	_, err = svc.AddMeal(user.ID, "2024-03-15", "Brunch", foods)
	require.Error(t, err)

	_, err = svc.AddMeal(user.ID, "2024-03-15", "Breakfast", nil)
	require.Error(t, err)
}

func TestUpdateMealPreservesIdentity(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	oatmeal := catalogFood(t, 1)
	banana := catalogFood(t, 3)

	meal, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 1},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMeal(user.ID, meal.ID, "Lunch", []models.SelectedFood{
		{Food: banana, Quantity: 3},
	})
	require.NoError(t, err)

	require.Equal(t, meal.ID, updated.ID)
	require.Equal(t, meal.Date, updated.Date)
	require.Equal(t, "Lunch", updated.Type)
	require.Equal(t, banana.Calories*3, updated.TotalCalories)
	require.Equal(t, banana.Protein*3, updated.TotalProtein)
	require.Len(t, updated.Foods, 1)
	require.Equal(t, banana.ID, updated.Foods[0].FoodID)

	// replacement, not a second entry
	day, err := svc.MealsForDate(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day, 1)
}

func TestUpdateMealUnknownID(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)
	oatmeal := catalogFood(t, 1)

	_, err := svc.UpdateMeal(user.ID, "no-such-id", "Lunch", []models.SelectedFood{
		{Food: oatmeal, Quantity: 1},
	})
	require.ErrorIs(t, err, ErrMealNotFound)
}

func TestRemoveMealShrinksDay(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	oatmeal := catalogFood(t, 1)
	banana := catalogFood(t, 3)

	first, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 2},
	})
	require.NoError(t, err)
	_, err = svc.AddMeal(user.ID, "2024-03-15", "Lunch", []models.SelectedFood{
		{Food: banana, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMeal(user.ID, first.ID))

	day, err := svc.MealsForDate(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day, 1)
	require.Equal(t, "Lunch", day[0].Type)

	// snapshot rows gone with the entry
	var count int64
	require.NoError(t, db.Model(&models.MealFood{}).Where("meal_id = ?", first.ID).Count(&count).Error)
	require.Zero(t, count)

	var dp models.DailyProgress
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, "2024-03-15").First(&dp).Error)
	require.Equal(t, banana.Calories, dp.Calories)
}

func TestRemoveMealUnknownID(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := NewMealService(nil)

	require.ErrorIs(t, svc.RemoveMeal(user.ID, "no-such-id"), ErrMealNotFound)
}

func TestMealsForDateEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := NewMealService(nil)

	day, err := svc.MealsForDate(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, day)
	require.Empty(t, day)
}

func TestRetryCommittedMealIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)
	oatmeal := catalogFood(t, 1)

	meal, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 1},
	})
	require.NoError(t, err)

	retried, err := svc.RetryMeal(user.ID, meal.ID)
	require.NoError(t, err)
	require.Equal(t, meal.ID, retried.ID)
	require.Equal(t, models.MealStatusCommitted, retried.Status)
}

func TestCalorieAlertOnGoalOverrun(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	require.NoError(t, UpsertGoals(user.ID, 200, 0, 0, 0, 0))

	oatmeal := catalogFood(t, 1)
	_, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 2}, // 300 kcal against a 200 kcal goal
	})
	require.NoError(t, err)

	alerts, err := ListAlerts(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "warning", alerts[0].Type)
	require.Contains(t, alerts[0].Message, "100 kcal over")
}

func TestMealsAreScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	alice := seedUser(t, db)
	bob := models.User{Email: "bob@example.com", Password: "x"}
	require.NoError(t, db.Create(&bob).Error)
	svc := NewMealService(nil)
	oatmeal := catalogFood(t, 1)

	meal, err := svc.AddMeal(alice.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = svc.GetMeal(bob.ID, meal.ID)
	require.ErrorIs(t, err, ErrMealNotFound)
	require.ErrorIs(t, svc.RemoveMeal(bob.ID, meal.ID), ErrMealNotFound)
}
