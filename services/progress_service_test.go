package services

import (
	"testing"

	"github.com/matheuarenivas/Hygieia/models"

	"github.com/stretchr/testify/require"
)

func TestPctClampsAtOne(t *testing.T) {
	require.Equal(t, 0.5, pct(50, 100))
	require.Equal(t, 1.0, pct(150, 100))
	require.Equal(t, 0.0, pct(10, 0))
}

func TestUpsertGoalsCreateThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	require.NoError(t, UpsertGoals(user.ID, 2000, 150, 250, 70, 2.5))
	require.NoError(t, UpsertGoals(user.ID, 1800, 140, 200, 60, 3))

	var rows []models.DailyGoal
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, 1800.0, rows[0].Calories)
	require.Equal(t, 3.0, rows[0].Hydration)
}

func TestGetGoalsAndProgressWithoutGoals(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	goal, progress, err := GetGoalsAndProgress(user.ID, "2024-03-15")
	require.NoError(t, err)
	require.Equal(t, 0.0, goal.Calories)

	cal := progress["calories"].(map[string]float64)
	require.Equal(t, 0.0, cal["consumed"])
	require.Equal(t, 0.0, cal["percent"])
}

func TestRecomputeDailyProgressIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedCatalog())
	user := seedUser(t, db)
	svc := NewMealService(nil)

	oatmeal := catalogFood(t, 1)
	_, err := svc.AddMeal(user.ID, "2024-03-15", "Breakfast", []models.SelectedFood{
		{Food: oatmeal, Quantity: 2},
	})
	require.NoError(t, err)

	first, err := RecomputeDailyProgress(user.ID, "2024-03-15")
	require.NoError(t, err)
	second, err := RecomputeDailyProgress(user.ID, "2024-03-15")
	require.NoError(t, err)

	require.Equal(t, first.Calories, second.Calories)
	require.Equal(t, first.Protein, second.Protein)

	var count int64
	require.NoError(t, db.Model(&models.DailyProgress{}).
		Where("user_id = ? AND date = ?", user.ID, "2024-03-15").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProgressIncludesHydration(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	require.NoError(t, UpsertGoals(user.ID, 2000, 0, 0, 0, 2))

	total, err := AddWater(user.ID, "2024-03-15", 0.5)
	require.NoError(t, err)
	require.Equal(t, 0.5, total)
	total, err = AddWater(user.ID, "2024-03-15", 0.5)
	require.NoError(t, err)
	require.Equal(t, 1.0, total)

	_, progress, err := GetGoalsAndProgress(user.ID, "2024-03-15")
	require.NoError(t, err)
	hyd := progress["hydration"].(map[string]float64)
	require.Equal(t, 1.0, hyd["consumed"])
	require.Equal(t, 0.5, hyd["percent"])
}
