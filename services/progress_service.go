// services/progress_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
	"github.com/matheuarenivas/Hygieia/utils"
	"gorm.io/gorm"
)

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}

// GetGoalsAndProgress returns the user's targets plus consumed/goal/percent
// for one day. A user with no saved goals gets zero targets, not an error.
func GetGoalsAndProgress(userID uint, date string) (*models.DailyGoal, map[string]any, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			goal = models.DailyGoal{UserID: userID}
		} else {
			return nil, nil, err
		}
	}

	meals := []models.Meal{}
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("position").
		Find(&meals).Error; err != nil {
		return &goal, nil, err
	}
	totals := utils.DayTotals(meals)

	hydration, err := WaterForDate(userID, date)
	if err != nil {
		return &goal, nil, err
	}

	progress := map[string]any{
		"calories":  map[string]float64{"consumed": totals.Calories, "goal": goal.Calories, "percent": pct(totals.Calories, goal.Calories)},
		"protein":   map[string]float64{"consumed": totals.Protein, "goal": goal.Protein, "percent": pct(totals.Protein, goal.Protein)},
		"carbs":     map[string]float64{"consumed": totals.Carbs, "goal": goal.Carbs, "percent": pct(totals.Carbs, goal.Carbs)},
		"fat":       map[string]float64{"consumed": totals.Fat, "goal": goal.Fat, "percent": pct(totals.Fat, goal.Fat)},
		"hydration": map[string]float64{"consumed": hydration, "goal": goal.Hydration, "percent": pct(hydration, goal.Hydration)},
	}

	return &goal, progress, nil
}

func UpsertGoals(userID uint, calories, protein, carbs, fat, hydration float64) error {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:    userID,
			Calories:  calories,
			Protein:   protein,
			Carbs:     carbs,
			Fat:       fat,
			Hydration: hydration,
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	goal.Hydration = hydration

	return config.DB.Save(&goal).Error
}

// RecomputeDailyProgress rebuilds the cached per-day snapshot from the
// ledger and water logs. Summing frozen meal totals keeps this idempotent:
// the same ledger always produces the same row.
func RecomputeDailyProgress(userID uint, date string) (*models.DailyProgress, error) {
	meals := []models.Meal{}
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	totals := utils.DayTotals(meals)

	hydration, err := WaterForDate(userID, date)
	if err != nil {
		return nil, err
	}

	dp := models.DailyProgress{
		UserID:    userID,
		Date:      date,
		Calories:  totals.Calories,
		Protein:   totals.Protein,
		Carbs:     totals.Carbs,
		Fat:       totals.Fat,
		Hydration: hydration,
	}

	var existing models.DailyProgress
	err = config.DB.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&dp).Error; err != nil {
			return nil, err
		}
		return &dp, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Calories = dp.Calories
	existing.Protein = dp.Protein
	existing.Carbs = dp.Carbs
	existing.Fat = dp.Fat
	existing.Hydration = dp.Hydration
	if err := config.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func GetDailyProgressHistory(userID uint) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&rows).Error
	return rows, err
}

// maybeEmitCalorieAlert warns when a day's intake passes the calorie goal.
func maybeEmitCalorieAlert(userID uint, progress *models.DailyProgress) {
	if progress == nil {
		return
	}
	var goal models.DailyGoal
	if err := config.DB.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return
	}
	if goal.Calories > 0 && progress.Calories > goal.Calories {
		EmitAlert(userID, "warning", fmt.Sprintf(
			"You are %d kcal over your daily goal of %d kcal.",
			utils.RoundCalories(progress.Calories-goal.Calories),
			utils.RoundCalories(goal.Calories),
		))
	}
}
