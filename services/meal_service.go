// services/meal_service.go
package services

import (
	"errors"
	"time"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
	"github.com/matheuarenivas/Hygieia/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMealNotFound is returned when an id does not exist in the ledger.
// Update/remove of an unknown id is a hard error, never a silent no-op.
var ErrMealNotFound = errors.New("meal not found")

var mealTypes = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
	"Snack":     true,
}

type MealService struct {
	hub *RealtimeHub
}

func NewMealService(hub *RealtimeHub) *MealService {
	return &MealService{hub: hub}
}

func snapshotFoods(mealID string, foods []models.SelectedFood) []models.MealFood {
	items := make([]models.MealFood, 0, len(foods))
	for _, f := range foods {
		q := f.Quantity
		if q < 1 {
			q = 1
		}
		items = append(items, models.MealFood{
			MealID:   mealID,
			FoodID:   f.Food.ID,
			Name:     f.Food.Name,
			Quantity: q,
			Calories: f.Food.Calories,
			Protein:  f.Food.Protein,
			Carbs:    f.Food.Carbs,
			Fat:      f.Food.Fat,
		})
	}
	return items
}

func validateMealInput(date, mealType string, foods []models.SelectedFood) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !mealTypes[mealType] {
		return errors.New("type must be one of Breakfast, Lunch, Dinner, Snack")
	}
	if len(foods) == 0 {
		return errors.New("meal needs at least one food")
	}
	return nil
}

// AddMeal freezes the composition's totals into a new ledger entry and
// appends it to the day's sequence. The entry and its snapshot rows land
// in one transaction, then finalize commits or fails it.
func (s *MealService) AddMeal(userID uint, date, mealType string, foods []models.SelectedFood) (*models.Meal, error) {
	if err := validateMealInput(date, mealType, foods); err != nil {
		return nil, err
	}

	totals := utils.CompositionTotals(foods)
	meal := &models.Meal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Type:          mealType,
		Date:          date,
		Time:          time.Now().Format("3:04 PM"),
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		Status:        models.MealStatusPending,
	}
	meal.Foods = snapshotFoods(meal.ID, foods)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.Meal{}).
			Where("user_id = ? AND date = ?", userID, date).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		meal.Position = maxPos + 1
		return tx.Create(meal).Error
	})
	if err != nil {
		return nil, err
	}

	s.finalize(meal, "meal.created")
	return meal, nil
}

// UpdateMeal replaces the entry in place: new type, new foods, recomputed
// totals. Id and date never change.
func (s *MealService) UpdateMeal(userID uint, mealID, mealType string, foods []models.SelectedFood) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	if err := validateMealInput(meal.Date, mealType, foods); err != nil {
		return nil, err
	}

	totals := utils.CompositionTotals(foods)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		meal.Type = mealType
		meal.TotalCalories = totals.Calories
		meal.TotalProtein = totals.Protein
		meal.TotalCarbs = totals.Carbs
		meal.TotalFat = totals.Fat
		meal.Status = models.MealStatusPending
		meal.Foods = nil
		if err := tx.Save(&meal).Error; err != nil {
			return err
		}
		items := snapshotFoods(meal.ID, foods)
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetMeal(userID, meal.ID)
	if err != nil {
		return nil, err
	}
	s.finalize(updated, "meal.updated")
	return updated, nil
}

// RemoveMeal deletes the entry and its snapshot rows.
func (s *MealService) RemoveMeal(userID uint, mealID string) error {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return err
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
	if err != nil {
		return err
	}

	if _, err := RecomputeDailyProgress(userID, meal.Date); err == nil && s.hub != nil {
		s.hub.Broadcast(userID, "meal.deleted", map[string]any{"id": meal.ID, "date": meal.Date})
	}
	return nil
}

func (s *MealService) GetMeal(userID uint, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// MealsForDate returns the day's entries in append order. A day with no
// entries is an empty slice; unknown dates are not distinguished.
func (s *MealService) MealsForDate(userID uint, date string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := config.DB.
		Preload("Foods").
		Where("user_id = ? AND date = ?", userID, date).
		Order("position").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := config.DB.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("created_at DESC, position DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// RetryMeal re-runs the finalize step for an entry stuck in "failed".
func (s *MealService) RetryMeal(userID uint, mealID string) (*models.Meal, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	if meal.Status == models.MealStatusCommitted {
		return meal, nil
	}
	s.finalize(meal, "meal.created")
	return meal, nil
}

// finalize reconciles the saved entry with the rest of the system: refresh
// the day's progress snapshot, notify sockets, then flip pending to
// committed. Any error leaves the entry failed and retryable; the local
// save is never rolled back.
func (s *MealService) finalize(meal *models.Meal, kind string) {
	progress, err := RecomputeDailyProgress(meal.UserID, meal.Date)
	status := models.MealStatusCommitted
	if err != nil {
		status = models.MealStatusFailed
	}
	meal.Status = status
	config.DB.Model(&models.Meal{}).Where("id = ?", meal.ID).Update("status", status)

	if err != nil {
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(meal.UserID, kind, meal)
	}
	maybeEmitCalorieAlert(meal.UserID, progress)
}
