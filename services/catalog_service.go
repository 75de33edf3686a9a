package services

import (
	"strings"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
)

// The built-in food database shipped with the app. Per-unit macros.
// A remote catalog can replace this without touching the aggregator.
var defaultCatalog = []models.FoodItem{
	{ID: 1, Name: "Oatmeal", Calories: 150, Protein: 6, Carbs: 27, Fat: 2.5},
	{ID: 2, Name: "Scrambled Eggs", Calories: 140, Protein: 12, Carbs: 1, Fat: 10},
	{ID: 3, Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
	{ID: 4, Name: "Protein Shake", Calories: 180, Protein: 25, Carbs: 8, Fat: 3},
	{ID: 5, Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{ID: 6, Name: "Brown Rice", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8},
	{ID: 7, Name: "Broccoli", Calories: 55, Protein: 3.7, Carbs: 11.2, Fat: 0.6},
	{ID: 8, Name: "Salmon", Calories: 208, Protein: 22, Carbs: 0, Fat: 13},
	{ID: 9, Name: "Greek Yogurt", Calories: 130, Protein: 12, Carbs: 8, Fat: 4},
	{ID: 10, Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14},
	{ID: 11, Name: "Sweet Potato", Calories: 114, Protein: 2, Carbs: 27, Fat: 0.1},
	{ID: 12, Name: "Quinoa", Calories: 222, Protein: 8, Carbs: 39, Fat: 3.6},
	{ID: 13, Name: "Avocado", Calories: 234, Protein: 3, Carbs: 12, Fat: 21},
	{ID: 14, Name: "Whey Protein", Calories: 113, Protein: 25, Carbs: 2, Fat: 1},
	{ID: 15, Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
}

// SeedCatalog loads the default food database. Existing rows are left
// untouched so a remote sync can overlay them later.
func SeedCatalog() error {
	for _, f := range defaultCatalog {
		row := f
		if err := config.DB.Where("id = ?", f.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListFoods returns the whole catalog ordered by id.
func ListFoods() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.Order("id").Find(&foods).Error
	return foods, err
}

// SearchFoods does case-insensitive substring matching on the name, for
// search-as-you-type. No matches is an empty slice, not an error.
func SearchFoods(query string) ([]models.FoodItem, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return ListFoods()
	}
	var foods []models.FoodItem
	err := config.DB.
		Where("lower(name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("id").
		Find(&foods).Error
	return foods, err
}

// FoodByID looks up one catalog entry.
func FoodByID(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
