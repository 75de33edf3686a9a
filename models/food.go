package models

// FoodItem is a catalog entry. Macro values are per single unit/serving.
// Reference data only: seeded once, never mutated.
type FoodItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"uniqueIndex;not null" json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
