package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily intake targets.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Calories float64 `json:"calories"` // e.g. 3400 kcal
	Protein  float64 `json:"protein"`  // e.g. 225 g
	Carbs    float64 `json:"carbs"`    // e.g. 340 g
	Fat      float64 `json:"fat"`      // e.g. 90 g

	Hydration float64 `json:"hydration"` // litres, e.g. 2.5
}
