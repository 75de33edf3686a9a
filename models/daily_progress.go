package models

import (
	"gorm.io/gorm"
)

// DailyProgress is the cached per-day consumption snapshot, recomputed
// whenever the day's ledger changes.
type DailyProgress struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Date   string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD

	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Hydration float64 `json:"hydration"`
}
