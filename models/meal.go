package models

import (
	"time"
)

// Meal sync states. A meal lands as "pending", becomes "committed" once the
// daily progress snapshot and realtime broadcast have gone through, and
// "failed" when that finalize step errored (retryable).
const (
	MealStatusPending   = "pending"
	MealStatusCommitted = "committed"
	MealStatusFailed    = "failed"
)

// One Meal (Breakfast|Lunch|Dinner|Snack), saved against a calendar day.
// Totals are frozen at save time from the per-unit snapshots in Foods.
type Meal struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Type   string `gorm:"not null" json:"type"`

	Date     string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD ledger key
	Time     string `json:"time"`                                        // display time, e.g. "10:45 AM"
	Position int    `gorm:"not null" json:"-"`                           // append order within the day

	TotalCalories float64 `json:"calories"`
	TotalProtein  float64 `json:"protein"`
	TotalCarbs    float64 `json:"carbs"`
	TotalFat      float64 `json:"fat"`

	Status string `gorm:"type:varchar(10);not null" json:"status"`

	Foods []MealFood `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"foods"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MealFood stores the per-unit nutrition snapshot of one selected food,
// so later catalog edits never rewrite history.
type MealFood struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	MealID string `gorm:"type:varchar(36);index;not null" json:"-"`

	FoodID   uint    `json:"food_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Calories float64 `json:"calories"` // per unit
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
