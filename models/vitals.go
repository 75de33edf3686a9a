package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterLog is one logged drink; a day's intake is the sum of its rows.
type WaterLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null" json:"user_id"`
	Date   string  `gorm:"type:varchar(10);index;not null" json:"date"`
	Liters float64 `json:"liters"`
}

// WeightLog feeds the weight line chart on the vitals screen.
type WeightLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	RecordedAt time.Time `gorm:"index;not null" json:"recorded_at"`
	Kg         float64   `json:"kg"`
}

// SleepSession holds one night's stage breakdown, one row per user per date.
type SleepSession struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Date     string `gorm:"type:varchar(10);index;not null" json:"date"`
	DeepMin  int    `json:"deep_min"`
	LightMin int    `json:"light_min"`
	RemMin   int    `json:"rem_min"`
	AwakeMin int    `json:"awake_min"`
	Score    int    `json:"score"` // 0-100
}

// HeartRateSample is a single BPM reading.
type HeartRateSample struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	TakenAt time.Time `gorm:"index;not null" json:"taken_at"`
	BPM     int       `json:"bpm"`
}
