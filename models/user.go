package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Birthday  time.Time
	Height    float64 // cm
	Weight    float64 // kg

	// Comma-joined goal tags picked during onboarding, e.g. "weight_loss,sleep_tracking"
	FitnessGoals   string
	ProfilePicture string
	Onboarded      bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
}
