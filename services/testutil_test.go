package services

import (
	"testing"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory database with the
// production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
	InitAlertDeps(db, nil)
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Email: "test@example.com", Password: "x", FirstName: "Test"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func catalogFood(t *testing.T, id uint) models.FoodItem {
	t.Helper()
	food, err := FoodByID(id)
	require.NoError(t, err)
	return *food
}
