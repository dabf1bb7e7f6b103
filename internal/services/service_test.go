package services

import (
	"fmt"
	"testing"

	"smart_canteen/internal/database"
	"smart_canteen/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64, available bool, prepMinutes int) models.MenuItem {
	t.Helper()

	item := models.MenuItem{
		Name:            name,
		Category:        "Test",
		Price:           price,
		Available:       available,
		PrepTimeMinutes: prepMinutes,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item %q: %v", name, err)
	}
	return item
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
