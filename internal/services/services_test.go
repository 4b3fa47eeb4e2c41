package services

import (
	"testing"

	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory store. Pool capped at one connection so
// every query sees the same memory database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Surgery{},
		&models.Target{},
		&models.Deliverable{},
	))
	return db
}

func createStaff(t *testing.T, db *gorm.DB, name, role string) models.Staff {
	t.Helper()
	staff := models.Staff{Name: name, Role: role, Hospital: "General Hospital", Region: "Central"}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}
