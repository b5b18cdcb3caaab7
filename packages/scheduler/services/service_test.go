package services

import (
	"testing"
	"time"

	"scheduler/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// userAccount stands in for the identity subsystem's users table, carrying
// the same ON DELETE CASCADE onto propositions as the production schema.
type userAccount struct {
	ID           uint                 `gorm:"primaryKey"`
	Propositions []models.Proposition `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (userAccount) TableName() string {
	return "users"
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

// setupTestDB opens an in-memory database with foreign keys enforced, so
// the SET NULL and CASCADE behaviors under test actually fire.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDB(t)

	err := db.AutoMigrate(
		&models.Team{},
		&models.Match{},
		&models.Appointment{},
		&models.Proposition{},
	)
	require.NoError(t, err)

	return db
}

// setupTestDBWithUsers additionally migrates the users table so the
// user-to-proposition cascade is part of the schema.
func setupTestDBWithUsers(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDB(t)

	err := db.AutoMigrate(&userAccount{}, &models.Proposition{})
	require.NoError(t, err)

	return db
}

func intPtr(v int) *int {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}
