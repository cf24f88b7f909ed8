package services

import (
	"testing"

	"fitness-tracker-backend/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Exercise{},
		&models.WorkoutLog{},
		&models.WorkoutExercise{},
		&models.PersonalRecord{},
		&models.AuditLog{},
	))
	return db
}

func newTestWorkoutService(t *testing.T) (*WorkoutService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewWorkoutService(db, NewRecordService(db), NewAuditService(db))
	return svc, db
}

func createExercise(t *testing.T, db *gorm.DB, name, category string, caloriesPerMinute float64) *models.Exercise {
	t.Helper()
	ex := &models.Exercise{
		ID:                uuid.NewString(),
		Name:              name,
		NameSlug:          slug.Make(name),
		Category:          category,
		MuscleGroup:       models.MuscleGroupFullBody,
		Equipment:         models.EquipmentFreeWeights,
		Difficulty:        models.DifficultyBeginner,
		CaloriesPerMinute: caloriesPerMinute,
	}
	require.NoError(t, db.Create(ex).Error)
	return ex
}
