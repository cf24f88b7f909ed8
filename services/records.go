// services/records.go
package services

import (
	"time"

	"fitness-tracker-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PR metric names reported back to the orchestrator
const (
	MetricWeight = "WEIGHT"
	MetricReps   = "REPS"
	MetricVolume = "VOLUME"
)

type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

// PRResult reports what UpdatePersonalRecord did for one performance.
type PRResult struct {
	Created         bool     `json:"created"`
	MetricsImproved []string `json:"metrics_improved"`
}

func (r PRResult) Improved() bool {
	return len(r.MetricsImproved) > 0
}

// UpdatePersonalRecord runs the per-metric ratchet for one (user, exercise)
// pair inside the caller's transaction.
//
// First performance ever creates the record (all three metrics count as the
// baseline "improvement"). After that each metric is tested independently for
// strict improvement: previous_* only moves when its own metric is beaten,
// and a tie never counts. When nothing improved the row is left completely
// untouched — no write, no achieved_date refresh.
func (s *RecordService) UpdatePersonalRecord(
	tx *gorm.DB,
	userID, exerciseID string,
	weight float64, reps int, volume float64,
	workoutLogID string, achievedAt time.Time,
) (PRResult, error) {
	var pr models.PersonalRecord

	// Row lock so two concurrent workouts for the same user/exercise can't
	// both read the old record and clobber each other's previous_* values.
	// SQLite (tests) serializes writers on its own and rejects FOR UPDATE.
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	err := q.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&pr).Error
	if err == gorm.ErrRecordNotFound {
		pr = models.PersonalRecord{
			ID:           uuid.NewString(),
			UserID:       userID,
			ExerciseID:   exerciseID,
			MaxWeight:    weight,
			MaxReps:      reps,
			MaxVolume:    volume,
			AchievedDate: achievedAt,
			WorkoutLogID: &workoutLogID,
		}
		if err := tx.Create(&pr).Error; err != nil {
			return PRResult{}, err
		}
		return PRResult{
			Created:         true,
			MetricsImproved: []string{MetricWeight, MetricReps, MetricVolume},
		}, nil
	}
	if err != nil {
		return PRResult{}, err
	}

	var improved []string

	if weight > pr.MaxWeight {
		prev := pr.MaxWeight
		pr.PreviousMaxWeight = &prev
		pr.MaxWeight = weight
		improved = append(improved, MetricWeight)
	}
	if reps > pr.MaxReps {
		prev := pr.MaxReps
		pr.PreviousMaxReps = &prev
		pr.MaxReps = reps
		improved = append(improved, MetricReps)
	}
	if volume > pr.MaxVolume {
		prev := pr.MaxVolume
		pr.PreviousMaxVolume = &prev
		pr.MaxVolume = volume
		improved = append(improved, MetricVolume)
	}

	if len(improved) == 0 {
		return PRResult{}, nil
	}

	pr.AchievedDate = achievedAt
	logID := workoutLogID
	pr.WorkoutLogID = &logID
	if err := tx.Save(&pr).Error; err != nil {
		return PRResult{}, err
	}
	return PRResult{MetricsImproved: improved}, nil
}

// ListRecords returns the user's personal records, newest achievement first.
func (s *RecordService) ListRecords(userID, exerciseID string) ([]models.PersonalRecord, error) {
	var records []models.PersonalRecord
	q := s.DB.Where("user_id = ?", userID).
		Preload("Exercise").
		Order("achieved_date DESC")
	if exerciseID != "" {
		q = q.Where("exercise_id = ?", exerciseID)
	}
	err := q.Find(&records).Error
	return records, err
}
