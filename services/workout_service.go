// services/workout_service.go
package services

import (
	"fmt"
	"time"

	"fitness-tracker-backend/models"
	"fitness-tracker-backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutService struct {
	DB      *gorm.DB
	Records *RecordService
	Audit   *AuditService
}

func NewWorkoutService(db *gorm.DB, records *RecordService, audit *AuditService) *WorkoutService {
	return &WorkoutService{DB: db, Records: records, Audit: audit}
}

type PerformanceInput struct {
	ExerciseID string  `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"` // kg
	Order      int     `json:"order"`
}

type LogWorkoutRequest struct {
	WorkoutName     string             `json:"workout_name" validate:"required,max=255"`
	DurationMinutes int                `json:"duration_minutes" validate:"required,min=1,max=600"`
	Notes           string             `json:"notes" validate:"max=2000"`
	LoggedAt        *time.Time         `json:"logged_at"`
	Performances    []PerformanceInput `json:"workout_exercises"`
}

// LogWorkout validates and persists one workout submission: computes volume
// per performance and the total calorie estimate, writes the WorkoutLog with
// its WorkoutExercise children, and runs the PR ratchet per exercise — all
// inside one transaction, so a failure anywhere leaves nothing behind.
// The audit entry is written after commit, best-effort.
func (s *WorkoutService) LogWorkout(userID string, req LogWorkoutRequest) (*models.WorkoutLog, error) {
	exercises, err := s.validateLogRequest(&req)
	if err != nil {
		return nil, err
	}

	loggedAt := time.Now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	calPerfs := make([]CaloriePerformance, 0, len(req.Performances))
	for _, p := range req.Performances {
		calPerfs = append(calPerfs, CaloriePerformance{
			CaloriesPerMinute: exercises[p.ExerciseID].CaloriesPerMinute,
			Sets:              p.Sets,
			Weight:            p.Weight,
		})
	}

	workout := &models.WorkoutLog{
		ID:              uuid.NewString(),
		UserID:          userID,
		WorkoutName:     utils.SanitizeText(req.WorkoutName),
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  EstimateCalories(req.DurationMinutes, calPerfs),
		Notes:           utils.SanitizeText(req.Notes),
		LoggedAt:        loggedAt,
	}

	hasNewPRs := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workout).Error; err != nil {
			return err
		}

		for _, p := range req.Performances {
			we := models.WorkoutExercise{
				ID:           uuid.NewString(),
				WorkoutLogID: workout.ID,
				ExerciseID:   p.ExerciseID,
				Sets:         p.Sets,
				Reps:         p.Reps,
				Weight:       p.Weight,
				Volume:       CalculateVolume(p.Sets, p.Reps, p.Weight),
				Order:        p.Order,
			}
			if err := tx.Create(&we).Error; err != nil {
				return err
			}

			exercise := exercises[p.ExerciseID]
			we.Exercise = exercise
			workout.Exercises = append(workout.Exercises, we)

			res, err := s.Records.UpdatePersonalRecord(
				tx, userID, p.ExerciseID, p.Weight, p.Reps, we.Volume, workout.ID, loggedAt,
			)
			if err != nil {
				return err
			}
			if res.Improved() {
				hasNewPRs = true
			}
		}
		return nil
	})
	if err != nil {
		// Rolled back — drop the in-memory children we attached optimistically.
		workout.Exercises = nil
		return nil, err
	}

	workout.HasNewPRs = hasNewPRs

	s.Audit.Record(userID, models.AuditActionCreate, "workout_log", workout.ID, map[string]interface{}{
		"workout_name":     workout.WorkoutName,
		"duration_minutes": workout.DurationMinutes,
		"calories_burned":  workout.CaloriesBurned,
		"exercise_count":   len(workout.Exercises),
		"has_new_prs":      hasNewPRs,
	})

	return workout, nil
}

// validateLogRequest runs all checks before any write: struct tags, per-
// performance ranges, exercise existence and the future-date rule. On success
// it returns the referenced exercises keyed by id (needed for calorie rates).
// A failing existence lookup is a query error, not a validation error.
func (s *WorkoutService) validateLogRequest(req *LogWorkoutRequest) (map[string]*models.Exercise, error) {
	verr := newValidationError()

	if err := validate.Struct(req); err != nil {
		if tagErrs, ok := err.(validator.ValidationErrors); ok {
			for _, te := range tagErrs {
				switch {
				case te.Field() == "workout_name" && te.Tag() == "required":
					verr.add("workout_name", "This field is required.")
				case te.Field() == "workout_name":
					verr.add("workout_name", "Must be at most "+te.Param()+" characters.")
				case te.Field() == "duration_minutes" && te.Tag() == "max":
					verr.add("duration_minutes", "Duration cannot exceed 600 minutes (10 hours).")
				case te.Field() == "duration_minutes":
					verr.add("duration_minutes", "Duration must be at least 1 minute.")
				case te.Field() == "notes":
					verr.add("notes", "Must be at most "+te.Param()+" characters.")
				default:
					verr.add(te.Field(), "Invalid value.")
				}
			}
		}
	}

	if len(req.Performances) == 0 {
		verr.add("workout_exercises", "At least one exercise is required.")
	}

	if req.LoggedAt != nil && req.LoggedAt.After(time.Now()) {
		verr.add("logged_at", "Workout date cannot be in the future.")
	}

	for i, p := range req.Performances {
		prefix := fmt.Sprintf("workout_exercises[%d].", i)
		if p.Sets < 1 {
			verr.add(prefix+"sets", fmt.Sprintf("Exercise %d: Sets must be at least 1.", i+1))
		} else if p.Sets > 100 {
			verr.add(prefix+"sets", fmt.Sprintf("Exercise %d: Sets cannot exceed 100.", i+1))
		}
		if p.Reps < 1 {
			verr.add(prefix+"reps", fmt.Sprintf("Exercise %d: Reps must be at least 1.", i+1))
		} else if p.Reps > 100 {
			verr.add(prefix+"reps", fmt.Sprintf("Exercise %d: Reps cannot exceed 100.", i+1))
		}
		if p.Weight < 0.1 {
			verr.add(prefix+"weight", fmt.Sprintf("Exercise %d: Weight must be at least 0.1 kg.", i+1))
		} else if p.Weight > 1000 {
			verr.add(prefix+"weight", fmt.Sprintf("Exercise %d: Weight cannot exceed 1000 kg.", i+1))
		}
		if p.ExerciseID == "" {
			verr.add(prefix+"exercise_id", fmt.Sprintf("Exercise %d: exercise_id is required.", i+1))
		}
	}

	// Existence check on every referenced exercise id.
	ids := make([]string, 0, len(req.Performances))
	seen := map[string]bool{}
	for _, p := range req.Performances {
		if p.ExerciseID != "" && !seen[p.ExerciseID] {
			seen[p.ExerciseID] = true
			ids = append(ids, p.ExerciseID)
		}
	}

	exercises := map[string]*models.Exercise{}
	if len(ids) > 0 {
		var found []models.Exercise
		if err := s.DB.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return nil, err
		}
		for i := range found {
			exercises[found[i].ID] = &found[i]
		}
		for i, p := range req.Performances {
			if p.ExerciseID != "" && exercises[p.ExerciseID] == nil {
				verr.add(
					fmt.Sprintf("workout_exercises[%d].exercise_id", i),
					fmt.Sprintf("Exercise with ID %s does not exist.", p.ExerciseID),
				)
			}
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return exercises, nil
}

// GetWorkout returns one non-deleted workout owned by the user, with its
// exercises and a freshly computed HasNewPRs flag.
func (s *WorkoutService) GetWorkout(userID, id string) (*models.WorkoutLog, error) {
	var workout models.WorkoutLog
	err := s.DB.Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("\"order\" ASC") }).
		Preload("Exercises.Exercise").
		First(&workout).Error
	if err != nil {
		return nil, err
	}

	// A PR row still pointing at this workout means it set the latest record.
	var prCount int64
	if err := s.DB.Model(&models.PersonalRecord{}).
		Where("workout_log_id = ?", workout.ID).
		Count(&prCount).Error; err != nil {
		return nil, err
	}
	workout.HasNewPRs = prCount > 0

	return &workout, nil
}

// ListWorkouts returns the user's non-deleted workouts, newest first, with an
// optional inclusive logged_at range.
func (s *WorkoutService) ListWorkouts(userID string, start, end *time.Time) ([]models.WorkoutLog, error) {
	var workouts []models.WorkoutLog
	q := s.DB.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("\"order\" ASC") }).
		Preload("Exercises.Exercise").
		Order("logged_at DESC")
	if start != nil {
		q = q.Where("logged_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("logged_at <= ?", *end)
	}
	err := q.Find(&workouts).Error
	return workouts, err
}

// DeleteWorkout soft-deletes: the row keeps all relationships (exercises, PR
// references) and can be restored. Hard removal is a separate operation.
func (s *WorkoutService) DeleteWorkout(userID, id string) error {
	var workout models.WorkoutLog
	if err := s.DB.Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&workout).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&workout).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": now,
	}).Error; err != nil {
		return err
	}

	s.Audit.Record(userID, models.AuditActionSoftDelete, "workout_log", id, nil)
	return nil
}

// RestoreWorkout undoes a soft delete, bringing the workout and its child
// exercises back into every read path.
func (s *WorkoutService) RestoreWorkout(userID, id string) (*models.WorkoutLog, error) {
	var workout models.WorkoutLog
	if err := s.DB.Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, true).
		First(&workout).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&workout).Updates(map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
	}).Error; err != nil {
		return nil, err
	}

	s.Audit.Record(userID, models.AuditActionRestore, "workout_log", id, nil)
	return s.GetWorkout(userID, id)
}

// HardDeleteWorkout permanently removes a workout and its exercises. PR rows
// that pointed at it survive with the reference cleared.
func (s *WorkoutService) HardDeleteWorkout(userID, id string) error {
	var workout models.WorkoutLog
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&workout).Error; err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PersonalRecord{}).
			Where("workout_log_id = ?", id).
			Update("workout_log_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_log_id = ?", id).
			Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
	if err != nil {
		return err
	}

	s.Audit.Record(userID, models.AuditActionHardDelete, "workout_log", id, nil)
	return nil
}
