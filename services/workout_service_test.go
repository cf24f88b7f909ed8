package services

import (
	"errors"
	"testing"
	"time"

	"fitness-tracker-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLogWorkoutDerivedFields(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Bench Press", models.CategoryStrength, 10)
	userID := uuid.NewString()

	workout, err := svc.LogWorkout(userID, LogWorkoutRequest{
		WorkoutName:     "Push Day",
		DurationMinutes: 60,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 3, Reps: 10, Weight: 50, Order: 0},
		},
	})
	require.NoError(t, err)

	// volume = 3 * 10 * 50; calories = 10*60 * min(1 + 3*0.1 + 50*0.01, 3)
	require.Len(t, workout.Exercises, 1)
	assert.Equal(t, 1500.0, workout.Exercises[0].Volume)
	assert.InDelta(t, 1080.0, workout.CaloriesBurned, 1e-9)
	assert.True(t, workout.HasNewPRs)
	assert.False(t, workout.IsDeleted)

	var stored models.WorkoutLog
	require.NoError(t, db.First(&stored, "id = ?", workout.ID).Error)
	assert.Equal(t, "Push Day", stored.WorkoutName)
	assert.InDelta(t, 1080.0, stored.CaloriesBurned, 1e-9)

	var pr models.PersonalRecord
	require.NoError(t, db.Where("user_id = ? AND exercise_id = ?", userID, ex.ID).First(&pr).Error)
	require.NotNil(t, pr.WorkoutLogID)
	assert.Equal(t, workout.ID, *pr.WorkoutLogID)
}

func TestLogWorkoutNoNewPRsOnRepeat(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Squats", models.CategoryStrength, 8)
	userID := uuid.NewString()

	req := LogWorkoutRequest{
		WorkoutName:     "Leg Day",
		DurationMinutes: 45,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 4, Reps: 8, Weight: 100},
		},
	}

	first, err := svc.LogWorkout(userID, req)
	require.NoError(t, err)
	assert.True(t, first.HasNewPRs)

	second, err := svc.LogWorkout(userID, req)
	require.NoError(t, err)
	assert.False(t, second.HasNewPRs)
}

func TestLogWorkoutValidation(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Push-Ups", models.CategoryBodyweight, 7)
	userID := uuid.NewString()

	valid := func() LogWorkoutRequest {
		return LogWorkoutRequest{
			WorkoutName:     "Morning Session",
			DurationMinutes: 30,
			Performances: []PerformanceInput{
				{ExerciseID: ex.ID, Sets: 3, Reps: 15, Weight: 0.5},
			},
		}
	}

	t.Run("zero sets", func(t *testing.T) {
		req := valid()
		req.Performances[0].Sets = 0
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Exercise 1: Sets must be at least 1.", verr.Fields["workout_exercises[0].sets"])
	})

	t.Run("weight over limit", func(t *testing.T) {
		req := valid()
		req.Performances[0].Weight = 1001
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Exercise 1: Weight cannot exceed 1000 kg.", verr.Fields["workout_exercises[0].weight"])
	})

	t.Run("duration over ten hours", func(t *testing.T) {
		req := valid()
		req.DurationMinutes = 601
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Duration cannot exceed 600 minutes (10 hours).", verr.Fields["duration_minutes"])
	})

	t.Run("future logged_at", func(t *testing.T) {
		req := valid()
		future := time.Now().Add(48 * time.Hour)
		req.LoggedAt = &future
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Workout date cannot be in the future.", verr.Fields["logged_at"])
	})

	t.Run("no exercises", func(t *testing.T) {
		req := valid()
		req.Performances = nil
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "At least one exercise is required.", verr.Fields["workout_exercises"])
	})

	t.Run("unknown exercise id", func(t *testing.T) {
		req := valid()
		missing := uuid.NewString()
		req.Performances[0].ExerciseID = missing
		_, err := svc.LogWorkout(userID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Exercise with ID "+missing+" does not exist.", verr.Fields["workout_exercises[0].exercise_id"])
	})

	// No partial writes from any of the rejected requests.
	var workoutCount, exerciseCount, prCount int64
	require.NoError(t, db.Model(&models.WorkoutLog{}).Count(&workoutCount).Error)
	require.NoError(t, db.Model(&models.WorkoutExercise{}).Count(&exerciseCount).Error)
	require.NoError(t, db.Model(&models.PersonalRecord{}).Count(&prCount).Error)
	assert.Zero(t, workoutCount)
	assert.Zero(t, exerciseCount)
	assert.Zero(t, prCount)
}

func TestLogWorkoutSurfacesExerciseLookupFailure(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Bench Press", models.CategoryStrength, 6)

	// An infrastructure failure on the existence lookup must come back as a
	// plain error, not as "does not exist" for ids that are perfectly valid.
	require.NoError(t, db.Migrator().DropTable(&models.Exercise{}))

	_, err := svc.LogWorkout(uuid.NewString(), LogWorkoutRequest{
		WorkoutName:     "Push Day",
		DurationMinutes: 60,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 3, Reps: 10, Weight: 50},
		},
	})
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))

	var workoutCount int64
	require.NoError(t, db.Model(&models.WorkoutLog{}).Count(&workoutCount).Error)
	assert.Zero(t, workoutCount)
}

func TestLogWorkoutSanitizesText(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Plank", models.CategoryBodyweight, 4)

	workout, err := svc.LogWorkout(uuid.NewString(), LogWorkoutRequest{
		WorkoutName:     "  <script>alert(1)</script>\x00 Core ",
		DurationMinutes: 20,
		Notes:           "felt <strong>great</strong>",
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 3, Reps: 1, Weight: 0.1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt; Core", workout.WorkoutName)
	assert.Equal(t, "felt &lt;strong&gt;great&lt;/strong&gt;", workout.Notes)

	var stored models.WorkoutLog
	require.NoError(t, db.First(&stored, "id = ?", workout.ID).Error)
	assert.NotContains(t, stored.WorkoutName, "<")
	assert.NotContains(t, stored.WorkoutName, "\x00")
}

func TestSoftDeleteAndRestore(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Running", models.CategoryCardio, 12)
	userID := uuid.NewString()

	workout, err := svc.LogWorkout(userID, LogWorkoutRequest{
		WorkoutName:     "Evening Run",
		DurationMinutes: 40,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 1, Reps: 1, Weight: 0.1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(userID, workout.ID))

	// Hidden from every read path but still present in the table.
	_, err = svc.GetWorkout(userID, workout.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	listed, err := svc.ListWorkouts(userID, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, listed)

	var stored models.WorkoutLog
	require.NoError(t, db.First(&stored, "id = ?", workout.ID).Error)
	assert.True(t, stored.IsDeleted)
	require.NotNil(t, stored.DeletedAt)

	// Deleting twice is a not-found, not a second delete.
	err = svc.DeleteWorkout(userID, workout.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	restored, err := svc.RestoreWorkout(userID, workout.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)
	require.Len(t, restored.Exercises, 1)

	listed, err = svc.ListWorkouts(userID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// Restoring an active workout is also a not-found.
	_, err = svc.RestoreWorkout(userID, workout.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteWorkoutOwnership(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Rowing", models.CategoryCardio, 11)
	owner := uuid.NewString()

	workout, err := svc.LogWorkout(owner, LogWorkoutRequest{
		WorkoutName:     "Row Intervals",
		DurationMinutes: 25,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 1, Reps: 1, Weight: 0.1},
		},
	})
	require.NoError(t, err)

	err = svc.DeleteWorkout(uuid.NewString(), workout.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var stored models.WorkoutLog
	require.NoError(t, db.First(&stored, "id = ?", workout.ID).Error)
	assert.False(t, stored.IsDeleted)
}

func TestHardDeleteClearsRecordReferences(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Deadlifts", models.CategoryStrength, 8)
	userID := uuid.NewString()

	workout, err := svc.LogWorkout(userID, LogWorkoutRequest{
		WorkoutName:     "Pull Day",
		DurationMinutes: 50,
		Performances: []PerformanceInput{
			{ExerciseID: ex.ID, Sets: 5, Reps: 5, Weight: 140},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.HardDeleteWorkout(userID, workout.ID))

	err = db.First(&models.WorkoutLog{}, "id = ?", workout.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var childCount int64
	require.NoError(t, db.Model(&models.WorkoutExercise{}).
		Where("workout_log_id = ?", workout.ID).Count(&childCount).Error)
	assert.Zero(t, childCount)

	// The record survives with the back-reference cleared.
	var pr models.PersonalRecord
	require.NoError(t, db.Where("user_id = ? AND exercise_id = ?", userID, ex.ID).First(&pr).Error)
	assert.Equal(t, 140.0, pr.MaxWeight)
	assert.Nil(t, pr.WorkoutLogID)
}

func TestListWorkoutsDateRange(t *testing.T) {
	svc, db := newTestWorkoutService(t)
	ex := createExercise(t, db, "Cycling", models.CategoryCardio, 9)
	userID := uuid.NewString()

	days := []time.Time{
		time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		at := day
		_, err := svc.LogWorkout(userID, LogWorkoutRequest{
			WorkoutName:     "Ride",
			DurationMinutes: 30,
			LoggedAt:        &at,
			Performances: []PerformanceInput{
				{ExerciseID: ex.ID, Sets: 1, Reps: 1, Weight: 0.1},
			},
		})
		require.NoError(t, err)
	}

	start := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	listed, err := svc.ListWorkouts(userID, &start, &end)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, days[1].Unix(), listed[0].LoggedAt.Unix())

	// Range bounds are inclusive.
	listed, err = svc.ListWorkouts(userID, &days[0], &days[2])
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	var total int64
	require.NoError(t, db.Model(&models.WorkoutLog{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)
}
