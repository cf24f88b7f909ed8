// models/workout.go
package models

import "time"

// WorkoutLog is one completed workout session. Deletion is soft by default:
// DeleteWorkout flips IsDeleted/DeletedAt and every read path filters on it,
// so the row (and its exercises) stays recoverable until a hard purge.
type WorkoutLog struct {
	ID          string `json:"id" gorm:"primaryKey"`
	UserID      string `json:"user_id" gorm:"index:idx_workout_user_logged;not null"`
	WorkoutName string `json:"workout_name" gorm:"not null"`

	DurationMinutes int     `json:"duration_minutes" gorm:"not null"`
	CaloriesBurned  float64 `json:"calories_burned" gorm:"type:decimal(7,2)"` // derived, >= duration*3.0
	Notes           string  `json:"notes,omitempty"`

	LoggedAt time.Time `json:"logged_at" gorm:"index:idx_workout_user_logged,sort:desc"`

	IsDeleted bool       `json:"is_deleted" gorm:"default:false;index"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// Set when this workout broke at least one personal record.
	HasNewPRs bool `json:"has_new_prs" gorm:"-"`

	Exercises []WorkoutExercise `json:"workout_exercises" gorm:"foreignKey:WorkoutLogID"`

	Timestamps
}

// WorkoutExercise is one exercise performance inside a workout. Rows are
// written once with their parent log and never mutated afterwards.
type WorkoutExercise struct {
	ID           string `json:"id" gorm:"primaryKey"`
	WorkoutLogID string `json:"workout_log_id" gorm:"index;not null"`
	ExerciseID   string `json:"exercise_id" gorm:"index;not null"`

	Exercise *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID"`

	Sets   int     `json:"sets" gorm:"not null"`
	Reps   int     `json:"reps" gorm:"not null"`
	Weight float64 `json:"weight" gorm:"type:decimal(6,2);not null"` // kg
	Volume float64 `json:"volume" gorm:"type:decimal(10,2)"`         // derived = sets*reps*weight
	Order  int     `json:"order" gorm:"default:0"`
}
