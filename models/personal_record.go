// models/personal_record.go
package models

import "time"

// PersonalRecord holds a user's best-ever weight, reps and volume for one
// exercise — exactly one row per (user, exercise) pair. Each Previous* field
// only moves when its own metric is beaten (per-metric ratchet); AchievedDate
// and WorkoutLogID track the workout that last improved any metric.
type PersonalRecord struct {
	ID         string `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"uniqueIndex:idx_pr_user_exercise;not null"`
	ExerciseID string `json:"exercise_id" gorm:"uniqueIndex:idx_pr_user_exercise;not null"`

	Exercise *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID"`

	MaxWeight float64 `json:"max_weight" gorm:"type:decimal(6,2)"`
	MaxReps   int     `json:"max_reps"`
	MaxVolume float64 `json:"max_volume" gorm:"type:decimal(10,2)"`

	PreviousMaxWeight *float64 `json:"previous_max_weight,omitempty" gorm:"type:decimal(6,2)"`
	PreviousMaxReps   *int     `json:"previous_max_reps,omitempty"`
	PreviousMaxVolume *float64 `json:"previous_max_volume,omitempty" gorm:"type:decimal(10,2)"`

	AchievedDate time.Time `json:"achieved_date"`
	WorkoutLogID *string   `json:"workout_log_id,omitempty"`

	Timestamps
}

// ImprovementPercentage returns the largest relative improvement across the
// three metrics, computed from the Previous* snapshots. Metrics with no
// previous value (or a zero one) are skipped; nil means nothing to report yet.
func (pr *PersonalRecord) ImprovementPercentage() *float64 {
	var best *float64

	consider := func(current, previous float64) {
		if previous <= 0 {
			return
		}
		pct := (current - previous) / previous * 100
		if best == nil || pct > *best {
			best = &pct
		}
	}

	if pr.PreviousMaxWeight != nil {
		consider(pr.MaxWeight, *pr.PreviousMaxWeight)
	}
	if pr.PreviousMaxReps != nil {
		consider(float64(pr.MaxReps), float64(*pr.PreviousMaxReps))
	}
	if pr.PreviousMaxVolume != nil {
		consider(pr.MaxVolume, *pr.PreviousMaxVolume)
	}
	return best
}
