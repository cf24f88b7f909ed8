// services/statistics.go
package services

import (
	"sort"
	"time"

	"fitness-tracker-backend/models"

	"gorm.io/gorm"
)

// DateBucket aggregates the workouts of one calendar date.
type DateBucket struct {
	Count    int     `json:"count"`
	Duration int     `json:"duration"`
	Calories float64 `json:"calories"`
}

// ExerciseFrequency is one entry of the frequency ranking.
type ExerciseFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Statistics struct {
	TotalWorkouts        int     `json:"total_workouts"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	TotalCaloriesBurned  float64 `json:"total_calories_burned"`

	AverageDurationMinutes float64 `json:"average_duration_minutes"`
	AverageCaloriesBurned  float64 `json:"average_calories_burned"`

	WorkoutByDate map[string]*DateBucket `json:"workout_by_date"`

	// Counts exercise performances per category, not workouts: a workout
	// with three STRENGTH exercises contributes 3 to STRENGTH.
	WorkoutsByCategory map[string]int `json:"workouts_by_category"`

	// All exercises ranked by performance count, descending; ties keep the
	// order of first appearance.
	MostFrequentExercises []ExerciseFrequency `json:"most_frequent_exercises"`
}

// ComputeStatistics aggregates the user's non-deleted workouts over an
// optional inclusive logged_at range. No matching workouts is not an error —
// the zero/empty shape comes back.
func (s *WorkoutService) ComputeStatistics(userID string, start, end *time.Time) (*Statistics, error) {
	var workouts []models.WorkoutLog
	q := s.DB.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("\"order\" ASC") }).
		Preload("Exercises.Exercise").
		Order("logged_at ASC")
	if start != nil {
		q = q.Where("logged_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("logged_at <= ?", *end)
	}
	if err := q.Find(&workouts).Error; err != nil {
		return nil, err
	}

	stats := &Statistics{
		WorkoutByDate:         map[string]*DateBucket{},
		WorkoutsByCategory:    map[string]int{},
		MostFrequentExercises: []ExerciseFrequency{},
	}

	frequency := map[string]int{}
	var nameOrder []string

	for _, w := range workouts {
		stats.TotalWorkouts++
		stats.TotalDurationMinutes += w.DurationMinutes
		stats.TotalCaloriesBurned += w.CaloriesBurned

		dateKey := w.LoggedAt.UTC().Format("2006-01-02")
		bucket := stats.WorkoutByDate[dateKey]
		if bucket == nil {
			bucket = &DateBucket{}
			stats.WorkoutByDate[dateKey] = bucket
		}
		bucket.Count++
		bucket.Duration += w.DurationMinutes
		bucket.Calories += w.CaloriesBurned

		for _, we := range w.Exercises {
			if we.Exercise == nil {
				continue
			}
			stats.WorkoutsByCategory[we.Exercise.Category]++

			name := we.Exercise.Name
			if _, known := frequency[name]; !known {
				nameOrder = append(nameOrder, name)
			}
			frequency[name]++
		}
	}

	if stats.TotalWorkouts > 0 {
		stats.AverageDurationMinutes = float64(stats.TotalDurationMinutes) / float64(stats.TotalWorkouts)
		stats.AverageCaloriesBurned = stats.TotalCaloriesBurned / float64(stats.TotalWorkouts)
	}

	// Rank by count descending; SliceStable keeps first-appearance order
	// for ties.
	ranked := make([]ExerciseFrequency, 0, len(nameOrder))
	for _, name := range nameOrder {
		ranked = append(ranked, ExerciseFrequency{Name: name, Count: frequency[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	stats.MostFrequentExercises = ranked

	return stats, nil
}
