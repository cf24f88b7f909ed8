// services/calories.go
package services

// Calorie model constants (tunable via config/env later)
const (
	// Floor: any logged workout burns at least this much per minute,
	// regardless of the exercise mix.
	MinCaloriesPerMinute = 3.0

	// Cap on how much a single exercise's sets/weight can scale its burn.
	MaxIntensityFactor = 3.0
)

// CalculateVolume returns the training volume for one exercise performance:
// sets × reps × weight. Inputs are validated upstream.
func CalculateVolume(sets, reps int, weight float64) float64 {
	return float64(sets) * float64(reps) * weight
}

// CaloriePerformance is the slice element EstimateCalories works on — just
// the fields of a performance that matter for the burn estimate.
type CaloriePerformance struct {
	CaloriesPerMinute float64
	Sets              int
	Weight            float64
}

// EstimateCalories returns the estimated total burn for a workout. Each
// performance contributes base calories (exercise rate × duration) scaled by
// an intensity factor derived from sets and weight, capped at 3×. The result
// never drops below duration × 3.0 — an empty performance list still returns
// the floor.
func EstimateCalories(durationMinutes int, performances []CaloriePerformance) float64 {
	duration := float64(durationMinutes)

	total := 0.0
	for _, p := range performances {
		base := p.CaloriesPerMinute * duration
		intensity := 1.0 + float64(p.Sets)*0.1 + p.Weight*0.01
		if intensity > MaxIntensityFactor {
			intensity = MaxIntensityFactor
		}
		total += base * intensity
	}

	if floor := duration * MinCaloriesPerMinute; total < floor {
		return floor
	}
	return total
}
