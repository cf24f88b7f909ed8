// models/exercise.go
package models

const (
	CategoryStrength   = "STRENGTH"
	CategoryCardio     = "CARDIO"
	CategoryBodyweight = "BODYWEIGHT"
)

const (
	MuscleGroupChest     = "CHEST"
	MuscleGroupBack      = "BACK"
	MuscleGroupLegs      = "LEGS"
	MuscleGroupCore      = "CORE"
	MuscleGroupArms      = "ARMS"
	MuscleGroupShoulders = "SHOULDERS"
	MuscleGroupFullBody  = "FULL_BODY"
)

const (
	EquipmentFreeWeights     = "FREE_WEIGHTS"
	EquipmentMachines        = "MACHINES"
	EquipmentBodyweight      = "BODYWEIGHT"
	EquipmentResistanceBands = "RESISTANCE_BANDS"
	EquipmentCardio          = "CARDIO_EQUIPMENT"
)

const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// Exercise is catalog reference data: seeded at startup, plus custom
// exercises created by users. NameSlug is the case-insensitive uniqueness key.
type Exercise struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	NameSlug    string `json:"-" gorm:"uniqueIndex;not null"`
	Description string `json:"description,omitempty"`

	Category    string `json:"category" gorm:"index;not null"` // STRENGTH | CARDIO | BODYWEIGHT
	MuscleGroup string `json:"muscle_group" gorm:"not null"`
	Equipment   string `json:"equipment" gorm:"not null"`
	Difficulty  string `json:"difficulty" gorm:"index;default:'BEGINNER'"`

	Instructions string `json:"instructions,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"` // public R2 URL

	CaloriesPerMinute float64 `json:"calories_per_minute" gorm:"type:decimal(5,2);default:5.0"`

	IsCustom  bool   `json:"is_custom" gorm:"default:false"`
	CreatedBy string `json:"created_by,omitempty"` // external user id, empty for seeded rows

	Timestamps
}
