// services/exercise_service.go
package services

import (
	"log"
	"mime/multipart"
	"path/filepath"

	"fitness-tracker-backend/models"
	"fitness-tracker-backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type ExerciseService struct {
	DB *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{DB: db}
}

var nameCaser = cases.Title(language.English)

type CreateExerciseRequest struct {
	Name              string  `json:"name" form:"name" validate:"required,max=255"`
	Description       string  `json:"description" form:"description" validate:"max=2000"`
	Category          string  `json:"category" form:"category" validate:"required,oneof=STRENGTH CARDIO BODYWEIGHT"`
	MuscleGroup       string  `json:"muscle_group" form:"muscle_group" validate:"required,oneof=CHEST BACK LEGS CORE ARMS SHOULDERS FULL_BODY"`
	Equipment         string  `json:"equipment" form:"equipment" validate:"required,oneof=FREE_WEIGHTS MACHINES BODYWEIGHT RESISTANCE_BANDS CARDIO_EQUIPMENT"`
	Difficulty        string  `json:"difficulty" form:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Instructions      string  `json:"instructions" form:"instructions" validate:"max=5000"`
	VideoURL          string  `json:"video_url" form:"video_url" validate:"omitempty,url"`
	CaloriesPerMinute float64 `json:"calories_per_minute" form:"calories_per_minute" validate:"gte=0"`
}

// List returns catalog exercises with optional filters, ordered the way the
// catalog is browsed: by category, then name.
func (s *ExerciseService) List(category, difficulty, muscleGroup string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	q := s.DB.Order("category ASC, name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	if muscleGroup != "" {
		q = q.Where("muscle_group = ?", muscleGroup)
	}
	err := q.Find(&exercises).Error
	return exercises, err
}

func (s *ExerciseService) Get(id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.DB.Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// CreateCustom adds a user-defined exercise to the catalog. Names are unique
// case-insensitively (slug key), display names are title-cased, and the
// optional image goes to R2.
func (s *ExerciseService) CreateCustom(userID string, req CreateExerciseRequest, image *multipart.FileHeader) (*models.Exercise, error) {
	if verr := validateCreateExercise(&req); verr != nil {
		return nil, verr
	}

	name := nameCaser.String(utils.SanitizeText(req.Name))
	nameSlug := slug.Make(name)

	var existing models.Exercise
	if err := s.DB.Where("name_slug = ?", nameSlug).First(&existing).Error; err == nil {
		verr := newValidationError()
		verr.add("name", "An exercise with this name already exists.")
		return nil, verr
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	caloriesPerMinute := req.CaloriesPerMinute
	if caloriesPerMinute == 0 {
		caloriesPerMinute = 5.0
	}

	exercise := &models.Exercise{
		ID:                uuid.NewString(),
		Name:              name,
		NameSlug:          nameSlug,
		Description:       utils.SanitizeText(req.Description),
		Category:          req.Category,
		MuscleGroup:       req.MuscleGroup,
		Equipment:         req.Equipment,
		Difficulty:        difficulty,
		Instructions:      utils.SanitizeText(req.Instructions),
		VideoURL:          req.VideoURL,
		CaloriesPerMinute: caloriesPerMinute,
		IsCustom:          true,
		CreatedBy:         userID,
	}

	if image != nil {
		ext := filepath.Ext(image.Filename)
		if ext == "" {
			ext = ".png"
		}
		imageURL, err := utils.UploadMediaToR2(image, "exercises/"+uuid.NewString()+ext)
		if err != nil {
			return nil, err
		}
		exercise.ImageURL = imageURL
	}

	if err := s.DB.Create(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

func validateCreateExercise(req *CreateExerciseRequest) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verr := newValidationError()
	if tagErrs, ok := err.(validator.ValidationErrors); ok {
		for _, te := range tagErrs {
			switch te.Tag() {
			case "required":
				verr.add(te.Field(), "This field is required.")
			case "oneof":
				verr.add(te.Field(), "Value must be one of: "+te.Param()+".")
			case "url":
				verr.add(te.Field(), "Must be a valid URL.")
			case "gte":
				verr.add(te.Field(), "Must be at least "+te.Param()+".")
			case "max":
				verr.add(te.Field(), "Must be at most "+te.Param()+" characters.")
			default:
				verr.add(te.Field(), "Invalid value.")
			}
		}
	} else {
		verr.add("request", "Invalid request payload.")
	}
	return verr
}

// Seed loads the built-in exercise catalog (idempotent — existing slugs are
// left alone, so user edits to calorie rates survive restarts).
func (s *ExerciseService) Seed() error {
	created := 0
	for _, seed := range seedExercises {
		seed.ID = uuid.NewString()
		seed.NameSlug = slug.Make(seed.Name)

		var existing models.Exercise
		err := s.DB.Where("name_slug = ?", seed.NameSlug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := s.DB.Create(&seed).Error; err != nil {
				return err
			}
			created++
			continue
		}
		if err != nil {
			return err
		}
	}
	if created > 0 {
		log.Printf("✅ Seeded %d exercises", created)
	}
	return nil
}

var seedExercises = []models.Exercise{
	{Name: "Burpees", Description: "Full body exercise combining a squat, push-up, and jump",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupFullBody, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 10.0},
	{Name: "Mountain Climbers", Description: "Dynamic full body exercise in plank position",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupFullBody, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 8.0},
	{Name: "Push-ups", Description: "Classic upper body exercise",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupChest, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 7.0},
	{Name: "Bicep Curls", Description: "Isolation exercise for biceps",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupArms, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 4.0},
	{Name: "Tricep Dips", Description: "Bodyweight exercise for triceps",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupArms, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 5.0},
	{Name: "Squats", Description: "Fundamental lower body exercise",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 6.0},
	{Name: "Lunges", Description: "Single-leg lower body exercise",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 6.0},
	{Name: "Deadlifts", Description: "Compound exercise for posterior chain",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyAdvanced, CaloriesPerMinute: 8.0},
	{Name: "Plank", Description: "Isometric core strengthening exercise",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupCore, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 3.0},
	{Name: "Crunches", Description: "Classic abdominal exercise",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupCore, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 4.0},
	{Name: "Russian Twists", Description: "Rotational core exercise",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupCore, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 5.0},
	{Name: "Running", Description: "Cardiovascular endurance exercise",
		Category: models.CategoryCardio, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentCardio,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 10.0},
	{Name: "Jumping Jacks", Description: "Full body cardio exercise",
		Category: models.CategoryCardio, MuscleGroup: models.MuscleGroupFullBody, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 8.0},
	{Name: "Jump Rope", Description: "High-intensity cardio exercise",
		Category: models.CategoryCardio, MuscleGroup: models.MuscleGroupFullBody, Equipment: models.EquipmentCardio,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 12.0},
	{Name: "Bench Press", Description: "Compound upper body pressing exercise",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupChest, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 6.0},
	{Name: "Pull-ups", Description: "Bodyweight back and arm exercise",
		Category: models.CategoryBodyweight, MuscleGroup: models.MuscleGroupBack, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyAdvanced, CaloriesPerMinute: 8.0},
	{Name: "Leg Press", Description: "Machine-based lower body exercise",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentMachines,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 5.0},
	{Name: "Calf Raises", Description: "Isolation exercise for calves",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupLegs, Equipment: models.EquipmentMachines,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 3.0},
	{Name: "Overhead Press", Description: "Compound pressing exercise for shoulders",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupShoulders, Equipment: models.EquipmentFreeWeights,
		Difficulty: models.DifficultyIntermediate, CaloriesPerMinute: 5.0},
	{Name: "Band Pull-Aparts", Description: "Rear delt and upper back activation with a resistance band",
		Category: models.CategoryStrength, MuscleGroup: models.MuscleGroupShoulders, Equipment: models.EquipmentResistanceBands,
		Difficulty: models.DifficultyBeginner, CaloriesPerMinute: 4.0},
}
