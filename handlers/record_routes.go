// handlers/record_routes.go
package handlers

import (
	"fitness-tracker-backend/middleware"
	"fitness-tracker-backend/models"
	"fitness-tracker-backend/services"

	"github.com/gofiber/fiber/v2"
)

// recordResponse adds the read-time improvement percentage to a stored PR.
type recordResponse struct {
	models.PersonalRecord
	ExerciseName          string   `json:"exercise_name,omitempty"`
	ImprovementPercentage *float64 `json:"improvement_percentage"`
}

func SetupRecordRoutes(app *fiber.App, recordService *services.RecordService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/records", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		records, err := recordService.ListRecords(userID, c.Query("exercise_id"))
		if err != nil {
			return respondServiceError(c, err)
		}

		res := make([]recordResponse, len(records))
		for i, r := range records {
			res[i] = recordResponse{
				PersonalRecord:        r,
				ImprovementPercentage: r.ImprovementPercentage(),
			}
			if r.Exercise != nil {
				res[i].ExerciseName = r.Exercise.Name
			}
		}
		return c.JSON(res)
	})
}
