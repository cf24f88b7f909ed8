// handlers/exercise_routes.go
package handlers

import (
	"fitness-tracker-backend/middleware"
	"fitness-tracker-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupExerciseRoutes(app *fiber.App, exerciseService *services.ExerciseService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/exercises", func(c *fiber.Ctx) error {
		exercises, err := exerciseService.List(
			c.Query("category"),
			c.Query("difficulty"),
			c.Query("muscle_group"),
		)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(exercises)
	})

	secured.Get("/exercises/:id", func(c *fiber.Ctx) error {
		exercise, err := exerciseService.Get(c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(exercise)
	})

	// Custom exercise creation. JSON body, or multipart with an optional
	// "image" file that lands in R2.
	secured.Post("/exercises", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var req services.CreateExerciseRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
				"cause": err.Error(),
			})
		}

		image, _ := c.FormFile("image")

		exercise, err := exerciseService.CreateCustom(userID, req, image)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(exercise)
	})
}
