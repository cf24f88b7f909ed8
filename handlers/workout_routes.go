// handlers/workout_routes.go
package handlers

import (
	"fitness-tracker-backend/middleware"
	"fitness-tracker-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkoutRoutes(app *fiber.App, workoutService *services.WorkoutService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/workouts", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var req services.LogWorkoutRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		workout, err := workoutService.LogWorkout(userID, req)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(workout)
	})

	secured.Get("/workouts", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		start, end, verr := parseTimeRange(c)
		if verr != nil {
			return respondServiceError(c, verr)
		}

		workouts, err := workoutService.ListWorkouts(userID, start, end)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(workouts)
	})

	// Registered before /workouts/:id so "statistics" is not taken as an id.
	secured.Get("/workouts/statistics", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		start, end, verr := parseTimeRange(c)
		if verr != nil {
			return respondServiceError(c, verr)
		}

		stats, err := workoutService.ComputeStatistics(userID, start, end)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(stats)
	})

	secured.Get("/workouts/:id", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		workout, err := workoutService.GetWorkout(userID, c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(workout)
	})

	// Soft delete — the default. The row stays recoverable via restore.
	secured.Delete("/workouts/:id", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if err := workoutService.DeleteWorkout(userID, c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "workout deleted"})
	})

	secured.Post("/workouts/:id/restore", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		workout, err := workoutService.RestoreWorkout(userID, c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(workout)
	})

	// Permanent removal — distinct, rarely-used operation.
	secured.Delete("/workouts/:id/permanent", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if err := workoutService.HardDeleteWorkout(userID, c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "workout permanently deleted"})
	})
}
