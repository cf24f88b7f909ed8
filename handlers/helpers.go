// handlers/helpers.go
package handlers

import (
	"errors"
	"time"

	"fitness-tracker-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondServiceError maps service-layer errors onto HTTP responses:
// field-level validation → 400, missing rows → 404, the rest → 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	if verr, ok := err.(*services.ValidationError); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
		"cause": err.Error(),
	})
}

// parseTimeParam accepts RFC3339 or plain dates. A date-only value used as a
// range end covers the whole day (inclusive filtering).
func parseTimeParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	return nil, errors.New("Must be a date (YYYY-MM-DD) or an RFC 3339 timestamp.")
}

// parseTimeRange reads the start_date/end_date query params. Malformed values
// are rejected, never silently dropped.
func parseTimeRange(c *fiber.Ctx) (*time.Time, *time.Time, *services.ValidationError) {
	fields := map[string]string{}

	start, err := parseTimeParam(c.Query("start_date"), false)
	if err != nil {
		fields["start_date"] = err.Error()
	}
	end, err := parseTimeParam(c.Query("end_date"), true)
	if err != nil {
		fields["end_date"] = err.Error()
	}

	if len(fields) > 0 {
		return nil, nil, &services.ValidationError{Fields: fields}
	}
	return start, end, nil
}
