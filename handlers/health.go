// handlers/health.go - Backend health probe
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/database"
	"github.com/seangjr/ythwknd25/utils"
)

// HealthCheck verifies the database is reachable, retrying transient
// failures before reporting the backend unavailable.
// GET /api/health-check
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	err := utils.Retry("health-check", func() error {
		return database.Ping(h.db)
	})
	if err != nil {
		status := 500
		message := "Database error"
		if errors.Is(err, utils.ErrMaxRetries) {
			status = 503
			message = "Maximum retry attempts reached. Please try again later."
		}
		return c.Status(status).JSON(fiber.Map{
			"error": message,
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}
