// handlers/register.go - Registration endpoint
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/services"
)

// Register handles a registration submission.
// POST /api/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	reg, err := h.registrations.Register(input)
	if err != nil {
		log.Printf("❌ Registration rejected (line %d): %v", input.LineNumber, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reg,
	})
}
