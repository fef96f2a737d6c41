// handlers/availability.go - Hero availability endpoints
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetHeroAvailability lists the availability flags for one team.
// GET /api/hero-availability?teamId=<id>
func (h *Handler) GetHeroAvailability(c *fiber.Ctx) error {
	teamID, ok := queryTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	statuses, err := h.availability.ForTeam(teamID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(statuses)
}

// SetHeroAvailability writes one flag directly (manual correction path).
// POST /api/hero-availability
func (h *Handler) SetHeroAvailability(c *fiber.Ctx) error {
	var req struct {
		TeamID      uint   `json:"teamId"`
		HeroID      string `json:"heroId"`
		IsAvailable bool   `json:"isAvailable"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.TeamID == 0 || req.HeroID == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID and Hero ID are required",
		})
	}

	if err := h.availability.Set(req.TeamID, req.HeroID, req.IsAvailable); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// GetTeamAllocation derives the free lines and claimable heroes for a team.
// GET /api/team-allocation?teamId=<id>
func (h *Handler) GetTeamAllocation(c *fiber.Ctx) error {
	teamID, ok := queryTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	alloc, err := h.availability.Allocation(teamID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"allocation": alloc,
	})
}

func queryTeamID(c *fiber.Ctx) (uint, bool) {
	raw := c.Query("teamId")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
