// handlers/members.go - Team roster endpoint
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type memberJSON struct {
	ID              uint      `json:"id"`
	LineNumber      int       `json:"line_number"`
	Nickname        string    `json:"nickname"`
	InstagramHandle string    `json:"instagram_handle"`
	FullName        string    `json:"full_name"`
	HeroID          string    `json:"hero_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// GetTeamMembers lists a team's registrations ordered by line number. Only
// the fields the drawer renders are exposed.
// GET /api/team-members?teamId=<id>
func (h *Handler) GetTeamMembers(c *fiber.Ctx) error {
	teamID, ok := queryTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	registrations, err := h.registrations.TeamMembers(teamID)
	if err != nil {
		return fail(c, err)
	}

	members := make([]memberJSON, 0, len(registrations))
	for _, reg := range registrations {
		members = append(members, memberJSON{
			ID:              reg.ID,
			LineNumber:      reg.LineNumber,
			Nickname:        reg.Nickname,
			InstagramHandle: reg.InstagramHandle,
			FullName:        reg.FullName,
			HeroID:          reg.HeroID,
			CreatedAt:       reg.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"members": members,
	})
}
