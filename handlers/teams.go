// handlers/teams.go - Landing page catalog endpoint
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/models"
)

type teamJSON struct {
	ID              uint   `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	LineStart       int    `json:"lineStart"`
	LineEnd         int    `json:"lineEnd"`
	MemberCount     int    `json:"memberCount"`
	AvailableHeroes int    `json:"availableHeroes"`
	TeamFull        bool   `json:"teamFull"`
}

type heroJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Class       string            `json:"class"`
	Perk        string            `json:"perk"`
	Description string            `json:"description"`
	Images      map[uint]string   `json:"images"`
}

// GetTeams returns the full catalog with live counts — everything the
// selection grid needs in one call.
// GET /api/teams
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams := make([]teamJSON, 0, len(models.Teams))
	for _, team := range models.Teams {
		alloc, err := h.availability.Allocation(team.ID)
		if err != nil {
			return fail(c, err)
		}
		start, end := models.LineRange(team.ID)
		teams = append(teams, teamJSON{
			ID:              team.ID,
			Code:            team.Code,
			Name:            team.Name,
			Color:           team.Color,
			LineStart:       start,
			LineEnd:         end,
			MemberCount:     alloc.MemberCount,
			AvailableHeroes: len(alloc.AvailableHeroes),
			TeamFull:        alloc.TeamFull,
		})
	}

	heroes := make([]heroJSON, 0, len(models.Heroes))
	for _, hero := range models.Heroes {
		images := make(map[uint]string, len(models.Teams))
		for _, team := range models.Teams {
			images[team.ID] = models.HeroImagePath(hero.ID, team.ID)
		}
		heroes = append(heroes, heroJSON{
			ID:          hero.ID,
			Name:        hero.Name,
			Class:       hero.Class,
			Perk:        hero.Perk,
			Description: hero.Description,
			Images:      images,
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"teams":        teams,
		"heroes":       heroes,
		"eventOpensAt": models.EventOpenTime,
	})
}
