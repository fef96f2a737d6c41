// handlers/invites.go - Team invite endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// CreateInvite issues a fresh invite link for a team.
// POST /api/team-invite
func (h *Handler) CreateInvite(c *fiber.Ctx) error {
	var req struct {
		TeamID uint `json:"teamId"`
	}
	if err := c.BodyParser(&req); err != nil || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	invite, err := h.invites.Issue(req.TeamID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"inviteCode": invite.InviteCode,
		"inviteUrl":  h.cfg.InviteURL(invite.InviteCode),
	})
}

// ResolveInvite validates a code and returns the team it opens.
// GET /api/team-invite?code=<code>
func (h *Handler) ResolveInvite(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invite code is required",
		})
	}

	info, err := h.invites.Resolve(code)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"teamId":    info.TeamID,
		"teamName":  info.TeamName,
		"teamColor": info.TeamColor,
		"expiresAt": info.ExpiresAt,
	})
}

// CheckInvite returns the newest unexpired invite for a team, or an empty
// object when there is none.
// GET /api/team-invite/check?teamId=<id>
func (h *Handler) CheckInvite(c *fiber.Ctx) error {
	teamID, ok := queryTeamID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	invite, err := h.invites.Latest(teamID)
	if err != nil {
		return fail(c, err)
	}
	if invite == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(fiber.Map{
		"inviteCode": invite.InviteCode,
		"inviteUrl":  h.cfg.InviteURL(invite.InviteCode),
	})
}
