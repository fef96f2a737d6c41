// handlers/sheets_sync.go - Spreadsheet export endpoint
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/models"
	"github.com/seangjr/ythwknd25/services"
	"github.com/seangjr/ythwknd25/sheets"
)

// SheetsSync appends a registration row to the bookkeeping spreadsheet. The
// export is best-effort: a missing integration or an API failure still
// answers 200, flagged so the caller knows the row never landed.
// POST /api/sheets-sync
func (h *Handler) SheetsSync(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if input.LineNumber == 0 || input.Email == "" || input.FullName == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields",
		})
	}

	reg := models.Registration{
		LineNumber:                   input.LineNumber,
		GroupNumber:                  input.GroupNumber,
		TeamID:                       input.TeamID,
		HeroID:                       input.HeroID,
		Email:                        input.Email,
		FullName:                     input.FullName,
		Age:                          input.Age,
		Gender:                       input.Gender,
		NricPassport:                 input.NricPassport,
		ContactNumber:                input.ContactNumber,
		InstagramHandle:              input.InstagramHandle,
		SchoolName:                   input.SchoolName,
		YMMember:                     input.YMMember,
		CGLeader:                     input.CGLeader,
		EmergencyContactName:         input.EmergencyContactName,
		EmergencyContactRelationship: input.EmergencyContactRelationship,
		EmergencyContactPhone:        input.EmergencyContactPhone,
		EmergencyContactEmail:        input.EmergencyContactEmail,
		IsChristian:                  input.IsChristian,
		EventSource:                  input.EventSource,
		OtherEventSource:             input.OtherEventSource,
		InvitedByFriend:              input.InvitedByFriend,
	}

	outcome, err := h.syncer.Sync(reg)
	switch outcome {
	case sheets.OutcomeSkipped:
		return c.JSON(fiber.Map{
			"success":           true,
			"sheetsSyncSkipped": true,
		})
	case sheets.OutcomeFailed:
		body := fiber.Map{
			"success":          true,
			"sheetsSyncFailed": true,
		}
		if err != nil {
			body["error"] = err.Error()
		}
		return c.JSON(body)
	default:
		return c.JSON(fiber.Map{
			"success": true,
		})
	}
}
