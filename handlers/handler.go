// handlers/handler.go - HTTP handler wiring
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seangjr/ythwknd25/apperrors"
	"github.com/seangjr/ythwknd25/config"
	"github.com/seangjr/ythwknd25/services"
	"github.com/seangjr/ythwknd25/sheets"
	"gorm.io/gorm"
)

// Handler holds the services every endpoint dispatches into. Constructed once
// at startup and handed to SetupRoutes.
type Handler struct {
	cfg           config.Config
	db            *gorm.DB
	registrations *services.RegistrationService
	availability  *services.AvailabilityService
	invites       *services.InviteService
	syncer        *sheets.Syncer
	hub           *services.Hub
}

func New(
	cfg config.Config,
	db *gorm.DB,
	registrations *services.RegistrationService,
	availability *services.AvailabilityService,
	invites *services.InviteService,
	syncer *sheets.Syncer,
	hub *services.Hub,
) *Handler {
	return &Handler{
		cfg:           cfg,
		db:            db,
		registrations: registrations,
		availability:  availability,
		invites:       invites,
		syncer:        syncer,
		hub:           hub,
	}
}

// fail translates a taxonomy error into the JSON error shape.
func fail(c *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	body := fiber.Map{
		"success": false,
		"error":   apperrors.MessageOf(err),
	}

	// The business-rule rejection drives a dedicated terminal screen, not a
	// toast; flag it so the client can tell them apart.
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindRegistrationClosed {
		body["registrationUnavailable"] = true
	}

	return c.Status(status).JSON(body)
}
