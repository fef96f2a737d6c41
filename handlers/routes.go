// handlers/routes.go - Route table
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/seangjr/ythwknd25/middleware"
)

// SetupRoutes mounts the API on the app.
func SetupRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Get("/health-check", h.HealthCheck)

	api.Get("/teams", h.GetTeams)
	api.Get("/team-allocation", h.GetTeamAllocation)
	api.Get("/team-members", h.GetTeamMembers)

	api.Get("/hero-availability", h.GetHeroAvailability)
	api.Post("/hero-availability", h.SetHeroAvailability)

	api.Post("/register",
		middleware.RegisterRateLimit(h.cfg.RegisterLimitMax, h.cfg.RegisterLimitWindowSecs),
		h.Register)
	api.Post("/sheets-sync", h.SheetsSync)

	api.Get("/team-invite", h.ResolveInvite)
	api.Post("/team-invite", h.CreateInvite)
	api.Get("/team-invite/check", h.CheckInvite)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/registrations", websocket.New(h.LiveRegistrations))
}
