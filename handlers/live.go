// handlers/live.go - Websocket live registration feed
package handlers

import (
	"strconv"

	"github.com/gofiber/websocket/v2"
)

// LiveRegistrations holds a websocket open and pushes an event whenever a
// registration lands on the watched team (teamId=0 or absent watches all).
// Clients respond with a full re-fetch; no state is carried in the event
// beyond where to look.
// GET /ws/registrations?teamId=<id>
func (h *Handler) LiveRegistrations(conn *websocket.Conn) {
	var teamID uint
	if raw := conn.Query("teamId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			teamID = uint(id)
		}
	}

	id := h.hub.Subscribe(conn, teamID)
	defer func() {
		h.hub.Unsubscribe(id)
		conn.Close()
	}()

	// Drain inbound frames; the feed is one-way and ends when the peer goes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
