// services/hub.go - Live registration feed
//
// The selection screen keeps its "heroes remaining" counters live by holding
// a websocket open and re-fetching whenever a registration lands on the team
// it is watching.
package services

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait = 10 * time.Second

	EventRegistered = "registration"
)

// Event is pushed to subscribers after a successful registration so they can
// re-fetch the team's members and availability.
type Event struct {
	Type       string `json:"type"`
	TeamID     uint   `json:"teamId"`
	LineNumber int    `json:"lineNumber"`
	HeroID     string `json:"heroId"`
}

type subscriber struct {
	conn   *websocket.Conn
	teamID uint // 0 subscribes to every team
	mu     sync.Mutex
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*subscriber)}
}

// Subscribe registers a connection and returns its handle for Unsubscribe.
func (h *Hub) Subscribe(conn *websocket.Conn, teamID uint) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.subscribers[id] = &subscriber{conn: conn, teamID: teamID}
	h.mu.Unlock()
	log.Printf("🔌 live feed subscriber %s (team %d, %d total)", id, teamID, h.Count())
	return id
}

func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	delete(h.subscribers, id)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Broadcast fans an event out to every subscriber watching the event's team.
// Dead connections are dropped rather than retried.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	targets := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		if sub.teamID == 0 || sub.teamID == ev.TeamID {
			targets[id] = sub
		}
	}
	h.mu.RUnlock()

	for id, sub := range targets {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteJSON(ev)
		sub.mu.Unlock()
		if err != nil {
			log.Printf("⚠️ dropping live feed subscriber %s: %v", id, err)
			h.Unsubscribe(id)
			sub.conn.Close()
		}
	}
}
