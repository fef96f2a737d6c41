// models/catalog.go - Static event data
//
// YTHWKND 2025 runs with a fixed roster: five universes of five lines each,
// sharing one pool of five heroes. The roster never changes at runtime; it is
// compiled in and seeded into the database at startup.
package models

import (
	"fmt"
	"time"
)

const (
	TeamCount    = 5
	LinesPerTeam = 5
)

// EventOpenTime is when registration opens; the landing page counts down to it.
var EventOpenTime = time.Date(2025, time.May, 11, 12, 30, 0, 0, time.Local)

// Teams is the fixed set of universes.
var Teams = []Team{
	{ID: 1, Code: "U1", Name: "Aurora", Color: "#f43f5e"},
	{ID: 2, Code: "U2", Name: "Eclipse", Color: "#8b5cf6"},
	{ID: 3, Code: "U3", Name: "Horizon", Color: "#f59e0b"},
	{ID: 4, Code: "U4", Name: "Tempest", Color: "#10b981"},
	{ID: 5, Code: "U5", Name: "Vanguard", Color: "#3b82f6"},
}

// Heroes is the shared hero pool. Every universe offers the same five heroes.
var Heroes = []Hero{
	{ID: "alex", Name: "Alex", Class: "Vanguard", Perk: "First In", Description: "Leads the charge and never looks back."},
	{ID: "suzzy", Name: "Suzzy", Class: "Tactician", Perk: "Overwatch", Description: "Reads the field three moves ahead."},
	{ID: "max", Name: "Max", Class: "Bruiser", Perk: "Unbreakable", Description: "Takes the hit so the team doesn't have to."},
	{ID: "luna", Name: "Luna", Class: "Phantom", Perk: "Night Shift", Description: "You won't see her until it's too late."},
	{ID: "rex", Name: "Rex", Class: "Wildcard", Perk: "Chaos Theory", Description: "Nobody plans around Rex. Not even Rex."},
}

// TeamByID looks up a team in the catalog.
func TeamByID(id uint) (Team, bool) {
	for _, t := range Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// HeroByID looks up a hero in the catalog.
func HeroByID(id string) (Hero, bool) {
	for _, h := range Heroes {
		if h.ID == id {
			return h, true
		}
	}
	return Hero{}, false
}

// HeroImagePath returns the per-team artwork asset for a hero.
func HeroImagePath(heroID string, teamID uint) string {
	if _, ok := HeroByID(heroID); !ok {
		return "/placeholder.svg"
	}
	return fmt.Sprintf("/heroes/team-%d/%s.png", teamID, heroID)
}
