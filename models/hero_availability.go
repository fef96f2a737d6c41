// models/hero_availability.go
package models

import "time"

// HeroAvailability is the denormalized "is this hero still claimable on this
// team" flag, defaulted true and flipped false in the same transaction as the
// registration insert.
type HeroAvailability struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TeamID      uint      `json:"team_id" gorm:"not null;uniqueIndex:idx_hero_availability_team_hero"`
	HeroID      string    `json:"hero_id" gorm:"not null;size:50;uniqueIndex:idx_hero_availability_team_hero"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (HeroAvailability) TableName() string {
	return "hero_availability"
}
