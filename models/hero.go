// models/hero.go
package models

import "time"

// Hero is a shared character template. The same five heroes exist in every
// universe; who has claimed one is tracked per (team, hero) pair.
type Hero struct {
	ID          string    `json:"id" gorm:"primaryKey;size:50"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Class       string    `json:"class" gorm:"size:50"`
	Perk        string    `json:"perk" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Hero) TableName() string {
	return "heroes"
}
