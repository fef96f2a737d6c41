// models/team.go
package models

import "time"

type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"not null;size:10"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Color     string    `json:"color" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}

// LineRange returns the inclusive bounds of the five lines a team owns.
func LineRange(teamID uint) (int, int) {
	start := (int(teamID)-1)*LinesPerTeam + 1
	return start, start + LinesPerTeam - 1
}

// OwnsLine reports whether a line number falls inside a team's block.
func OwnsLine(teamID uint, line int) bool {
	start, end := LineRange(teamID)
	return line >= start && line <= end
}
