// models/registration.go
package models

import "time"

type Registration struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	LineNumber  int    `json:"line_number" gorm:"uniqueIndex;not null"`
	GroupNumber int    `json:"group_number" gorm:"not null"`
	TeamID      uint   `json:"team_id" gorm:"not null;index;uniqueIndex:idx_registrations_team_hero"`
	HeroID      string `json:"hero_id" gorm:"not null;size:50;uniqueIndex:idx_registrations_team_hero"`

	Email           string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	FullName        string `json:"full_name" gorm:"not null;size:100"`
	Nickname        string `json:"nickname" gorm:"size:100"`
	Age             int    `json:"age" gorm:"not null"`
	Gender          string `json:"gender" gorm:"size:10"`
	NricPassport    string `json:"nric_passport" gorm:"size:50"`
	ContactNumber   string `json:"contact_number" gorm:"size:30"`
	InstagramHandle string `json:"instagram_handle" gorm:"size:50"`
	SchoolName      string `json:"school_name" gorm:"size:100"`
	YMMember        bool   `json:"ym_member" gorm:"default:false"`
	CGLeader        string `json:"cg_leader" gorm:"size:100"`
	InviteCode      string `json:"invite_code" gorm:"size:64;index"`

	EmergencyContactName         string `json:"emergency_contact_name" gorm:"size:100"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" gorm:"size:50"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" gorm:"size:30"`
	EmergencyContactEmail        string `json:"emergency_contact_email" gorm:"size:255"`

	IsChristian      string `json:"is_christian" gorm:"size:30"`
	EventSource      string `json:"event_source" gorm:"size:30"`
	OtherEventSource string `json:"other_event_source" gorm:"size:255"`
	InvitedByFriend  string `json:"invited_by_friend" gorm:"size:100"`

	// Collected for a dropped flow; kept nullable for schema compatibility.
	ChurchName *string `json:"church_name,omitempty" gorm:"size:100"`
	PastorName *string `json:"pastor_name,omitempty" gorm:"size:100"`
	ChurchRole *string `json:"church_role,omitempty" gorm:"size:50"`

	CreatedAt time.Time `json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// GroupNumberForLine derives the group a line belongs to. Lines are numbered
// globally; each group of five is one team's block.
func GroupNumberForLine(line int) int {
	return (line + LinesPerTeam - 1) / LinesPerTeam
}
