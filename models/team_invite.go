// models/team_invite.go
package models

import "time"

// InviteTTL is how long an invite link stays valid after issuance.
const InviteTTL = 7 * 24 * time.Hour

type TeamInvite struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	InviteCode string    `json:"invite_code" gorm:"uniqueIndex;not null;size:64"`
	TeamID     uint      `json:"team_id" gorm:"not null;index"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (TeamInvite) TableName() string {
	return "team_invites"
}

// Expired reports whether the invite is past its validity window.
func (i TeamInvite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
