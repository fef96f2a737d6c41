// services/invite_service.go - Team invite issuance and resolution
package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/seangjr/ythwknd25/apperrors"
	"github.com/seangjr/ythwknd25/metrics"
	"github.com/seangjr/ythwknd25/models"
	"gorm.io/gorm"
)

const inviteCodeLength = 10

// InviteInfo is what a resolved invite carries to the landing page.
type InviteInfo struct {
	TeamID    uint      `json:"teamId"`
	TeamName  string    `json:"teamName"`
	TeamColor string    `json:"teamColor"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type InviteService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewInviteService(db *gorm.DB) *InviteService {
	return &InviteService{db: db, now: time.Now}
}

// NewInviteServiceWithClock is for tests that need to move time.
func NewInviteServiceWithClock(db *gorm.DB, now func() time.Time) *InviteService {
	return &InviteService{db: db, now: now}
}

// Issue creates a fresh invite for a team. Multiple live invites per team are
// fine; the read side treats the newest unexpired one as canonical.
func (s *InviteService) Issue(teamID uint) (*models.TeamInvite, error) {
	if _, ok := models.TeamByID(teamID); !ok {
		return nil, apperrors.Validation("Unknown team")
	}

	invite := &models.TeamInvite{
		InviteCode: s.generateUniqueCode(),
		TeamID:     teamID,
		ExpiresAt:  s.now().Add(models.InviteTTL),
	}

	if err := s.db.Create(invite).Error; err != nil {
		return nil, apperrors.Classify(err, "Failed to create team invite")
	}

	metrics.InvitesIssued.Inc()
	return invite, nil
}

// Resolve looks up a code and returns its target team, distinguishing an
// unknown code from one that exists but has lapsed.
func (s *InviteService) Resolve(code string) (*InviteInfo, error) {
	var invite models.TeamInvite
	err := s.db.Where("invite_code = ?", code).First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Invalid invite code")
	}
	if err != nil {
		return nil, apperrors.Classify(err, "Failed to fetch team invite")
	}

	if invite.Expired(s.now()) {
		return nil, apperrors.Expired("Invite has expired")
	}

	team, ok := models.TeamByID(invite.TeamID)
	if !ok {
		return nil, apperrors.NotFound("Team not found")
	}

	return &InviteInfo{
		TeamID:    team.ID,
		TeamName:  team.Name,
		TeamColor: team.Color,
		ExpiresAt: invite.ExpiresAt,
	}, nil
}

// Latest returns the most recently issued unexpired invite for a team, or nil
// when none exists.
func (s *InviteService) Latest(teamID uint) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	err := s.db.Where("team_id = ?", teamID).
		Order("created_at DESC").
		First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Classify(err, "Failed to check for existing invite")
	}

	if invite.Expired(s.now()) {
		return nil, nil
	}
	return &invite, nil
}

// DeleteExpired removes lapsed invites and returns how many went.
func (s *InviteService) DeleteExpired() (int64, error) {
	res := s.db.Where("expires_at < ?", s.now()).Delete(&models.TeamInvite{})
	if res.Error != nil {
		return 0, apperrors.Classify(res.Error, "Failed to delete expired invites")
	}
	return res.RowsAffected, nil
}

// generateUniqueCode draws random hex codes until one is unused. Collisions
// are vanishingly rare at this scale; the loop is a safety net.
func (s *InviteService) generateUniqueCode() string {
	for {
		bytes := make([]byte, inviteCodeLength/2)
		rand.Read(bytes)
		code := hex.EncodeToString(bytes)[:inviteCodeLength]

		var count int64
		s.db.Model(&models.TeamInvite{}).Where("invite_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
}
