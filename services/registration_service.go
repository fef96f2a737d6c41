// services/registration_service.go - Registration business logic
package services

import (
	"errors"
	"log"

	"github.com/seangjr/ythwknd25/apperrors"
	"github.com/seangjr/ythwknd25/metrics"
	"github.com/seangjr/ythwknd25/models"
	"github.com/seangjr/ythwknd25/sheets"
	"gorm.io/gorm"
)

// RegisterInput is the registration form payload.
type RegisterInput struct {
	LineNumber  int    `json:"lineNumber"`
	GroupNumber int    `json:"groupNumber"`
	TeamID      uint   `json:"teamId"`
	HeroID      string `json:"heroId"`

	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	NricPassport    string `json:"nricPassport"`
	ContactNumber   string `json:"contactNumber"`
	InstagramHandle string `json:"instagramHandle"`
	SchoolName      string `json:"schoolName"`
	YMMember        bool   `json:"ymMember"`
	CGLeader        string `json:"cgLeader"`
	InviteCode      string `json:"inviteCode"`

	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`
	EmergencyContactEmail        string `json:"emergencyContactEmail"`

	IsChristian      string `json:"isChristian"`
	EventSource      string `json:"eventSource"`
	OtherEventSource string `json:"otherEventSource"`
	InvitedByFriend  string `json:"invitedByFriend"`
}

type RegistrationService struct {
	db     *gorm.DB
	hub    *Hub
	syncer *sheets.Syncer
}

func NewRegistrationService(db *gorm.DB, hub *Hub, syncer *sheets.Syncer) *RegistrationService {
	return &RegistrationService{db: db, hub: hub, syncer: syncer}
}

// Register validates the submission and persists it. The row insert and the
// availability flip happen in one transaction; a crash can no longer leave a
// registration without its flag. Concurrent submissions for the same line,
// email, or (team, hero) pair race into the unique constraints and exactly
// one wins.
func (s *RegistrationService) Register(input RegisterInput) (*models.Registration, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	applyMembershipDefaults(&input)

	// Non-members already committed to another church are registered at the
	// counter instead; the form shows a terminal screen, not an error toast.
	if !input.YMMember && input.IsChristian == "attending_other" {
		return nil, apperrors.RegistrationClosed("Online registration is not available for your selection. Please visit the registration counter.")
	}

	reg := buildRegistration(input)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Registration
		if err := tx.Select("id").Where("line_number = ?", input.LineNumber).First(&existing).Error; err == nil {
			return apperrors.Conflict("This line is already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Classify(err, "Failed to check line availability")
		}

		if err := tx.Select("id").Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return apperrors.Conflict("This email is already registered. Please use a different email.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Classify(err, "Failed to check email")
		}

		var availability models.HeroAvailability
		err := tx.Where("team_id = ? AND hero_id = ?", input.TeamID, input.HeroID).First(&availability).Error
		if err != nil || !availability.IsAvailable {
			return apperrors.Conflict("This hero is no longer available")
		}

		if err := tx.Create(reg).Error; err != nil {
			return apperrors.Classify(err, "Failed to create registration")
		}

		// Compare-and-set: losing a race here means someone else claimed the
		// hero between our read and now.
		res := tx.Model(&models.HeroAvailability{}).
			Where("team_id = ? AND hero_id = ? AND is_available = ?", input.TeamID, input.HeroID, true).
			Update("is_available", false)
		if res.Error != nil {
			return apperrors.Classify(res.Error, "Failed to update hero availability")
		}
		if res.RowsAffected == 0 {
			return apperrors.Conflict("This hero is no longer available")
		}

		return nil
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindConflict {
			metrics.RegistrationConflicts.Inc()
		}
		return nil, err
	}

	metrics.Registrations.Inc()
	log.Printf("✅ Registered line %d (team %d, hero %s)", reg.LineNumber, reg.TeamID, reg.HeroID)

	if s.hub != nil {
		s.hub.Broadcast(Event{Type: EventRegistered, TeamID: reg.TeamID, LineNumber: reg.LineNumber, HeroID: reg.HeroID})
	}

	// Bookkeeping export is best-effort and must never block or fail the
	// registration itself.
	if s.syncer != nil {
		regCopy := *reg
		go func() {
			_, _ = s.syncer.Sync(regCopy)
		}()
	}

	return reg, nil
}

func (s *RegistrationService) validate(input *RegisterInput) error {
	switch {
	case input.LineNumber == 0, input.Email == "", input.FullName == "",
		input.HeroID == "", input.TeamID == 0:
		return apperrors.Validation("Missing required fields")
	}

	team, ok := models.TeamByID(input.TeamID)
	if !ok {
		return apperrors.Validation("Unknown team")
	}
	if _, ok := models.HeroByID(input.HeroID); !ok {
		return apperrors.Validation("Unknown hero")
	}
	if !models.OwnsLine(team.ID, input.LineNumber) {
		return apperrors.Validation("Line does not belong to this team")
	}
	if input.Age < 13 || input.Age > 17 {
		return apperrors.Validation("Age must be between 13 and 17")
	}
	if input.YMMember && input.CGLeader == "" {
		return apperrors.Validation("CG Leader is required for YM members")
	}
	if input.EventSource == "other" && input.OtherEventSource == "" {
		return apperrors.Validation("Please specify how you heard about this event")
	}
	return nil
}

// applyMembershipDefaults fills in the survey answers YM members skip.
func applyMembershipDefaults(input *RegisterInput) {
	if input.YMMember {
		input.IsChristian = "attending_other"
		input.EventSource = "ym_services"
	}
}

func buildRegistration(input RegisterInput) *models.Registration {
	group := input.GroupNumber
	if group == 0 {
		group = models.GroupNumberForLine(input.LineNumber)
	}
	return &models.Registration{
		LineNumber:  input.LineNumber,
		GroupNumber: group,
		TeamID:      input.TeamID,
		HeroID:      input.HeroID,

		Email:           input.Email,
		FullName:        input.FullName,
		Nickname:        input.FullName,
		Age:             input.Age,
		Gender:          input.Gender,
		NricPassport:    input.NricPassport,
		ContactNumber:   input.ContactNumber,
		InstagramHandle: input.InstagramHandle,
		SchoolName:      input.SchoolName,
		YMMember:        input.YMMember,
		CGLeader:        input.CGLeader,
		InviteCode:      input.InviteCode,

		EmergencyContactName:         input.EmergencyContactName,
		EmergencyContactRelationship: input.EmergencyContactRelationship,
		EmergencyContactPhone:        input.EmergencyContactPhone,
		EmergencyContactEmail:        input.EmergencyContactEmail,

		IsChristian:      input.IsChristian,
		EventSource:      input.EventSource,
		OtherEventSource: input.OtherEventSource,
		InvitedByFriend:  input.InvitedByFriend,
	}
}

// TeamMembers returns a team's registrations ordered by line number.
func (s *RegistrationService) TeamMembers(teamID uint) ([]models.Registration, error) {
	var members []models.Registration
	err := s.db.Where("team_id = ?", teamID).
		Order("line_number").
		Find(&members).Error
	if err != nil {
		return nil, apperrors.Classify(err, "Failed to fetch team members")
	}
	return members, nil
}
