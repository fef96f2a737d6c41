// services/availability_service.go - Hero availability and line allocation
package services

import (
	"github.com/seangjr/ythwknd25/apperrors"
	"github.com/seangjr/ythwknd25/models"
	"gorm.io/gorm"
)

// HeroStatus is the wire shape of one (team, hero) availability flag.
type HeroStatus struct {
	HeroID      string `json:"heroId"`
	IsAvailable bool   `json:"isAvailable"`
}

// Allocation is everything the selection screen needs for one team: which of
// its five lines are still free and which heroes remain claimable.
type Allocation struct {
	TeamID          uint         `json:"teamId"`
	FreeLines       []int        `json:"freeLines"`
	AvailableHeroes []HeroStatus `json:"availableHeroes"`
	MemberCount     int          `json:"memberCount"`
	TeamFull        bool         `json:"teamFull"`
	HeroesExhausted bool         `json:"heroesExhausted"`
}

type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// ForTeam lists the availability flags for one team.
func (s *AvailabilityService) ForTeam(teamID uint) ([]HeroStatus, error) {
	var rows []models.HeroAvailability
	err := s.db.Where("team_id = ?", teamID).Order("hero_id").Find(&rows).Error
	if err != nil {
		return nil, apperrors.Classify(err, "Failed to fetch hero availability")
	}

	statuses := make([]HeroStatus, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, HeroStatus{HeroID: row.HeroID, IsAvailable: row.IsAvailable})
	}
	return statuses, nil
}

// Set writes one availability flag directly. Registration flips flags itself;
// this exists for the manual-correction endpoint.
func (s *AvailabilityService) Set(teamID uint, heroID string, isAvailable bool) error {
	res := s.db.Model(&models.HeroAvailability{}).
		Where("team_id = ? AND hero_id = ?", teamID, heroID).
		Update("is_available", isAvailable)
	if res.Error != nil {
		return apperrors.Classify(res.Error, "Failed to update hero availability")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("No availability row for this team and hero")
	}
	return nil
}

// Allocation derives the free lines and claimable heroes for a team: the
// team's owned line range minus taken lines, and the heroes still flagged
// available. When either set is empty the team blocks further submissions.
func (s *AvailabilityService) Allocation(teamID uint) (*Allocation, error) {
	if _, ok := models.TeamByID(teamID); !ok {
		return nil, apperrors.NotFound("Team not found")
	}

	var taken []int
	err := s.db.Model(&models.Registration{}).
		Where("team_id = ?", teamID).
		Order("line_number").
		Pluck("line_number", &taken).Error
	if err != nil {
		return nil, apperrors.Classify(err, "Failed to fetch registrations")
	}

	takenSet := make(map[int]bool, len(taken))
	for _, line := range taken {
		takenSet[line] = true
	}

	start, end := models.LineRange(teamID)
	freeLines := make([]int, 0, models.LinesPerTeam)
	for line := start; line <= end; line++ {
		if !takenSet[line] {
			freeLines = append(freeLines, line)
		}
	}

	statuses, err := s.ForTeam(teamID)
	if err != nil {
		return nil, err
	}
	available := make([]HeroStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.IsAvailable {
			available = append(available, st)
		}
	}

	return &Allocation{
		TeamID:          teamID,
		FreeLines:       freeLines,
		AvailableHeroes: available,
		MemberCount:     len(taken),
		TeamFull:        len(freeLines) == 0,
		HeroesExhausted: len(available) == 0,
	}, nil
}

// NextFreeLine returns the lowest free line for a team, or false when full.
func (s *AvailabilityService) NextFreeLine(teamID uint) (int, bool, error) {
	alloc, err := s.Allocation(teamID)
	if err != nil {
		return 0, false, err
	}
	if len(alloc.FreeLines) == 0 {
		return 0, false, nil
	}
	return alloc.FreeLines[0], true, nil
}
