package sponsor

import (
	"fmt"
	"strings"
	"time"
)

const (
	LevelMain      = "main"
	LevelOfficial  = "official"
	LevelTechnical = "technical"
	LevelMedia     = "media"
	LevelOther     = "other"
)

const DefaultDisplayOrder = 99

// Sponsor is one club partner shown on the public site. StartDate and
// EndDate bound the active window; zero EndDate means open ended.
type Sponsor struct {
	ID           string
	Name         string
	Logo         string
	URL          string
	Level        string
	Description  string
	DisplayOrder int
	IsActive     bool
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New applies defaults and validates the level enum.
func New(name, logo, url, level string, displayOrder int, startDate, endDate time.Time) (Sponsor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Sponsor{}, fmt.Errorf("sponsor name is required")
	}
	if strings.TrimSpace(logo) == "" {
		return Sponsor{}, fmt.Errorf("sponsor logo is required")
	}
	level = NormalizeLevel(level)
	if !IsValidLevel(level) {
		return Sponsor{}, fmt.Errorf("invalid sponsor level %q", level)
	}
	if displayOrder <= 0 {
		displayOrder = DefaultDisplayOrder
	}
	if !endDate.IsZero() && !startDate.IsZero() && endDate.Before(startDate) {
		return Sponsor{}, fmt.Errorf("sponsor end date precedes start date")
	}

	return Sponsor{
		Name:         name,
		Logo:         strings.TrimSpace(logo),
		URL:          strings.TrimSpace(url),
		Level:        level,
		DisplayOrder: displayOrder,
		IsActive:     true,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

// InWindow reports whether the sponsorship is inside its date window.
func (s Sponsor) InWindow(now time.Time) bool {
	if !s.StartDate.IsZero() && now.Before(s.StartDate) {
		return false
	}
	if !s.EndDate.IsZero() && now.After(s.EndDate) {
		return false
	}
	return true
}

func NormalizeLevel(value string) string {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return LevelOther
	}
	return level
}

func IsValidLevel(value string) bool {
	switch NormalizeLevel(value) {
	case LevelMain, LevelOfficial, LevelTechnical, LevelMedia, LevelOther:
		return true
	default:
		return false
	}
}
