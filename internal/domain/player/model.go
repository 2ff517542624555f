package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/platform/slug"
)

const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

// Stats aggregates a player's season numbers.
type Stats struct {
	Appearances   int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

// Player is one squad member.
type Player struct {
	ID          string
	Name        string
	Slug        string
	Number      int
	Position    string
	Nationality string
	DateOfBirth time.Time
	HeightCm    int
	WeightKg    int
	Photo       string
	Bio         string
	JoinedAt    time.Time
	IsActive    bool
	Stats       Stats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New validates fields and derives the slug from the name when absent.
func New(name, slugValue, position, nationality string, number int, dateOfBirth time.Time) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, fmt.Errorf("player name is required")
	}
	if !IsValidPosition(position) {
		return Player{}, fmt.Errorf("invalid position %q", position)
	}
	if number < 1 || number > 99 {
		return Player{}, fmt.Errorf("shirt number must be between 1 and 99")
	}

	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if slugValue == "" {
		return Player{}, fmt.Errorf("cannot derive slug from name %q", name)
	}

	return Player{
		Name:        name,
		Slug:        slugValue,
		Number:      number,
		Position:    position,
		Nationality: strings.TrimSpace(nationality),
		DateOfBirth: dateOfBirth,
		IsActive:    true,
	}, nil
}

// Age computes full years since the date of birth, month and day aware.
func (p Player) Age(now time.Time) int {
	if p.DateOfBirth.IsZero() {
		return 0
	}
	years := now.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func IsValidPosition(value string) bool {
	switch strings.TrimSpace(value) {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	default:
		return false
	}
}
