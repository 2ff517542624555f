package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

const (
	ResultHomeWin = "HOME_WIN"
	ResultAwayWin = "AWAY_WIN"
	ResultDraw    = "DRAW"
)

const (
	CompetitionLigaPro     = "Liga Pro"
	CompetitionCopaEcuador = "Copa Ecuador"
	CompetitionLibertador  = "Copa Libertadores"
	CompetitionSudamerica  = "Copa Sudamericana"
	CompetitionFriendly    = "Amistoso"
)

const (
	EventGoal         = "GOAL"
	EventYellowCard   = "YELLOW_CARD"
	EventRedCard      = "RED_CARD"
	EventSubstitution = "SUBSTITUTION"
)

// Event is one timeline entry of a match.
type Event struct {
	Type     string
	Minute   int
	Team     string
	Player   string
	AssistBy string
}

// Stats holds per-side aggregate numbers for a match.
type Stats struct {
	HomePossession    int
	AwayPossession    int
	HomeShots         int
	AwayShots         int
	HomeShotsOnTarget int
	AwayShotsOnTarget int
	HomeCorners       int
	AwayCorners       int
	HomeFouls         int
	AwayFouls         int
	HomeYellowCards   int
	AwayYellowCards   int
	HomeRedCards      int
	AwayRedCards      int
}

// Match is one club match. Two matches may never share the same
// home team, away team and kickoff date.
type Match struct {
	ID          string
	Competition string
	Season      string
	Matchday    int
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	Venue       string
	Status      string
	HomeScore   int
	AwayScore   int
	Minute      int
	Events      []Event
	Stats       Stats
	Highlights  string
	TicketURL   string
	StreamURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New builds a match with defaults and validated enums. Derived fields
// are computed here, never by persistence hooks.
func New(competition, season string, matchday int, date time.Time, homeTeam, awayTeam, venue, status string) (Match, error) {
	status = NormalizeStatus(status)
	if !IsValidStatus(status) {
		return Match{}, fmt.Errorf("invalid match status %q", status)
	}
	if !IsValidCompetition(competition) {
		return Match{}, fmt.Errorf("invalid competition %q", competition)
	}
	if strings.TrimSpace(homeTeam) == "" {
		return Match{}, fmt.Errorf("home team is required")
	}
	if strings.TrimSpace(awayTeam) == "" {
		return Match{}, fmt.Errorf("away team is required")
	}
	if date.IsZero() {
		return Match{}, fmt.Errorf("match date is required")
	}

	return Match{
		Competition: competition,
		Season:      strings.TrimSpace(season),
		Matchday:    matchday,
		Date:        date,
		HomeTeam:    strings.TrimSpace(homeTeam),
		AwayTeam:    strings.TrimSpace(awayTeam),
		Venue:       strings.TrimSpace(venue),
		Status:      status,
	}, nil
}

// Result classifies a finished match. The second return is false for
// any non-finished status.
func (m Match) Result() (string, bool) {
	if m.Status != StatusFinished {
		return "", false
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return ResultHomeWin, true
	case m.HomeScore < m.AwayScore:
		return ResultAwayWin, true
	default:
		return ResultDraw, true
	}
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsValidStatus(value string) bool {
	switch NormalizeStatus(value) {
	case StatusScheduled, StatusLive, StatusFinished, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

func IsValidCompetition(value string) bool {
	switch strings.TrimSpace(value) {
	case CompetitionLigaPro, CompetitionCopaEcuador, CompetitionLibertador, CompetitionSudamerica, CompetitionFriendly:
		return true
	default:
		return false
	}
}

func IsValidEventType(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case EventGoal, EventYellowCard, EventRedCard, EventSubstitution:
		return true
	default:
		return false
	}
}
