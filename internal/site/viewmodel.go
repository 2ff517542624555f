package site

import (
	"fmt"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

const (
	resultClassWin  = "result-win"
	resultClassDraw = "result-draw"
	resultClassLoss = "result-loss"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatLongDate renders a date the way news cards show it: "12 de
// febrero de 2025".
func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatNumericDate renders "12/2/2025" for match rows.
func FormatNumericDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatNumericDateTime renders "17/3/2025, 19:00" for fixture cards.
func FormatNumericDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s, %02d:%02d", FormatNumericDate(t), t.Hour(), t.Minute())
}

func parseAPIDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ResultClasses returns the CSS class for each side of a final score.
func ResultClasses(homeScore, awayScore int) (home, away string) {
	switch {
	case homeScore > awayScore:
		return resultClassWin, resultClassLoss
	case homeScore < awayScore:
		return resultClassLoss, resultClassWin
	default:
		return resultClassDraw, resultClassDraw
	}
}

// ActionLink is the call-to-action rendered under a fixture card.
type ActionLink struct {
	URL   string
	Label string
}

// FixtureAction prefers tickets over the stream when both exist.
func FixtureAction(f webclient.Fixture) ActionLink {
	if f.TicketURL != "" {
		return ActionLink{URL: f.TicketURL, Label: "Comprar Entradas →"}
	}
	if f.StreamURL != "" {
		return ActionLink{URL: f.StreamURL, Label: "Ver Transmisión →"}
	}
	return ActionLink{}
}

type NewsCard struct {
	Title   string
	Excerpt string
	Image   string
	Date    string
	URL     string
}

type ResultCard struct {
	Competition string
	Date        string
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	HomeClass   string
	AwayClass   string
}

type FixtureCard struct {
	Competition string
	Matchday    int
	DateTime    string
	Venue       string
	HomeTeam    string
	AwayTeam    string
	Action      ActionLink
}

type SponsorCard struct {
	Name string
	Logo string
	URL  string
}

type NextMatch struct {
	Teams     string
	Countdown Countdown
}

// HomeView is everything the home page template needs. Each section
// carries its own failure flag so one broken fetch never takes the
// whole page down.
type HomeView struct {
	News           []NewsCard
	NewsFailed     bool
	Results        []ResultCard
	Fixtures       []FixtureCard
	MatchesFailed  bool
	Live           *LiveView
	Sponsors       []SponsorCard
	SponsorsFailed bool
	Next           *NextMatch
	Year           int
}

func newsCardFrom(item webclient.NewsItem) NewsCard {
	return NewsCard{
		Title:   item.Title,
		Excerpt: item.Excerpt,
		Image:   item.Image,
		Date:    FormatLongDate(parseAPIDate(item.PublishDate)),
		URL:     "/noticias/" + item.Slug,
	}
}

func resultCardFrom(item webclient.Result) ResultCard {
	homeClass, awayClass := ResultClasses(item.HomeScore, item.AwayScore)
	return ResultCard{
		Competition: item.Competition,
		Date:        FormatNumericDate(parseAPIDate(item.Date)),
		HomeTeam:    item.HomeTeam,
		AwayTeam:    item.AwayTeam,
		HomeScore:   item.HomeScore,
		AwayScore:   item.AwayScore,
		HomeClass:   homeClass,
		AwayClass:   awayClass,
	}
}

func fixtureCardFrom(item webclient.Fixture) FixtureCard {
	return FixtureCard{
		Competition: item.Competition,
		Matchday:    item.Matchday,
		DateTime:    FormatNumericDateTime(parseAPIDate(item.Date)),
		Venue:       item.Venue,
		HomeTeam:    item.HomeTeam,
		AwayTeam:    item.AwayTeam,
		Action:      FixtureAction(item),
	}
}

func sponsorCardFrom(item webclient.Sponsor) SponsorCard {
	return SponsorCard{Name: item.Name, Logo: item.Logo, URL: item.URL}
}

func nextMatchFrom(fixtures []webclient.Fixture, now time.Time) *NextMatch {
	if len(fixtures) == 0 {
		return nil
	}
	first := fixtures[0]
	kickoff := parseAPIDate(first.Date)
	if kickoff.IsZero() {
		return nil
	}
	return &NextMatch{
		Teams:     first.HomeTeam + " vs " + first.AwayTeam,
		Countdown: CountdownUntil(kickoff, now),
	}
}
