package match

import (
	"testing"
	"time"
)

func TestResultOnlyForFinishedMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		status    string
		homeScore int
		awayScore int
		want      string
		wantOK    bool
	}{
		{"home win", StatusFinished, 3, 1, ResultHomeWin, true},
		{"away win", StatusFinished, 0, 2, ResultAwayWin, true},
		{"draw", StatusFinished, 1, 1, ResultDraw, true},
		{"goalless draw", StatusFinished, 0, 0, ResultDraw, true},
		{"scheduled has no result", StatusScheduled, 0, 0, "", false},
		{"live has no result", StatusLive, 2, 0, "", false},
		{"postponed has no result", StatusPostponed, 0, 0, "", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := Match{Status: tc.status, HomeScore: tc.homeScore, AwayScore: tc.awayScore}
			got, ok := m.Result()
			if ok != tc.wantOK {
				t.Fatalf("Result() ok=%t want %t", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("Result()=%q want %q", got, tc.want)
			}
		})
	}
}

func TestNewDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	m, err := New(CompetitionLigaPro, "2026", 7, date, "CD Quito", "Barcelona SC", "Atahualpa", "")
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	if m.Status != StatusScheduled {
		t.Fatalf("default status=%q want %q", m.Status, StatusScheduled)
	}
	if m.HomeScore != 0 || m.AwayScore != 0 {
		t.Fatalf("scores must default to zero")
	}

	if _, err := New("Premier League", "2026", 1, date, "A", "B", "", ""); err == nil {
		t.Fatal("expected invalid competition error")
	}
	if _, err := New(CompetitionLigaPro, "2026", 1, date, "", "B", "", ""); err == nil {
		t.Fatal("expected missing home team error")
	}
	if _, err := New(CompetitionLigaPro, "2026", 1, date, "A", "B", "", "HALFTIME"); err == nil {
		t.Fatal("expected invalid status error")
	}
}
