package player

import (
	"testing"
	"time"
)

func TestAgeIsMonthAndDayAware(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed this year", time.Date(2000, 1, 10, 0, 0, 0, 0, time.UTC), 26},
		{"birthday later this year", time.Date(2000, 11, 2, 0, 0, 0, 0, time.UTC), 25},
		{"birthday today", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), 26},
		{"zero date of birth", time.Time{}, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := Player{DateOfBirth: tc.dob}
			if got := p.Age(now); got != tc.want {
				t.Fatalf("Age()=%d want %d", got, tc.want)
			}
		})
	}
}

func TestNewDerivesSlugAndValidates(t *testing.T) {
	t.Parallel()

	p, err := New("Luis Fernando Saritama", "", PositionMidfielder, "Ecuador", 8, time.Date(1983, 10, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if p.Slug != "luis-fernando-saritama" {
		t.Fatalf("slug=%q", p.Slug)
	}
	if !p.IsActive {
		t.Fatal("new players default to active")
	}

	if _, err := New("X", "", "Striker", "", 9, time.Time{}); err == nil {
		t.Fatal("expected invalid position error")
	}
	if _, err := New("X", "", PositionForward, "", 0, time.Time{}); err == nil {
		t.Fatal("expected invalid number error")
	}
}
