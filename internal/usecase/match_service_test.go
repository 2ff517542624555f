package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
)

type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

func TestMatchService_List_DefaultsAndPaging(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), &seqIDGenerator{prefix: "m"})

	page, err := service.List(t.Context(), ListMatchesInput{})
	if err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
	if page.CurrentPage != 1 {
		t.Fatalf("expected current page 1, got %d", page.CurrentPage)
	}
	if page.TotalMatches != 7 {
		t.Fatalf("expected 7 matches, got %d", page.TotalMatches)
	}
	if page.TotalPages != 1 {
		t.Fatalf("expected 1 page, got %d", page.TotalPages)
	}
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i].Date.After(page.Items[i-1].Date) {
			t.Fatalf("expected descending date order, got %v after %v", page.Items[i].Date, page.Items[i-1].Date)
		}
	}

	second, err := service.List(t.Context(), ListMatchesInput{Limit: 3, Page: 2, Sort: "date"})
	if err != nil {
		t.Fatalf("list matches page 2 failed: %v", err)
	}
	if second.TotalPages != 3 {
		t.Fatalf("expected 3 pages of 3, got %d", second.TotalPages)
	}
	if len(second.Items) != 3 {
		t.Fatalf("expected 3 items on page 2, got %d", len(second.Items))
	}

	if _, err := service.List(t.Context(), ListMatchesInput{Status: "halftime"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}
}

func TestMatchService_FixturesAndResults(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), &seqIDGenerator{prefix: "m"})
	service.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	fixtures, err := service.Fixtures(t.Context(), "", 0)
	if err != nil {
		t.Fatalf("fixtures failed: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].ID != "m-005" {
		t.Fatalf("expected nearest fixture first, got %s", fixtures[0].ID)
	}

	ligaProOnly, err := service.Fixtures(t.Context(), match.CompetitionLigaPro, 0)
	if err != nil {
		t.Fatalf("fixtures by competition failed: %v", err)
	}
	if len(ligaProOnly) != 1 || ligaProOnly[0].ID != "m-005" {
		t.Fatalf("expected only m-005 for Liga Pro, got %+v", ligaProOnly)
	}

	results, err := service.Results(t.Context(), "", 2)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "m-003" {
		t.Fatalf("expected most recent result first, got %s", results[0].ID)
	}

	live, err := service.Live(t.Context())
	if err != nil {
		t.Fatalf("live failed: %v", err)
	}
	if len(live) != 1 || live[0].ID != "m-004" {
		t.Fatalf("expected one live match m-004, got %+v", live)
	}
}

func TestMatchService_Create_RejectsDuplicateKickoff(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), &seqIDGenerator{prefix: "m"})

	_, err := service.Create(t.Context(), CreateMatchInput{
		Competition: match.CompetitionLigaPro,
		Season:      "2026",
		Matchday:    15,
		Date:        time.Date(2026, 6, 21, 17, 0, 0, 0, time.UTC),
		HomeTeam:    "Aucas",
		AwayTeam:    memory.ClubName,
		Venue:       "Estadio Gonzalo Pozo Ripalda",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate match, got %v", err)
	}
}

func TestMatchService_Create_AppliesDefaults(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(nil), &seqIDGenerator{prefix: "m"})
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreateMatchInput{
		Competition: match.CompetitionFriendly,
		Season:      "2026",
		Date:        time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC),
		HomeTeam:    memory.ClubName,
		AwayTeam:    "El Nacional",
	})
	if err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	if created.Status != match.StatusScheduled {
		t.Fatalf("expected default status SCHEDULED, got %s", created.Status)
	}
	if created.ID != "m-001" {
		t.Fatalf("expected generated id m-001, got %s", created.ID)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", now, created.CreatedAt, created.UpdatedAt)
	}
}

func TestMatchService_UpdateResult_PartialPatch(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), &seqIDGenerator{prefix: "m"})
	now := time.Date(2026, 6, 14, 22, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	homeScore := 2
	minute := 78
	updated, err := service.UpdateResult(t.Context(), "m-004", UpdateMatchResultInput{
		HomeScore: &homeScore,
		Minute:    &minute,
	})
	if err != nil {
		t.Fatalf("update result failed: %v", err)
	}
	if updated.HomeScore != 2 || updated.Minute != 78 {
		t.Fatalf("expected patched score/minute, got %d/%d", updated.HomeScore, updated.Minute)
	}
	if updated.Status != match.StatusLive {
		t.Fatalf("expected untouched status LIVE, got %s", updated.Status)
	}
	if updated.AwayScore != 0 {
		t.Fatalf("expected untouched away score, got %d", updated.AwayScore)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at %v, got %v", now, updated.UpdatedAt)
	}

	bad := -1
	if _, err := service.UpdateResult(t.Context(), "m-004", UpdateMatchResultInput{AwayScore: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative score, got %v", err)
	}
}

func TestMatchService_Delete(t *testing.T) {
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), &seqIDGenerator{prefix: "m"})

	if err := service.Delete(t.Context(), "m-001"); err != nil {
		t.Fatalf("delete match failed: %v", err)
	}
	if _, err := service.Get(t.Context(), "m-001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := service.Delete(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}
