package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
)

func TestPlayerService_List_FiltersPositionAndActive(t *testing.T) {
	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), &seqIDGenerator{prefix: "p"})

	active := true
	players, err := service.List(t.Context(), ListPlayersInput{Active: &active})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 active players, got %d", len(players))
	}
	for i := 1; i < len(players); i++ {
		if players[i].Number < players[i-1].Number {
			t.Fatalf("expected shirt number order, got %d before %d", players[i-1].Number, players[i].Number)
		}
	}

	mids, err := service.List(t.Context(), ListPlayersInput{Position: player.PositionMidfielder})
	if err != nil {
		t.Fatalf("list midfielders failed: %v", err)
	}
	if len(mids) != 2 {
		t.Fatalf("expected 2 midfielders, got %d", len(mids))
	}

	if _, err := service.List(t.Context(), ListPlayersInput{Position: "striker"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown position, got %v", err)
	}
}

func TestPlayerService_CreateAndGetBySlug(t *testing.T) {
	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), &seqIDGenerator{prefix: "p"})
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreatePlayerInput{
		Name:        "José Madrid",
		Number:      10,
		Position:    player.PositionMidfielder,
		Nationality: "Ecuador",
		DateOfBirth: time.Date(2000, 4, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if created.Slug != "jos-madrid" {
		t.Fatalf("unexpected derived slug %q", created.Slug)
	}
	if !created.IsActive {
		t.Fatal("new players must default to active")
	}

	got, err := service.Get(t.Context(), "jos-madrid")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected player %s, got %s", created.ID, got.ID)
	}

	_, err = service.Create(t.Context(), CreatePlayerInput{
		Name:     "José Madrid",
		Number:   11,
		Position: player.PositionForward,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate slug, got %v", err)
	}
}

func TestPlayerService_Update_PreservesCreatedAt(t *testing.T) {
	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), &seqIDGenerator{prefix: "p"})
	now := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	inactive := false
	updated, err := service.Update(t.Context(), "p-004", CreatePlayerInput{
		Name:        "Carlos Garcés",
		Number:      9,
		Position:    player.PositionForward,
		Nationality: "Ecuador",
		DateOfBirth: time.Date(1990, 5, 19, 0, 0, 0, 0, time.UTC),
		IsActive:    &inactive,
		Stats:       player.Stats{Appearances: 15, Goals: 9},
	})
	if err != nil {
		t.Fatalf("update player failed: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected player deactivated")
	}
	if updated.Stats.Goals != 9 {
		t.Fatalf("expected stats updated, got %+v", updated.Stats)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at %v, got %v", now, updated.UpdatedAt)
	}

	if _, err := service.Update(t.Context(), "missing", CreatePlayerInput{Name: "X", Number: 2, Position: player.PositionDefender}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
