package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
	"github.com/dajarony/club-deportivo-quito/internal/platform/cache"
)

func TestSponsorService_ListActive_FiltersWindowAndOrders(t *testing.T) {
	service := NewSponsorService(memory.NewSponsorRepository(memory.SeedSponsors()), cache.NewStore(time.Minute), &seqIDGenerator{prefix: "sp"})
	service.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	active, err := service.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active sponsors failed: %v", err)
	}
	if len(active) != 4 {
		t.Fatalf("expected 4 sponsors in window, got %d", len(active))
	}
	for i := 1; i < len(active); i++ {
		if active[i].DisplayOrder < active[i-1].DisplayOrder {
			t.Fatalf("expected display order ascending, got %d before %d", active[i-1].DisplayOrder, active[i].DisplayOrder)
		}
	}
	for _, s := range active {
		if s.ID == "sp-005" {
			t.Fatal("sponsor outside window must not be listed")
		}
	}
}

func TestSponsorService_WriteInvalidatesCache(t *testing.T) {
	store := cache.NewStore(time.Hour)
	service := NewSponsorService(memory.NewSponsorRepository(memory.SeedSponsors()), store, &seqIDGenerator{prefix: "sp"})
	service.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	before, err := service.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active sponsors failed: %v", err)
	}

	isActive := true
	if _, err := service.Create(t.Context(), CreateSponsorInput{
		Name:         "Nueva Marca",
		Logo:         "/img/sponsors/nueva.png",
		Level:        sponsor.LevelOfficial,
		DisplayOrder: 5,
		IsActive:     &isActive,
	}); err != nil {
		t.Fatalf("create sponsor failed: %v", err)
	}

	after, err := service.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active sponsors after create failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d sponsors after create, got %d", len(before)+1, len(after))
	}
}

func TestSponsorService_CreateValidation(t *testing.T) {
	service := NewSponsorService(memory.NewSponsorRepository(nil), nil, &seqIDGenerator{prefix: "sp"})

	if _, err := service.Create(t.Context(), CreateSponsorInput{Name: "Sin Logo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing logo, got %v", err)
	}
	if _, err := service.Create(t.Context(), CreateSponsorInput{
		Name:  "Nivel Raro",
		Logo:  "/img/x.png",
		Level: "platinum",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown level, got %v", err)
	}

	created, err := service.Create(t.Context(), CreateSponsorInput{Name: "Defaults", Logo: "/img/d.png"})
	if err != nil {
		t.Fatalf("create sponsor failed: %v", err)
	}
	if created.Level != sponsor.LevelOther {
		t.Fatalf("expected default level other, got %s", created.Level)
	}
	if created.DisplayOrder != sponsor.DefaultDisplayOrder {
		t.Fatalf("expected default display order, got %d", created.DisplayOrder)
	}
}

func TestSponsorService_DeactivateExpired(t *testing.T) {
	service := NewSponsorService(memory.NewSponsorRepository(memory.SeedSponsors()), cache.NewStore(time.Hour), &seqIDGenerator{prefix: "sp"})
	service.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	count, err := service.DeactivateExpired(t.Context())
	if err != nil {
		t.Fatalf("deactivate expired failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 sponsor deactivated, got %d", count)
	}

	again, err := service.DeactivateExpired(t.Context())
	if err != nil {
		t.Fatalf("second deactivate failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected idempotent second run, got %d", again)
	}
}
