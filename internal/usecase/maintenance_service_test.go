package usecase

import (
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
	"github.com/dajarony/club-deportivo-quito/internal/platform/cache"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
)

func TestMaintenanceService_Run_SweepsOrphans(t *testing.T) {
	newsRepo := memory.NewNewsRepository(memory.SeedNews())
	uploads := &fakeImageStore{files: []string{
		"/uploads/news/1746900000000-a1b2c3.jpg",
		"/uploads/news/1746900000001-dead01.jpg",
		"/uploads/news/1746900000002-dead02.jpg",
	}}
	sponsors := NewSponsorService(memory.NewSponsorRepository(memory.SeedSponsors()), cache.NewStore(time.Hour), &seqIDGenerator{prefix: "sp"})
	sponsors.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	service := NewMaintenanceService(newsRepo, sponsors, uploads, logging.NewNop())

	result, err := service.Run(t.Context(), MaintenanceInput{MaxWorkers: 2})
	if err != nil {
		t.Fatalf("maintenance run failed: %v", err)
	}
	if result.FilesScanned != 3 {
		t.Fatalf("expected 3 files scanned, got %d", result.FilesScanned)
	}
	if result.OrphansFound != 2 || result.OrphansDeleted != 2 || result.OrphansFailed != 0 {
		t.Fatalf("unexpected orphan counts: %+v", result)
	}
	if result.SponsorsDeactivated != 1 {
		t.Fatalf("expected 1 sponsor deactivated, got %d", result.SponsorsDeactivated)
	}
	if len(uploads.deleted) != 2 {
		t.Fatalf("expected 2 files deleted, got %v", uploads.deleted)
	}
	for _, path := range uploads.deleted {
		if path == "/uploads/news/1746900000000-a1b2c3.jpg" {
			t.Fatal("referenced image must not be deleted")
		}
	}
	if len(result.Files) != 2 || result.Files[0].Path > result.Files[1].Path {
		t.Fatalf("expected sorted per-file rows, got %+v", result.Files)
	}
}

func TestMaintenanceService_Run_DryRun(t *testing.T) {
	newsRepo := memory.NewNewsRepository(memory.SeedNews())
	uploads := &fakeImageStore{files: []string{"/uploads/news/1746900000001-dead01.jpg"}}

	service := NewMaintenanceService(newsRepo, nil, uploads, logging.NewNop())

	result, err := service.Run(t.Context(), MaintenanceInput{DryRun: true})
	if err != nil {
		t.Fatalf("maintenance dry run failed: %v", err)
	}
	if result.OrphansFound != 1 || result.OrphansDeleted != 0 {
		t.Fatalf("expected dry run to delete nothing, got %+v", result)
	}
	if len(uploads.deleted) != 0 {
		t.Fatalf("dry run must not touch storage, got %v", uploads.deleted)
	}
	if len(result.Files) != 1 || result.Files[0].Status != maintenanceStatusSkipped {
		t.Fatalf("expected skipped row, got %+v", result.Files)
	}
}
