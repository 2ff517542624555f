package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
)

const (
	maintenanceStatusDeleted = "deleted"
	maintenanceStatusFailed  = "failed"
	maintenanceStatusSkipped = "skipped"
)

// UploadStore is the storage surface maintenance sweeps over.
type UploadStore interface {
	ImageStore
	ListFiles(ctx context.Context) ([]string, error)
}

type MaintenanceInput struct {
	MaxWorkers int
	// DryRun reports what would be removed without touching storage.
	DryRun bool
}

type MaintenanceResult struct {
	FilesScanned        int                     `json:"files_scanned"`
	OrphansFound        int                     `json:"orphans_found"`
	OrphansDeleted      int                     `json:"orphans_deleted"`
	OrphansFailed       int                     `json:"orphans_failed"`
	SponsorsDeactivated int                     `json:"sponsors_deactivated"`
	WorkerCount         int                     `json:"worker_count"`
	DryRun              bool                    `json:"dry_run"`
	Files               []MaintenanceFileResult `json:"files"`
}

type MaintenanceFileResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// MaintenanceService removes uploaded images no article references
// anymore and retires sponsors whose display window has closed.
type MaintenanceService struct {
	newsRepo news.Repository
	sponsors *SponsorService
	uploads  UploadStore
	logger   *logging.Logger
	now      func() time.Time
}

func NewMaintenanceService(newsRepo news.Repository, sponsors *SponsorService, uploads UploadStore, logger *logging.Logger) *MaintenanceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MaintenanceService{
		newsRepo: newsRepo,
		sponsors: sponsors,
		uploads:  uploads,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *MaintenanceService) Run(ctx context.Context, input MaintenanceInput) (MaintenanceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.Run")
	defer span.End()

	result := MaintenanceResult{DryRun: input.DryRun}

	if s.sponsors != nil && !input.DryRun {
		count, err := s.sponsors.DeactivateExpired(ctx)
		if err != nil {
			return MaintenanceResult{}, err
		}
		result.SponsorsDeactivated = count
	}

	if s.uploads == nil || s.newsRepo == nil {
		return result, nil
	}

	orphans, scanned, err := s.findOrphanUploads(ctx)
	if err != nil {
		return MaintenanceResult{}, err
	}
	result.FilesScanned = scanned
	result.OrphansFound = len(orphans)
	if len(orphans) == 0 {
		return result, nil
	}

	workerCount := normalizeMaintenanceWorkerCount(input.MaxWorkers, len(orphans))
	result.WorkerCount = workerCount

	rows := make(chan MaintenanceFileResult, len(orphans))

	var deletedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return MaintenanceResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, path := range orphans {
		path := path
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := MaintenanceFileResult{Path: path}
			switch {
			case input.DryRun:
				row.Status = maintenanceStatusSkipped
				row.Message = "dry run"
			default:
				if err := s.uploads.Delete(ctx, path); err != nil {
					row.Status = maintenanceStatusFailed
					row.Message = err.Error()
					failedCount.Add(1)
					s.logger.WarnContext(ctx, "delete orphan upload failed", "path", path, "error", err)
				} else {
					row.Status = maintenanceStatusDeleted
					deletedCount.Add(1)
				}
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return MaintenanceResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Files = append(result.Files, row)
	}
	sort.SliceStable(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.OrphansDeleted = int(deletedCount.Load())
	result.OrphansFailed = int(failedCount.Load())
	return result, nil
}

func (s *MaintenanceService) findOrphanUploads(ctx context.Context) ([]string, int, error) {
	files, err := s.uploads.ListFiles(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list uploaded files: %w", err)
	}

	referenced, err := s.newsRepo.ListImagePaths(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list referenced image paths: %w", err)
	}

	inUse := make(map[string]struct{}, len(referenced))
	for _, path := range referenced {
		inUse[path] = struct{}{}
	}

	orphans := make([]string, 0)
	for _, path := range files {
		if _, ok := inUse[path]; ok {
			continue
		}
		orphans = append(orphans, path)
	}

	return orphans, len(files), nil
}

func normalizeMaintenanceWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
