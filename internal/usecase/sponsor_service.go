package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
	"github.com/dajarony/club-deportivo-quito/internal/platform/cache"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
)

const sponsorCachePrefix = "sponsors:"

type CreateSponsorInput struct {
	Name         string
	Logo         string
	URL          string
	Level        string
	Description  string
	DisplayOrder int
	StartDate    time.Time
	EndDate      time.Time
	IsActive     *bool
}

type SponsorService struct {
	sponsorRepo sponsor.Repository
	store       *cache.Store
	idGen       idgen.Generator
	now         func() time.Time
}

func NewSponsorService(sponsorRepo sponsor.Repository, store *cache.Store, idGen idgen.Generator) *SponsorService {
	return &SponsorService{
		sponsorRepo: sponsorRepo,
		store:       store,
		idGen:       idGen,
		now:         time.Now,
	}
}

// ListActive lists sponsors currently inside their display window,
// ordered for rendering. Results are cached until the next write.
func (s *SponsorService) ListActive(ctx context.Context) ([]sponsor.Sponsor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.ListActive")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		items, err := s.sponsorRepo.ListActive(ctx, s.now().UTC())
		if err != nil {
			return nil, fmt.Errorf("list active sponsors: %w", err)
		}
		sortSponsors(items)
		return items, nil
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]sponsor.Sponsor), nil
	}

	value, err := s.store.GetOrLoad(ctx, sponsorCachePrefix+"active", load)
	if err != nil {
		return nil, err
	}

	items, ok := value.([]sponsor.Sponsor)
	if !ok {
		return nil, fmt.Errorf("unexpected cached sponsor list type %T", value)
	}
	return items, nil
}

func (s *SponsorService) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	items, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	sortSponsors(items)
	return items, nil
}

func (s *SponsorService) Get(ctx context.Context, sponsorID string) (sponsor.Sponsor, error) {
	sponsorID = strings.TrimSpace(sponsorID)
	if sponsorID == "" {
		return sponsor.Sponsor{}, fmt.Errorf("%w: sponsor id is required", ErrInvalidInput)
	}

	sp, exists, err := s.sponsorRepo.GetByID(ctx, sponsorID)
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("get sponsor: %w", err)
	}
	if !exists {
		return sponsor.Sponsor{}, fmt.Errorf("%w: sponsor=%s", ErrNotFound, sponsorID)
	}

	return sp, nil
}

func (s *SponsorService) Create(ctx context.Context, input CreateSponsorInput) (sponsor.Sponsor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.Create")
	defer span.End()

	sp, err := sponsor.New(input.Name, input.Logo, input.URL, input.Level, input.DisplayOrder, input.StartDate, input.EndDate)
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	sponsorID, err := s.idGen.NewID()
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("generate sponsor id: %w", err)
	}

	now := s.now().UTC()
	sp.ID = sponsorID
	sp.Description = strings.TrimSpace(input.Description)
	if input.IsActive != nil {
		sp.IsActive = *input.IsActive
	}
	sp.CreatedAt = now
	sp.UpdatedAt = now

	if err := s.sponsorRepo.Create(ctx, sp); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("create sponsor: %w", err)
	}
	s.invalidate(ctx)

	return sp, nil
}

func (s *SponsorService) Update(ctx context.Context, sponsorID string, input CreateSponsorInput) (sponsor.Sponsor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.Update")
	defer span.End()

	current, err := s.Get(ctx, sponsorID)
	if err != nil {
		return sponsor.Sponsor{}, err
	}

	next, err := sponsor.New(input.Name, input.Logo, input.URL, input.Level, input.DisplayOrder, input.StartDate, input.EndDate)
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	next.ID = current.ID
	next.Description = strings.TrimSpace(input.Description)
	next.IsActive = current.IsActive
	if input.IsActive != nil {
		next.IsActive = *input.IsActive
	}
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now().UTC()

	if err := s.sponsorRepo.Update(ctx, next); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("update sponsor: %w", err)
	}
	s.invalidate(ctx)

	return next, nil
}

func (s *SponsorService) Delete(ctx context.Context, sponsorID string) error {
	if _, err := s.Get(ctx, sponsorID); err != nil {
		return err
	}

	if err := s.sponsorRepo.Delete(ctx, strings.TrimSpace(sponsorID)); err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	s.invalidate(ctx)

	return nil
}

// DeactivateExpired flags sponsors whose display window has closed.
// Returns how many rows changed.
func (s *SponsorService) DeactivateExpired(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.DeactivateExpired")
	defer span.End()

	count, err := s.sponsorRepo.DeactivateExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("deactivate expired sponsors: %w", err)
	}
	if count > 0 {
		s.invalidate(ctx)
	}

	return count, nil
}

func (s *SponsorService) invalidate(ctx context.Context) {
	if s.store != nil {
		s.store.DeletePrefix(ctx, sponsorCachePrefix)
	}
}

func sortSponsors(items []sponsor.Sponsor) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].Name < items[j].Name
	})
}
