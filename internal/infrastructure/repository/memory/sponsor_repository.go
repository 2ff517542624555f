package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
)

type SponsorRepository struct {
	mu       sync.RWMutex
	sponsors map[string]sponsor.Sponsor
}

func NewSponsorRepository(sponsors []sponsor.Sponsor) *SponsorRepository {
	index := make(map[string]sponsor.Sponsor, len(sponsors))
	for _, s := range sponsors {
		index[s.ID] = s
	}
	return &SponsorRepository{sponsors: index}
}

func (r *SponsorRepository) ListActive(_ context.Context, now time.Time) ([]sponsor.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]sponsor.Sponsor, 0, len(r.sponsors))
	for _, s := range r.sponsors {
		if s.IsActive && s.InWindow(now) {
			items = append(items, s)
		}
	}
	sortSponsorsByOrder(items)
	return items, nil
}

func (r *SponsorRepository) List(_ context.Context) ([]sponsor.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]sponsor.Sponsor, 0, len(r.sponsors))
	for _, s := range r.sponsors {
		items = append(items, s)
	}
	sortSponsorsByOrder(items)
	return items, nil
}

func (r *SponsorRepository) GetByID(_ context.Context, id string) (sponsor.Sponsor, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sponsors[id]
	return s, ok, nil
}

func (r *SponsorRepository) Create(_ context.Context, s sponsor.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sponsors[s.ID] = s
	return nil
}

func (r *SponsorRepository) Update(_ context.Context, s sponsor.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sponsors[s.ID]; !ok {
		return fmt.Errorf("sponsor %s not found", s.ID)
	}
	r.sponsors[s.ID] = s
	return nil
}

func (r *SponsorRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sponsors[id]; !ok {
		return fmt.Errorf("sponsor %s not found", id)
	}
	delete(r.sponsors, id)
	return nil
}

func (r *SponsorRepository) DeactivateExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id, s := range r.sponsors {
		if !s.IsActive || s.EndDate.IsZero() || !now.After(s.EndDate) {
			continue
		}
		s.IsActive = false
		s.UpdatedAt = now
		r.sponsors[id] = s
		count++
	}
	return count, nil
}

func sortSponsorsByOrder(items []sponsor.Sponsor) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].Name < items[j].Name
	})
}
