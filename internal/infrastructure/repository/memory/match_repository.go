package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	index := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		index[m.ID] = m
	}
	return &MatchRepository{matches: index}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter, page match.Page) ([]match.Match, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if !matchesFilter(m, filter) {
			continue
		}
		items = append(items, m)
	}

	sortMatchesByDate(items, page.Sort == "date")

	total := len(items)
	start := (page.Page - 1) * page.Limit
	if start >= total {
		return []match.Match{}, total, nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return items[start:end], total, nil
}

func (r *MatchRepository) ListFixtures(_ context.Context, after time.Time, competition string, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.Status != match.StatusScheduled || m.Date.Before(after) {
			continue
		}
		if competition != "" && m.Competition != competition {
			continue
		}
		items = append(items, m)
	}

	sortMatchesByDate(items, true)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *MatchRepository) ListResults(_ context.Context, before time.Time, competition string, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.Status != match.StatusFinished || !m.Date.Before(before) {
			continue
		}
		if competition != "" && m.Competition != competition {
			continue
		}
		items = append(items, m)
	}

	sortMatchesByDate(items, false)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *MatchRepository) ListLive(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.Status == match.StatusLive {
			items = append(items, m)
		}
	}

	sortMatchesByDate(items, true)
	return items, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	return m, ok, nil
}

func (r *MatchRepository) FindByTeamsAndDate(_ context.Context, homeTeam, awayTeam string, date time.Time) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.HomeTeam == homeTeam && m.AwayTeam == awayTeam && m.Date.Equal(date) {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.matches {
		if existing.HomeTeam == m.HomeTeam && existing.AwayTeam == m.AwayTeam && existing.Date.Equal(m.Date) {
			return fmt.Errorf("duplicate key value violates unique constraint \"matches_home_away_date_key\"")
		}
	}
	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[m.ID]; !ok {
		return fmt.Errorf("match %s not found", m.ID)
	}
	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[id]; !ok {
		return fmt.Errorf("match %s not found", id)
	}
	delete(r.matches, id)
	return nil
}

func matchesFilter(m match.Match, filter match.Filter) bool {
	if filter.Competition != "" && m.Competition != filter.Competition {
		return false
	}
	if filter.Season != "" && m.Season != filter.Season {
		return false
	}
	if filter.Status != "" && m.Status != filter.Status {
		return false
	}
	return true
}

func sortMatchesByDate(items []match.Match, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].Date.Before(items[j].Date)
		}
		return items[j].Date.Before(items[i].Date)
	})
}
