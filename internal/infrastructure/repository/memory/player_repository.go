package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return &PlayerRepository{players: index}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.Position != "" && p.Position != filter.Position {
			continue
		}
		if filter.Active != nil && p.IsActive != *filter.Active {
			continue
		}
		items = append(items, p)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Number < items[j].Number
	})
	return items, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	return p, ok, nil
}

func (r *PlayerRepository) GetBySlug(_ context.Context, slug string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.players {
		if existing.Slug == p.Slug {
			return fmt.Errorf("duplicate key value violates unique constraint \"players_slug_key\"")
		}
	}
	r.players[p.ID] = p
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; !ok {
		return fmt.Errorf("player %s not found", p.ID)
	}
	r.players[p.ID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return fmt.Errorf("player %s not found", id)
	}
	delete(r.players, id)
	return nil
}
