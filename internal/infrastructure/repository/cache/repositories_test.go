package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	basecache "github.com/dajarony/club-deportivo-quito/internal/platform/cache"
)

type countingPlayerRepo struct {
	listCalls   int
	getByIDCall int
	players     []player.Player
}

func (r *countingPlayerRepo) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	r.listCalls++
	return r.players, nil
}

func (r *countingPlayerRepo) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	r.getByIDCall++
	for _, p := range r.players {
		if p.ID == id {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *countingPlayerRepo) GetBySlug(ctx context.Context, slug string) (player.Player, bool, error) {
	for _, p := range r.players {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *countingPlayerRepo) Create(ctx context.Context, p player.Player) error {
	r.players = append(r.players, p)
	return nil
}

func (r *countingPlayerRepo) Update(ctx context.Context, p player.Player) error {
	for i := range r.players {
		if r.players[i].ID == p.ID {
			r.players[i] = p
		}
	}
	return nil
}

func (r *countingPlayerRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestPlayerRepository_ListServedFromCache(t *testing.T) {
	t.Parallel()

	next := &countingPlayerRepo{players: []player.Player{{ID: "p1", Name: "Luis Saritama", Slug: "luis-saritama"}}}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.List(context.Background(), player.Filter{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("got %d players, want 1", len(items))
		}
	}

	if next.listCalls != 1 {
		t.Fatalf("underlying List called %d times, want 1", next.listCalls)
	}
}

func TestPlayerRepository_FilterVariantsUseDistinctKeys(t *testing.T) {
	t.Parallel()

	active := true
	next := &countingPlayerRepo{}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.List(context.Background(), player.Filter{}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := repo.List(context.Background(), player.Filter{Active: &active}); err != nil {
		t.Fatalf("List with filter error: %v", err)
	}

	if next.listCalls != 2 {
		t.Fatalf("underlying List called %d times, want 2", next.listCalls)
	}
}

func TestPlayerRepository_UpdateInvalidatesCache(t *testing.T) {
	t.Parallel()

	next := &countingPlayerRepo{players: []player.Player{{ID: "p1", Name: "Luis Saritama"}}}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	if _, _, err := repo.GetByID(context.Background(), "p1"); err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if err := repo.Update(context.Background(), player.Player{ID: "p1", Name: "Capitán"}); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, exists, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID after update error: %v", err)
	}
	if !exists || got.Name != "Capitán" {
		t.Fatalf("got %q exists=%v, want updated player", got.Name, exists)
	}
	if next.getByIDCall != 2 {
		t.Fatalf("underlying GetByID called %d times, want 2", next.getByIDCall)
	}
}
