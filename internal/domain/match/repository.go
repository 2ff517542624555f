package match

import (
	"context"
	"time"
)

// Filter narrows match listings. Empty fields match everything.
type Filter struct {
	Competition string
	Season      string
	Status      string
}

// Page controls listing pagination. Sort accepts "date" or "-date".
type Page struct {
	Limit int
	Page  int
	Sort  string
}

// Repository exposes match persistence operations.
type Repository interface {
	List(ctx context.Context, filter Filter, page Page) ([]Match, int, error)
	ListFixtures(ctx context.Context, after time.Time, competition string, limit int) ([]Match, error)
	ListResults(ctx context.Context, before time.Time, competition string, limit int) ([]Match, error)
	ListLive(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	FindByTeamsAndDate(ctx context.Context, homeTeam, awayTeam string, date time.Time) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id string) error
}
