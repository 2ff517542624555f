package sponsor

import (
	"context"
	"time"
)

// Repository exposes sponsor persistence operations.
type Repository interface {
	ListActive(ctx context.Context, now time.Time) ([]Sponsor, error)
	List(ctx context.Context) ([]Sponsor, error)
	GetByID(ctx context.Context, id string) (Sponsor, bool, error)
	Create(ctx context.Context, s Sponsor) error
	Update(ctx context.Context, s Sponsor) error
	Delete(ctx context.Context, id string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int, error)
}
