package player

import "context"

// Filter narrows player listings. Active is tri-state.
type Filter struct {
	Position string
	Active   *bool
}

// Repository exposes player persistence operations.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	GetBySlug(ctx context.Context, slug string) (Player, bool, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id string) error
}
