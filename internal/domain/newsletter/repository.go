package newsletter

import "context"

// Repository exposes subscription persistence operations.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Subscription, error)
	GetByEmail(ctx context.Context, email string) (Subscription, bool, error)
	GetByToken(ctx context.Context, token string) (Subscription, bool, error)
	Create(ctx context.Context, s Subscription) error
	Update(ctx context.Context, s Subscription) error
}
