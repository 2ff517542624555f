package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
)

type NewsletterRepository struct {
	mu            sync.RWMutex
	subscriptions map[string]newsletter.Subscription
}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{subscriptions: make(map[string]newsletter.Subscription)}
}

func (r *NewsletterRepository) List(_ context.Context, activeOnly bool) ([]newsletter.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]newsletter.Subscription, 0, len(r.subscriptions))
	for _, s := range r.subscriptions {
		if activeOnly && !s.IsActive {
			continue
		}
		items = append(items, s)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Email < items[j].Email
	})
	return items, nil
}

func (r *NewsletterRepository) GetByEmail(_ context.Context, email string) (newsletter.Subscription, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subscriptions {
		if s.Email == email {
			return s, true, nil
		}
	}
	return newsletter.Subscription{}, false, nil
}

func (r *NewsletterRepository) GetByToken(_ context.Context, token string) (newsletter.Subscription, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if token == "" {
		return newsletter.Subscription{}, false, nil
	}
	for _, s := range r.subscriptions {
		if s.Token == token {
			return s, true, nil
		}
	}
	return newsletter.Subscription{}, false, nil
}

func (r *NewsletterRepository) Create(_ context.Context, s newsletter.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.subscriptions {
		if existing.Email == s.Email {
			return fmt.Errorf("duplicate key value violates unique constraint \"newsletter_subscriptions_email_key\"")
		}
	}
	r.subscriptions[s.ID] = s
	return nil
}

func (r *NewsletterRepository) Update(_ context.Context, s newsletter.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscriptions[s.ID]; !ok {
		return fmt.Errorf("subscription %s not found", s.ID)
	}
	r.subscriptions[s.ID] = s
	return nil
}
