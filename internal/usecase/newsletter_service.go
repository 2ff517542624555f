package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
)

type NewsletterService struct {
	subscriptionRepo newsletter.Repository
	idGen            idgen.Generator
	now              func() time.Time
}

func NewNewsletterService(subscriptionRepo newsletter.Repository, idGen idgen.Generator) *NewsletterService {
	return &NewsletterService{
		subscriptionRepo: subscriptionRepo,
		idGen:            idGen,
		now:              time.Now,
	}
}

// Subscribe signs an address up. A previously unsubscribed address is
// reactivated with a fresh confirmation token; an address that is
// already active is a conflict the caller reports back to the user.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (newsletter.Subscription, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsletterService.Subscribe")
	defer span.End()

	normalized, err := newsletter.NormalizeEmail(email)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	now := s.now().UTC()
	existing, exists, err := s.subscriptionRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("get subscription by email: %w", err)
	}
	if exists {
		if existing.IsActive {
			return newsletter.Subscription{}, fmt.Errorf("%w: email %s is already subscribed", ErrConflict, normalized)
		}

		token, err := s.idGen.NewID()
		if err != nil {
			return newsletter.Subscription{}, fmt.Errorf("generate subscription token: %w", err)
		}
		existing.IsActive = true
		existing.ConfirmedAt = time.Time{}
		existing.Token = token
		existing.TokenExpires = now.Add(newsletter.TokenTTL)
		existing.Preferences = newsletter.DefaultPreferences()
		existing.SubscribedAt = now
		existing.UpdatedAt = now

		if err := s.subscriptionRepo.Update(ctx, existing); err != nil {
			return newsletter.Subscription{}, fmt.Errorf("reactivate subscription: %w", err)
		}
		return existing, nil
	}

	token, err := s.idGen.NewID()
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("generate subscription token: %w", err)
	}
	sub, err := newsletter.NewSubscription(normalized, token, now)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	subID, err := s.idGen.NewID()
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("generate subscription id: %w", err)
	}
	sub.ID = subID
	sub.UpdatedAt = now

	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		if isDuplicateConstraintError(err) {
			return newsletter.Subscription{}, fmt.Errorf("%w: email %s is already subscribed", ErrConflict, normalized)
		}
		return newsletter.Subscription{}, fmt.Errorf("create subscription: %w", err)
	}

	return sub, nil
}

// Confirm marks a subscription confirmed when the token matches and is
// inside its validity window.
func (s *NewsletterService) Confirm(ctx context.Context, token string) (newsletter.Subscription, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsletterService.Confirm")
	defer span.End()

	sub, err := s.getByToken(ctx, token)
	if err != nil {
		return newsletter.Subscription{}, err
	}

	now := s.now().UTC()
	if !sub.TokenValid(token, now) {
		return newsletter.Subscription{}, fmt.Errorf("%w: confirmation token is invalid or expired", ErrInvalidInput)
	}

	sub.ConfirmedAt = now
	sub.Token = ""
	sub.TokenExpires = time.Time{}
	sub.UpdatedAt = now

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return newsletter.Subscription{}, fmt.Errorf("confirm subscription: %w", err)
	}

	return sub, nil
}

// Unsubscribe deactivates the subscription for an address. The
// subscription row is kept so the address can resubscribe later.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsletterService.Unsubscribe")
	defer span.End()

	normalized, err := newsletter.NormalizeEmail(email)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	sub, exists, err := s.subscriptionRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return fmt.Errorf("get subscription by email: %w", err)
	}
	if !exists || !sub.IsActive {
		return fmt.Errorf("%w: email %s is not subscribed", ErrNotFound, normalized)
	}

	sub.IsActive = false
	sub.UpdatedAt = s.now().UTC()

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}

	return nil
}

// UpdatePreferences replaces the category selection for an address.
func (s *NewsletterService) UpdatePreferences(ctx context.Context, email string, prefs newsletter.Preferences) (newsletter.Subscription, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsletterService.UpdatePreferences")
	defer span.End()

	normalized, err := newsletter.NormalizeEmail(email)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	sub, exists, err := s.subscriptionRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("get subscription by email: %w", err)
	}
	if !exists || !sub.IsActive {
		return newsletter.Subscription{}, fmt.Errorf("%w: email %s is not subscribed", ErrNotFound, normalized)
	}

	sub.Preferences = prefs
	sub.UpdatedAt = s.now().UTC()

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return newsletter.Subscription{}, fmt.Errorf("update subscription preferences: %w", err)
	}

	return sub, nil
}

// ListSubscribers lists subscriptions for newsletter managers.
func (s *NewsletterService) ListSubscribers(ctx context.Context, activeOnly bool) ([]newsletter.Subscription, error) {
	subs, err := s.subscriptionRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return subs, nil
}

func (s *NewsletterService) getByToken(ctx context.Context, token string) (newsletter.Subscription, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return newsletter.Subscription{}, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	sub, exists, err := s.subscriptionRepo.GetByToken(ctx, token)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("get subscription by token: %w", err)
	}
	if !exists {
		return newsletter.Subscription{}, fmt.Errorf("%w: subscription token not found", ErrNotFound)
	}

	return sub, nil
}
