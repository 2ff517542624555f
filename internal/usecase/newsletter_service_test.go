package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	service := NewNewsletterService(memory.NewNewsletterRepository(), &seqIDGenerator{prefix: "ns"})
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if _, err := service.Subscribe(t.Context(), "not an email"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}

	sub, err := service.Subscribe(t.Context(), "  Hincha@ClubQuito.EC ")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if sub.Email != "hincha@clubquito.ec" {
		t.Fatalf("expected normalized email, got %q", sub.Email)
	}
	if !sub.IsActive || sub.Token == "" {
		t.Fatalf("expected active subscription with token, got %+v", sub)
	}
	if !sub.TokenExpires.Equal(now.Add(newsletter.TokenTTL)) {
		t.Fatalf("unexpected token expiry %v", sub.TokenExpires)
	}

	if _, err := service.Subscribe(t.Context(), "hincha@clubquito.ec"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for active duplicate, got %v", err)
	}
}

func TestNewsletterService_UnsubscribeAndResubscribe(t *testing.T) {
	service := NewNewsletterService(memory.NewNewsletterRepository(), &seqIDGenerator{prefix: "ns"})
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	first, err := service.Subscribe(t.Context(), "socio@example.com")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if err := service.Unsubscribe(t.Context(), "socio@example.com"); err != nil {
		t.Fatalf("unsubscribe failed: %v", err)
	}
	if err := service.Unsubscribe(t.Context(), "socio@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeat unsubscribe, got %v", err)
	}

	later := now.Add(72 * time.Hour)
	service.now = func() time.Time { return later }

	second, err := service.Subscribe(t.Context(), "socio@example.com")
	if err != nil {
		t.Fatalf("resubscribe failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected reactivated subscription to keep id %s, got %s", first.ID, second.ID)
	}
	if second.Token == first.Token {
		t.Fatal("expected a fresh confirmation token on resubscribe")
	}
	if !second.SubscribedAt.Equal(later) {
		t.Fatalf("expected subscribed_at %v, got %v", later, second.SubscribedAt)
	}
}

func TestNewsletterService_Confirm(t *testing.T) {
	service := NewNewsletterService(memory.NewNewsletterRepository(), &seqIDGenerator{prefix: "ns"})
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	sub, err := service.Subscribe(t.Context(), "socio@example.com")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	confirmed, err := service.Confirm(t.Context(), sub.Token)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.ConfirmedAt.IsZero() || confirmed.Token != "" {
		t.Fatalf("expected confirmed subscription with cleared token, got %+v", confirmed)
	}

	if _, err := service.Confirm(t.Context(), sub.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for consumed token, got %v", err)
	}

	expired, err := service.Subscribe(t.Context(), "tardio@example.com")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	service.now = func() time.Time { return now.Add(newsletter.TokenTTL + time.Hour) }
	if _, err := service.Confirm(t.Context(), expired.Token); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for expired token, got %v", err)
	}
}

func TestNewsletterService_UpdatePreferences(t *testing.T) {
	service := NewNewsletterService(memory.NewNewsletterRepository(), &seqIDGenerator{prefix: "ns"})

	if _, err := service.Subscribe(t.Context(), "socio@example.com"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	updated, err := service.UpdatePreferences(t.Context(), "socio@example.com", newsletter.Preferences{News: true, Matches: true})
	if err != nil {
		t.Fatalf("update preferences failed: %v", err)
	}
	if updated.Preferences.Events || updated.Preferences.Promotions {
		t.Fatalf("expected events and promotions off, got %+v", updated.Preferences)
	}

	if _, err := service.UpdatePreferences(t.Context(), "nadie@example.com", newsletter.Preferences{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}
