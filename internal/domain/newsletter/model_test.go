package newsletter

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	got, err := NormalizeEmail("  Hincha@ClubQuito.EC ")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "hincha@clubquito.ec" {
		t.Fatalf("got %q", got)
	}

	for _, bad := range []string{"", "not-an-email", "a@b", "a b@c.d", "@c.d"} {
		if _, err := NormalizeEmail(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNewSubscriptionDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s, err := NewSubscription("Fan@Example.com", "tok-123", now)
	if err != nil {
		t.Fatalf("new subscription: %v", err)
	}
	if s.Email != "fan@example.com" {
		t.Fatalf("email=%q", s.Email)
	}
	if !s.IsActive {
		t.Fatal("subscription must default to active")
	}
	if !s.Preferences.News || !s.Preferences.Matches || !s.Preferences.Events || !s.Preferences.Promotions {
		t.Fatalf("preferences must default to on: %+v", s.Preferences)
	}
	if !s.TokenExpires.Equal(now.Add(TokenTTL)) {
		t.Fatalf("token expiry=%v", s.TokenExpires)
	}
}

func TestTokenValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := Subscription{Token: "tok", TokenExpires: now.Add(time.Hour)}

	if !s.TokenValid("tok", now) {
		t.Fatal("expected valid token")
	}
	if s.TokenValid("other", now) {
		t.Fatal("mismatched token must be invalid")
	}
	if s.TokenValid("tok", now.Add(2*time.Hour)) {
		t.Fatal("expired token must be invalid")
	}
	if (Subscription{}).TokenValid("", now) {
		t.Fatal("empty token must be invalid")
	}
}
