package newsletter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const TokenTTL = 48 * time.Hour

// Preferences selects which mailing categories a subscriber receives.
// Everything defaults to on.
type Preferences struct {
	News       bool
	Matches    bool
	Events     bool
	Promotions bool
}

func DefaultPreferences() Preferences {
	return Preferences{News: true, Matches: true, Events: true, Promotions: true}
}

// Subscription is one newsletter signup keyed by lowercased email.
type Subscription struct {
	ID            string
	Email         string
	IsActive      bool
	ConfirmedAt   time.Time
	Token         string
	TokenExpires  time.Time
	Preferences   Preferences
	LastEmailSent time.Time
	SubscribedAt  time.Time
	UpdatedAt     time.Time
}

// NewSubscription validates and normalizes the email, then builds an
// active unconfirmed subscription with default preferences.
func NewSubscription(email, token string, now time.Time) (Subscription, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return Subscription{}, err
	}

	return Subscription{
		Email:        normalized,
		IsActive:     true,
		Token:        strings.TrimSpace(token),
		TokenExpires: now.Add(TokenTTL),
		Preferences:  DefaultPreferences(),
		SubscribedAt: now,
	}, nil
}

// NormalizeEmail lowercases and validates an address.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(normalized) {
		return "", fmt.Errorf("invalid email format %q", normalized)
	}
	return normalized, nil
}

// TokenValid reports whether the confirmation token matches and has
// not expired.
func (s Subscription) TokenValid(token string, now time.Time) bool {
	if s.Token == "" || strings.TrimSpace(token) != s.Token {
		return false
	}
	return now.Before(s.TokenExpires)
}
