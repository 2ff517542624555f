package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
)

type subscriptionTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	Email         string     `db:"email"`
	IsActive      bool       `db:"is_active"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	Token         string     `db:"token"`
	TokenExpires  *time.Time `db:"token_expires"`
	Preferences   []byte     `db:"preferences"`
	LastEmailSent *time.Time `db:"last_email_sent"`
	SubscribedAt  time.Time  `db:"subscribed_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type subscriptionInsertModel struct {
	PublicID      string     `db:"public_id"`
	Email         string     `db:"email"`
	IsActive      bool       `db:"is_active"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	Token         string     `db:"token"`
	TokenExpires  *time.Time `db:"token_expires"`
	Preferences   []byte     `db:"preferences"`
	LastEmailSent *time.Time `db:"last_email_sent"`
	SubscribedAt  time.Time  `db:"subscribed_at"`
}

type preferencesDocument struct {
	News       bool `json:"news"`
	Matches    bool `json:"matches"`
	Events     bool `json:"events"`
	Promotions bool `json:"promotions"`
}

func encodePreferences(prefs newsletter.Preferences) ([]byte, error) {
	encoded, err := sonic.Marshal(preferencesDocument{
		News:       prefs.News,
		Matches:    prefs.Matches,
		Events:     prefs.Events,
		Promotions: prefs.Promotions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal subscription preferences: %w", err)
	}
	return encoded, nil
}

func decodePreferences(raw []byte) (newsletter.Preferences, error) {
	if len(raw) == 0 {
		return newsletter.DefaultPreferences(), nil
	}

	var doc preferencesDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return newsletter.Preferences{}, fmt.Errorf("unmarshal subscription preferences: %w", err)
	}

	return newsletter.Preferences{
		News:       doc.News,
		Matches:    doc.Matches,
		Events:     doc.Events,
		Promotions: doc.Promotions,
	}, nil
}

func subscriptionRowToDomain(row subscriptionTableModel) (newsletter.Subscription, error) {
	prefs, err := decodePreferences(row.Preferences)
	if err != nil {
		return newsletter.Subscription{}, fmt.Errorf("subscription %s: %w", row.PublicID, err)
	}

	return newsletter.Subscription{
		ID:            row.PublicID,
		Email:         row.Email,
		IsActive:      row.IsActive,
		ConfirmedAt:   timeValue(row.ConfirmedAt),
		Token:         row.Token,
		TokenExpires:  timeValue(row.TokenExpires),
		Preferences:   prefs,
		LastEmailSent: timeValue(row.LastEmailSent),
		SubscribedAt:  row.SubscribedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func subscriptionInsertModelFrom(s newsletter.Subscription) (subscriptionInsertModel, error) {
	prefs, err := encodePreferences(s.Preferences)
	if err != nil {
		return subscriptionInsertModel{}, err
	}

	return subscriptionInsertModel{
		PublicID:      s.ID,
		Email:         s.Email,
		IsActive:      s.IsActive,
		ConfirmedAt:   nullableTime(s.ConfirmedAt),
		Token:         s.Token,
		TokenExpires:  nullableTime(s.TokenExpires),
		Preferences:   prefs,
		LastEmailSent: nullableTime(s.LastEmailSent),
		SubscribedAt:  s.SubscribedAt,
	}, nil
}
