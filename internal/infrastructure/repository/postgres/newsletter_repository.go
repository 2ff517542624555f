package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	qb "github.com/dajarony/club-deportivo-quito/internal/platform/querybuilder"
)

type NewsletterRepository struct {
	db *sqlx.DB
}

func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) List(ctx context.Context, activeOnly bool) ([]newsletter.Subscription, error) {
	builder := qb.Select("*").From("newsletter_subscriptions")
	if activeOnly {
		builder = builder.Where(qb.Eq("is_active", true))
	}
	query, args, err := builder.OrderBy("email").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select subscriptions query: %w", err)
	}

	var rows []subscriptionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select subscriptions: %w", err)
	}

	out := make([]newsletter.Subscription, 0, len(rows))
	for _, row := range rows {
		item, err := subscriptionRowToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (newsletter.Subscription, bool, error) {
	return r.getOne(ctx, qb.Eq("email", email), "get subscription by email")
}

func (r *NewsletterRepository) GetByToken(ctx context.Context, token string) (newsletter.Subscription, bool, error) {
	if strings.TrimSpace(token) == "" {
		return newsletter.Subscription{}, false, nil
	}
	return r.getOne(ctx, qb.Eq("token", token), "get subscription by token")
}

func (r *NewsletterRepository) getOne(ctx context.Context, condition qb.Condition, action string) (newsletter.Subscription, bool, error) {
	query, args, err := qb.Select("*").From("newsletter_subscriptions").
		Where(condition).
		ToSQL()
	if err != nil {
		return newsletter.Subscription{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row subscriptionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return newsletter.Subscription{}, false, nil
		}
		return newsletter.Subscription{}, false, fmt.Errorf("%s: %w", action, err)
	}

	item, err := subscriptionRowToDomain(row)
	if err != nil {
		return newsletter.Subscription{}, false, err
	}
	return item, true, nil
}

func (r *NewsletterRepository) Create(ctx context.Context, s newsletter.Subscription) error {
	insertModel, err := subscriptionInsertModelFrom(s)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("newsletter_subscriptions", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create subscription query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	return nil
}

func (r *NewsletterRepository) Update(ctx context.Context, s newsletter.Subscription) error {
	prefs, err := encodePreferences(s.Preferences)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("newsletter_subscriptions").
		Set("is_active", s.IsActive).
		Set("confirmed_at", nullableTime(s.ConfirmedAt)).
		Set("token", s.Token).
		Set("token_expires", nullableTime(s.TokenExpires)).
		Set("preferences", prefs).
		Set("last_email_sent", nullableTime(s.LastEmailSent)).
		Set("subscribed_at", s.SubscribedAt).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", s.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update subscription query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update subscription: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update subscription: not found")
	}

	return nil
}
