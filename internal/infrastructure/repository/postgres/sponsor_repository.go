package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
	qb "github.com/dajarony/club-deportivo-quito/internal/platform/querybuilder"
)

type SponsorRepository struct {
	db *sqlx.DB
}

func NewSponsorRepository(db *sqlx.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) ListActive(ctx context.Context, now time.Time) ([]sponsor.Sponsor, error) {
	query, args, err := qb.Select("*").From("sponsors").
		Where(
			qb.Eq("is_active", true),
			qb.Expr("(start_date IS NULL OR start_date <= ?)", now),
			qb.Expr("(end_date IS NULL OR end_date >= ?)", now),
			qb.IsNull("deleted_at"),
		).
		OrderBy("display_order", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active sponsors query: %w", err)
	}

	var rows []sponsorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active sponsors: %w", err)
	}

	return sponsorRowsToDomain(rows), nil
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	query, args, err := qb.Select("*").From("sponsors").
		Where(qb.IsNull("deleted_at")).
		OrderBy("display_order", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sponsors query: %w", err)
	}

	var rows []sponsorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sponsors: %w", err)
	}

	return sponsorRowsToDomain(rows), nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id string) (sponsor.Sponsor, bool, error) {
	query, args, err := qb.Select("*").From("sponsors").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return sponsor.Sponsor{}, false, fmt.Errorf("build get sponsor by id query: %w", err)
	}

	var row sponsorTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sponsor.Sponsor{}, false, nil
		}
		return sponsor.Sponsor{}, false, fmt.Errorf("get sponsor by id: %w", err)
	}

	return sponsorRowToDomain(row), true, nil
}

func (r *SponsorRepository) Create(ctx context.Context, s sponsor.Sponsor) error {
	query, args, err := qb.InsertModel("sponsors", sponsorInsertModelFrom(s), "")
	if err != nil {
		return fmt.Errorf("build create sponsor query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}

	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, s sponsor.Sponsor) error {
	query, args, err := qb.Update("sponsors").
		Set("name", s.Name).
		Set("logo", s.Logo).
		Set("url", s.URL).
		Set("level", s.Level).
		Set("description", s.Description).
		Set("display_order", s.DisplayOrder).
		Set("is_active", s.IsActive).
		Set("start_date", nullableTime(s.StartDate)).
		Set("end_date", nullableTime(s.EndDate)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", s.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update sponsor query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update sponsor: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update sponsor: not found")
	}

	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("sponsors").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete sponsor query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete sponsor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected soft delete sponsor: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete sponsor: not found")
	}

	return nil
}

func (r *SponsorRepository) DeactivateExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Update("sponsors").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("is_active", true),
			qb.Expr("end_date IS NOT NULL"),
			qb.Lt("end_date", now),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build deactivate expired sponsors query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired sponsors: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected deactivate expired sponsors: %w", err)
	}

	return int(affected), nil
}

func sponsorRowsToDomain(rows []sponsorTableModel) []sponsor.Sponsor {
	out := make([]sponsor.Sponsor, 0, len(rows))
	for _, row := range rows {
		out = append(out, sponsorRowToDomain(row))
	}
	return out
}
