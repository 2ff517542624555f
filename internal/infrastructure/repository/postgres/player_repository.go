package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	qb "github.com/dajarony/club-deportivo-quito/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.Position != "" {
		conditions = append(conditions, qb.Eq("position", filter.Position))
	}
	if filter.Active != nil {
		conditions = append(conditions, qb.Eq("is_active", *filter.Active))
	}

	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("number", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := playerRowToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", id), "get player by id")
}

func (r *PlayerRepository) GetBySlug(ctx context.Context, slug string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("slug", slug), "get player by slug")
}

func (r *PlayerRepository) getOne(ctx context.Context, condition qb.Condition, action string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			condition,
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", action, err)
	}

	item, err := playerRowToDomain(row)
	if err != nil {
		return player.Player{}, false, err
	}
	return item, true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	insertModel, err := playerInsertModelFrom(p)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	stats, err := encodePlayerStats(p.Stats)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("slug", p.Slug).
		Set("number", p.Number).
		Set("position", p.Position).
		Set("nationality", p.Nationality).
		Set("date_of_birth", nullableTime(p.DateOfBirth)).
		Set("height_cm", p.HeightCm).
		Set("weight_kg", p.WeightKg).
		Set("photo", p.Photo).
		Set("bio", p.Bio).
		Set("joined_at", nullableTime(p.JoinedAt)).
		Set("is_active", p.IsActive).
		Set("stats", stats).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update player: not found")
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected soft delete player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete player: not found")
	}

	return nil
}
