package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	qb "github.com/dajarony/club-deportivo-quito/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter, page match.Page) ([]match.Match, int, error) {
	conditions := matchFilterConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count matches query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	order := []string{"date DESC", "id DESC"}
	if page.Sort == "date" {
		order = []string{"date ASC", "id ASC"}
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy(order...).
		Limit(page.Limit).
		Offset((page.Page - 1) * page.Limit).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select matches: %w", err)
	}

	out, err := matchRowsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MatchRepository) ListFixtures(ctx context.Context, after time.Time, competition string, limit int) ([]match.Match, error) {
	conditions := []qb.Condition{
		qb.Eq("status", match.StatusScheduled),
		qb.Gte("date", after),
		qb.IsNull("deleted_at"),
	}
	if competition != "" {
		conditions = append(conditions, qb.Eq("competition", competition))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("date ASC", "id ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	return matchRowsToDomain(rows)
}

func (r *MatchRepository) ListResults(ctx context.Context, before time.Time, competition string, limit int) ([]match.Match, error) {
	conditions := []qb.Condition{
		qb.Eq("status", match.StatusFinished),
		qb.Lt("date", before),
		qb.IsNull("deleted_at"),
	}
	if competition != "" {
		conditions = append(conditions, qb.Eq("competition", competition))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("date DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	return matchRowsToDomain(rows)
}

func (r *MatchRepository) ListLive(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("status", match.StatusLive),
			qb.IsNull("deleted_at"),
		).
		OrderBy("date ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select live matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select live matches: %w", err)
	}

	return matchRowsToDomain(rows)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	item, err := matchRowToDomain(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) FindByTeamsAndDate(ctx context.Context, homeTeam, awayTeam string, date time.Time) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("home_team", homeTeam),
			qb.Eq("away_team", awayTeam),
			qb.Eq("date", date),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build find match by teams and date query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("find match by teams and date: %w", err)
	}

	item, err := matchRowToDomain(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	insertModel, err := matchInsertModelFrom(m)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("matches", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	events, err := encodeMatchEvents(m.Events)
	if err != nil {
		return err
	}
	stats, err := encodeMatchStats(m.Stats)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("matches").
		Set("competition", m.Competition).
		Set("season", m.Season).
		Set("matchday", m.Matchday).
		Set("date", m.Date).
		Set("home_team", m.HomeTeam).
		Set("away_team", m.AwayTeam).
		Set("venue", m.Venue).
		Set("status", m.Status).
		Set("home_score", m.HomeScore).
		Set("away_score", m.AwayScore).
		Set("minute", m.Minute).
		Set("events", events).
		Set("stats", stats).
		Set("highlights", m.Highlights).
		Set("ticket_url", m.TicketURL).
		Set("stream_url", m.StreamURL).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", m.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update match: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match: not found")
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected soft delete match: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete match: not found")
	}

	return nil
}

func matchFilterConditions(filter match.Filter) []qb.Condition {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.Competition != "" {
		conditions = append(conditions, qb.Eq("competition", filter.Competition))
	}
	if filter.Season != "" {
		conditions = append(conditions, qb.Eq("season", filter.Season))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", filter.Status))
	}
	return conditions
}

func matchRowsToDomain(rows []matchTableModel) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchRowToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
