package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset into an empty database so a
// fresh deployment renders a populated site. A database that already
// has matches is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range memory.SeedMatches() {
		model, err := matchInsertModelFrom(m)
		if err != nil {
			return fmt.Errorf("build seed match %s: %w", m.ID, err)
		}
		if err := seedInsert(ctx, tx, `
INSERT INTO matches (public_id, competition, season, matchday, date, home_team, away_team, venue, status, home_score, away_score, minute, events, stats, highlights, ticket_url, stream_url)
VALUES (:public_id, :competition, :season, :matchday, :date, :home_team, :away_team, :venue, :status, :home_score, :away_score, :minute, :events, :stats, :highlights, :ticket_url, :stream_url)
ON CONFLICT (public_id) DO NOTHING`, model); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, a := range memory.SeedNews() {
		if err := seedInsert(ctx, tx, `
INSERT INTO news (public_id, title, slug, excerpt, content, image, author_id, author_name, category, tags, is_published, views, publish_date)
VALUES (:public_id, :title, :slug, :excerpt, :content, :image, :author_id, :author_name, :category, :tags, :is_published, :views, :publish_date)
ON CONFLICT (public_id) DO NOTHING`, newsInsertModelFrom(a)); err != nil {
			return fmt.Errorf("seed news %s: %w", a.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		model, err := playerInsertModelFrom(p)
		if err != nil {
			return fmt.Errorf("build seed player %s: %w", p.ID, err)
		}
		if err := seedInsert(ctx, tx, `
INSERT INTO players (public_id, name, slug, number, position, nationality, date_of_birth, height_cm, weight_kg, photo, bio, joined_at, is_active, stats)
VALUES (:public_id, :name, :slug, :number, :position, :nationality, :date_of_birth, :height_cm, :weight_kg, :photo, :bio, :joined_at, :is_active, :stats)
ON CONFLICT (public_id) DO NOTHING`, model); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, s := range memory.SeedSponsors() {
		if err := seedInsert(ctx, tx, `
INSERT INTO sponsors (public_id, name, logo, url, level, description, display_order, is_active, start_date, end_date)
VALUES (:public_id, :name, :logo, :url, :level, :description, :display_order, :is_active, :start_date, :end_date)
ON CONFLICT (public_id) DO NOTHING`, sponsorInsertModelFrom(s)); err != nil {
			return fmt.Errorf("seed sponsor %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func seedInsert(ctx context.Context, tx *sqlx.Tx, query string, model any) error {
	sqlQuery, args, err := sqlx.Named(query, model)
	if err != nil {
		return fmt.Errorf("bind seed query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return err
	}
	return nil
}
