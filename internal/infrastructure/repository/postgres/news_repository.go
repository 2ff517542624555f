package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	qb "github.com/dajarony/club-deportivo-quito/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context, filter news.Filter, page news.Page) ([]news.Article, int, error) {
	conditions := newsFilterConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("news").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count news query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	query, args, err := qb.Select("*").From("news").
		Where(conditions...).
		OrderBy("publish_date DESC NULLS LAST", "id DESC").
		Limit(page.Limit).
		Offset((page.Page - 1) * page.Limit).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, newsRowToDomain(row))
	}
	return out, total, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (news.Article, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", id), "get article by id")
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (news.Article, bool, error) {
	return r.getOne(ctx, qb.Eq("slug", slug), "get article by slug")
}

func (r *NewsRepository) getOne(ctx context.Context, condition qb.Condition, action string) (news.Article, bool, error) {
	query, args, err := qb.Select("*").From("news").
		Where(
			condition,
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("%s: %w", action, err)
	}

	return newsRowToDomain(row), true, nil
}

func (r *NewsRepository) IncrementViews(ctx context.Context, id string) error {
	query, args, err := qb.Update("news").
		SetExpr("views", "views + 1").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build increment views query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected increment views: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("increment views: article not found")
	}

	return nil
}

func (r *NewsRepository) Create(ctx context.Context, a news.Article) error {
	query, args, err := qb.InsertModel("news", newsInsertModelFrom(a), "")
	if err != nil {
		return fmt.Errorf("build create article query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (r *NewsRepository) Update(ctx context.Context, a news.Article) error {
	query, args, err := qb.Update("news").
		Set("title", a.Title).
		Set("slug", a.Slug).
		Set("excerpt", a.Excerpt).
		Set("content", a.Content).
		Set("image", a.Image).
		Set("author_id", a.AuthorID).
		Set("author_name", a.AuthorName).
		Set("category", a.Category).
		Set("tags", pq.StringArray(a.Tags)).
		Set("is_published", a.IsPublished).
		Set("views", a.Views).
		Set("publish_date", nullableTime(a.PublishDate)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", a.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update article query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update article: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update article: not found")
	}

	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("news").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete article query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected soft delete article: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete article: not found")
	}

	return nil
}

func (r *NewsRepository) ListImagePaths(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("image").From("news").
		Where(
			qb.Expr("image <> ''"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("image").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list image paths query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list image paths: %w", err)
	}

	return out, nil
}

func newsFilterConditions(filter news.Filter) []qb.Condition {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.Category != "" {
		conditions = append(conditions, qb.Eq("category", filter.Category))
	}
	if filter.Tag != "" {
		conditions = append(conditions, qb.Expr("? = ANY(tags)", filter.Tag))
	}
	if filter.Published != nil {
		conditions = append(conditions, qb.Eq("is_published", *filter.Published))
	}
	return conditions
}
