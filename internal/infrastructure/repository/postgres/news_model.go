package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
)

type newsTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Excerpt     string         `db:"excerpt"`
	Content     string         `db:"content"`
	Image       string         `db:"image"`
	AuthorID    string         `db:"author_id"`
	AuthorName  string         `db:"author_name"`
	Category    string         `db:"category"`
	Tags        pq.StringArray `db:"tags"`
	IsPublished bool           `db:"is_published"`
	Views       int            `db:"views"`
	PublishDate *time.Time     `db:"publish_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

type newsInsertModel struct {
	PublicID    string         `db:"public_id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Excerpt     string         `db:"excerpt"`
	Content     string         `db:"content"`
	Image       string         `db:"image"`
	AuthorID    string         `db:"author_id"`
	AuthorName  string         `db:"author_name"`
	Category    string         `db:"category"`
	Tags        pq.StringArray `db:"tags"`
	IsPublished bool           `db:"is_published"`
	Views       int            `db:"views"`
	PublishDate *time.Time     `db:"publish_date"`
}

func newsRowToDomain(row newsTableModel) news.Article {
	return news.Article{
		ID:          row.PublicID,
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		Image:       row.Image,
		AuthorID:    row.AuthorID,
		AuthorName:  row.AuthorName,
		Category:    row.Category,
		Tags:        append([]string(nil), row.Tags...),
		IsPublished: row.IsPublished,
		Views:       row.Views,
		PublishDate: timeValue(row.PublishDate),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func newsInsertModelFrom(a news.Article) newsInsertModel {
	return newsInsertModel{
		PublicID:    a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Image:       a.Image,
		AuthorID:    a.AuthorID,
		AuthorName:  a.AuthorName,
		Category:    a.Category,
		Tags:        pq.StringArray(a.Tags),
		IsPublished: a.IsPublished,
		Views:       a.Views,
		PublishDate: nullableTime(a.PublishDate),
	}
}
