package news

import "context"

// Filter narrows article listings. Published is a tri-state: nil means
// both published and unpublished articles.
type Filter struct {
	Category  string
	Tag       string
	Published *bool
}

type Page struct {
	Limit int
	Page  int
	Sort  string
}

// Repository exposes article persistence operations.
type Repository interface {
	List(ctx context.Context, filter Filter, page Page) ([]Article, int, error)
	GetByID(ctx context.Context, id string) (Article, bool, error)
	GetBySlug(ctx context.Context, slug string) (Article, bool, error)
	IncrementViews(ctx context.Context, id string) error
	Create(ctx context.Context, a Article) error
	Update(ctx context.Context, a Article) error
	Delete(ctx context.Context, id string) error
	ListImagePaths(ctx context.Context) ([]string, error)
}
