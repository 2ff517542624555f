package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
)

const (
	defaultNewsPageSize = 10
	maxNewsPageSize     = 50
)

// ImageStore persists uploaded article images and reports their public
// paths.
type ImageStore interface {
	Save(ctx context.Context, originalName string, data []byte) (string, error)
	Delete(ctx context.Context, publicPath string) error
}

type ListNewsInput struct {
	Category  string
	Tag       string
	Published *bool
	Limit     int
	Page      int
}

type CreateNewsInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Image       string
	AuthorID    string
	AuthorName  string
	Category    string
	Tags        []string
	IsPublished bool
}

type NewsPage struct {
	Items         []news.Article
	TotalArticles int
	TotalPages    int
	CurrentPage   int
}

type NewsService struct {
	newsRepo news.Repository
	images   ImageStore
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewNewsService(newsRepo news.Repository, images ImageStore, idGen idgen.Generator, logger *logging.Logger) *NewsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NewsService{
		newsRepo: newsRepo,
		images:   images,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *NewsService) List(ctx context.Context, input ListNewsInput) (NewsPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	filter := news.Filter{
		Category:  strings.ToLower(strings.TrimSpace(input.Category)),
		Tag:       strings.ToLower(strings.TrimSpace(input.Tag)),
		Published: input.Published,
	}
	if filter.Category != "" && !news.IsValidCategory(filter.Category) {
		return NewsPage{}, fmt.Errorf("%w: invalid category %q", ErrInvalidInput, input.Category)
	}

	page := news.Page{Limit: input.Limit, Page: input.Page, Sort: "-publish_date"}
	if page.Limit <= 0 {
		page.Limit = defaultNewsPageSize
	}
	if page.Limit > maxNewsPageSize {
		page.Limit = maxNewsPageSize
	}
	if page.Page <= 0 {
		page.Page = 1
	}

	items, total, err := s.newsRepo.List(ctx, filter, page)
	if err != nil {
		return NewsPage{}, fmt.Errorf("list news: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}

	return NewsPage{
		Items:         items,
		TotalArticles: total,
		TotalPages:    totalPages,
		CurrentPage:   page.Page,
	}, nil
}

// Get resolves an article by ID or slug and counts the read. Every
// request increments the view counter, repeat readers included.
func (s *NewsService) Get(ctx context.Context, ref string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Get")
	defer span.End()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return news.Article{}, fmt.Errorf("%w: article id or slug is required", ErrInvalidInput)
	}

	article, exists, err := s.newsRepo.GetByID(ctx, ref)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article by id: %w", err)
	}
	if !exists {
		article, exists, err = s.newsRepo.GetBySlug(ctx, ref)
		if err != nil {
			return news.Article{}, fmt.Errorf("get article by slug: %w", err)
		}
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, ref)
	}

	if err := s.newsRepo.IncrementViews(ctx, article.ID); err != nil {
		s.logger.WarnContext(ctx, "increment article views failed", "article_id", article.ID, "error", err)
	} else {
		article.Views++
	}

	return article, nil
}

func (s *NewsService) Create(ctx context.Context, input CreateNewsInput) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Create")
	defer span.End()

	article, err := news.NewArticle(input.Title, input.Slug, input.Excerpt, input.Content, input.Image, input.AuthorID, input.Category, input.Tags, input.IsPublished)
	if err != nil {
		return news.Article{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	article.AuthorName = strings.TrimSpace(input.AuthorName)

	if err := s.ensureSlugAvailable(ctx, article.Slug, ""); err != nil {
		return news.Article{}, err
	}

	articleID, err := s.idGen.NewID()
	if err != nil {
		return news.Article{}, fmt.Errorf("generate article id: %w", err)
	}

	now := s.now().UTC()
	article.ID = articleID
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.IsPublished && article.PublishDate.IsZero() {
		article.PublishDate = now
	}

	if err := s.newsRepo.Create(ctx, article); err != nil {
		if isDuplicateConstraintError(err) {
			return news.Article{}, fmt.Errorf("%w: an article with slug %q already exists", ErrConflict, article.Slug)
		}
		return news.Article{}, fmt.Errorf("create article: %w", err)
	}

	return article, nil
}

func (s *NewsService) Update(ctx context.Context, articleID string, input CreateNewsInput) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Update")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: article id is required", ErrInvalidInput)
	}

	current, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article by id: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}

	next, err := news.NewArticle(input.Title, input.Slug, input.Excerpt, input.Content, input.Image, input.AuthorID, input.Category, input.Tags, input.IsPublished)
	if err != nil {
		return news.Article{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if next.AuthorID == "" {
		next.AuthorID = current.AuthorID
	}
	next.AuthorName = strings.TrimSpace(input.AuthorName)
	if next.AuthorName == "" {
		next.AuthorName = current.AuthorName
	}

	if err := s.ensureSlugAvailable(ctx, next.Slug, current.ID); err != nil {
		return news.Article{}, err
	}

	next.ID = current.ID
	next.Views = current.Views
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now().UTC()
	next.PublishDate = current.PublishDate
	if next.IsPublished && next.PublishDate.IsZero() {
		next.PublishDate = next.UpdatedAt
	}

	if err := s.newsRepo.Update(ctx, next); err != nil {
		if isDuplicateConstraintError(err) {
			return news.Article{}, fmt.Errorf("%w: an article with slug %q already exists", ErrConflict, next.Slug)
		}
		return news.Article{}, fmt.Errorf("update article: %w", err)
	}

	return next, nil
}

// Delete removes the article and, best effort, its uploaded image.
func (s *NewsService) Delete(ctx context.Context, articleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Delete")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return fmt.Errorf("%w: article id is required", ErrInvalidInput)
	}

	article, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}

	if err := s.newsRepo.Delete(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if s.images != nil && article.Image != "" {
		if err := s.images.Delete(ctx, article.Image); err != nil {
			s.logger.WarnContext(ctx, "delete article image failed", "article_id", article.ID, "image", article.Image, "error", err)
		}
	}

	return nil
}

// UploadImage stores an image and returns its public path.
func (s *NewsService) UploadImage(ctx context.Context, originalName string, data []byte) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.UploadImage")
	defer span.End()

	if s.images == nil {
		return "", fmt.Errorf("%w: image storage is not configured", ErrDependencyUnavailable)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image payload is empty", ErrInvalidInput)
	}

	publicPath, err := s.images.Save(ctx, originalName, data)
	if err != nil {
		return "", fmt.Errorf("save article image: %w", err)
	}

	return publicPath, nil
}

func (s *NewsService) ensureSlugAvailable(ctx context.Context, slug, excludeID string) error {
	existing, exists, err := s.newsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("check article slug: %w", err)
	}
	if exists && existing.ID != excludeID {
		return fmt.Errorf("%w: an article with slug %q already exists", ErrConflict, slug)
	}
	return nil
}
