package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
)

type NewsRepository struct {
	mu       sync.RWMutex
	articles map[string]news.Article
}

func NewNewsRepository(articles []news.Article) *NewsRepository {
	index := make(map[string]news.Article, len(articles))
	for _, a := range articles {
		index[a.ID] = a
	}
	return &NewsRepository{articles: index}
}

func (r *NewsRepository) List(_ context.Context, filter news.Filter, page news.Page) ([]news.Article, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]news.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if !articleMatchesFilter(a, filter) {
			continue
		}
		items = append(items, a)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[j].PublishDate.Before(items[i].PublishDate)
	})

	total := len(items)
	start := (page.Page - 1) * page.Limit
	if start >= total {
		return []news.Article{}, total, nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return items[start:end], total, nil
}

func (r *NewsRepository) GetByID(_ context.Context, id string) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	return a, ok, nil
}

func (r *NewsRepository) GetBySlug(_ context.Context, slug string) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.Slug == slug {
			return a, true, nil
		}
	}
	return news.Article{}, false, nil
}

func (r *NewsRepository) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return fmt.Errorf("article %s not found", id)
	}
	a.Views++
	r.articles[id] = a
	return nil
}

func (r *NewsRepository) Create(_ context.Context, a news.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.articles {
		if existing.Slug == a.Slug {
			return fmt.Errorf("duplicate key value violates unique constraint \"news_slug_key\"")
		}
	}
	r.articles[a.ID] = a
	return nil
}

func (r *NewsRepository) Update(_ context.Context, a news.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[a.ID]; !ok {
		return fmt.Errorf("article %s not found", a.ID)
	}
	for _, existing := range r.articles {
		if existing.ID != a.ID && existing.Slug == a.Slug {
			return fmt.Errorf("duplicate key value violates unique constraint \"news_slug_key\"")
		}
	}
	r.articles[a.ID] = a
	return nil
}

func (r *NewsRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return fmt.Errorf("article %s not found", id)
	}
	delete(r.articles, id)
	return nil
}

func (r *NewsRepository) ListImagePaths(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.articles))
	for _, a := range r.articles {
		if a.Image != "" {
			out = append(out, a.Image)
		}
	}
	sort.Strings(out)
	return out, nil
}

func articleMatchesFilter(a news.Article, filter news.Filter) bool {
	if filter.Category != "" && a.Category != filter.Category {
		return false
	}
	if filter.Published != nil && a.IsPublished != *filter.Published {
		return false
	}
	if filter.Tag != "" {
		found := false
		for _, tag := range a.Tags {
			if tag == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
