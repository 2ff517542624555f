// Package cache wraps repositories with read-through caching for the
// public, read-heavy endpoints. Writes invalidate by key prefix.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	basecache "github.com/dajarony/club-deportivo-quito/internal/platform/cache"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter, page match.Page) ([]match.Match, int, error) {
	key := "match:list:" + filter.Competition + ":" + filter.Season + ":" + filter.Status +
		":" + strconv.Itoa(page.Limit) + ":" + strconv.Itoa(page.Page) + ":" + page.Sort
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, total, err := r.next.List(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		return cachedMatchList{items: cloneMatches(items), total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	cached, _ := v.(cachedMatchList)
	return cloneMatches(cached.items), cached.total, nil
}

func (r *MatchRepository) ListFixtures(ctx context.Context, after time.Time, competition string, limit int) ([]match.Match, error) {
	key := "match:fixtures:" + timeBucketKey(after) + ":" + competition + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListFixtures(ctx, after, competition, limit)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

func (r *MatchRepository) ListResults(ctx context.Context, before time.Time, competition string, limit int) ([]match.Match, error) {
	key := "match:results:" + timeBucketKey(before) + ":" + competition + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListResults(ctx, before, competition, limit)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

// ListLive is never cached: live scores and the match minute must not
// lag behind the repository.
func (r *MatchRepository) ListLive(ctx context.Context) ([]match.Match, error) {
	return r.next.ListLive(ctx)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	key := "match:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: cloneMatch(item), exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cloneMatch(cached.value), cached.exists, nil
}

// FindByTeamsAndDate backs the duplicate-fixture check and must always
// see the latest writes.
func (r *MatchRepository) FindByTeamsAndDate(ctx context.Context, homeTeam, awayTeam string, date time.Time) (match.Match, bool, error) {
	return r.next.FindByTeamsAndDate(ctx, homeTeam, awayTeam, date)
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	if err := r.next.Create(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	if err := r.next.Update(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

type cachedMatchList struct {
	items []match.Match
	total int
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

func cloneMatch(item match.Match) match.Match {
	out := item
	out.Events = append([]match.Event(nil), item.Events...)
	return out
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, cloneMatch(item))
	}
	return out
}

type NewsRepository struct {
	next  news.Repository
	cache *basecache.Store
}

func NewNewsRepository(next news.Repository, cache *basecache.Store) *NewsRepository {
	return &NewsRepository{next: next, cache: cache}
}

func (r *NewsRepository) List(ctx context.Context, filter news.Filter, page news.Page) ([]news.Article, int, error) {
	key := "news:list:" + filter.Category + ":" + filter.Tag + ":" + triStateKey(filter.Published) +
		":" + strconv.Itoa(page.Limit) + ":" + strconv.Itoa(page.Page) + ":" + page.Sort
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, total, err := r.next.List(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		return cachedArticleList{items: cloneArticles(items), total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	cached, _ := v.(cachedArticleList)
	return cloneArticles(cached.items), cached.total, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (news.Article, bool, error) {
	return r.getArticle(ctx, "news:id:"+id, func(ctx context.Context) (news.Article, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (news.Article, bool, error) {
	return r.getArticle(ctx, "news:slug:"+slug, func(ctx context.Context) (news.Article, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *NewsRepository) getArticle(ctx context.Context, key string, load func(context.Context) (news.Article, bool, error)) (news.Article, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedArticleByKey{value: cloneArticle(item), exists: exists}, nil
	})
	if err != nil {
		return news.Article{}, false, err
	}

	cached, _ := v.(cachedArticleByKey)
	return cloneArticle(cached.value), cached.exists, nil
}

// IncrementViews drops only the id entry. A slug entry may serve a
// view count up to one TTL stale, which the article page tolerates.
func (r *NewsRepository) IncrementViews(ctx context.Context, id string) error {
	if err := r.next.IncrementViews(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, "news:id:"+id)
	return nil
}

func (r *NewsRepository) Create(ctx context.Context, a news.Article) error {
	if err := r.next.Create(ctx, a); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "news:")
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, a news.Article) error {
	if err := r.next.Update(ctx, a); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "news:")
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "news:")
	return nil
}

func (r *NewsRepository) ListImagePaths(ctx context.Context) ([]string, error) {
	return r.next.ListImagePaths(ctx)
}

type cachedArticleList struct {
	items []news.Article
	total int
}

type cachedArticleByKey struct {
	value  news.Article
	exists bool
}

func cloneArticle(item news.Article) news.Article {
	out := item
	out.Tags = append([]string(nil), item.Tags...)
	return out
}

func cloneArticles(items []news.Article) []news.Article {
	out := make([]news.Article, 0, len(items))
	for _, item := range items {
		out = append(out, cloneArticle(item))
	}
	return out
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	key := "player:list:" + filter.Position + ":" + triStateKey(filter.Active)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	return r.getPlayer(ctx, "player:id:"+id, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *PlayerRepository) GetBySlug(ctx context.Context, slug string) (player.Player, bool, error) {
	return r.getPlayer(ctx, "player:slug:"+slug, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *PlayerRepository) getPlayer(ctx context.Context, key string, load func(context.Context) (player.Player, bool, error)) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByKey{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByKey)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

type cachedPlayerByKey struct {
	value  player.Player
	exists bool
}

func triStateKey(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}

// timeBucketKey truncates the reference time to the minute so repeated
// fixture and result queries share a cache entry instead of keying on
// every distinct call time.
func timeBucketKey(t time.Time) string {
	return strconv.FormatInt(t.UTC().Truncate(time.Minute).Unix(), 10)
}
