package news

import (
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/platform/slug"
)

const (
	CategoryTeam     = "team"
	CategoryMatch    = "match"
	CategoryTransfer = "transfer"
	CategoryClub     = "club"
	CategoryOther    = "other"
)

const (
	MaxTitleLength   = 100
	MaxExcerptLength = 250
)

// Article is one published news entry. Views is a monotonic counter
// incremented on every read, with no per-client deduplication.
type Article struct {
	ID          string
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
	Views       int
	PublishDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewArticle validates fields and computes the slug when none is given.
// Derived fields come from this factory, never from storage hooks.
func NewArticle(title, slugValue, excerpt, content, image, authorID, category string, tags []string, isPublished bool) (Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Article{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return Article{}, fmt.Errorf("title exceeds %d characters", MaxTitleLength)
	}
	excerpt = strings.TrimSpace(excerpt)
	if excerpt == "" {
		return Article{}, fmt.Errorf("excerpt is required")
	}
	if len(excerpt) > MaxExcerptLength {
		return Article{}, fmt.Errorf("excerpt exceeds %d characters", MaxExcerptLength)
	}
	if strings.TrimSpace(content) == "" {
		return Article{}, fmt.Errorf("content is required")
	}
	if strings.TrimSpace(image) == "" {
		return Article{}, fmt.Errorf("image is required")
	}

	category = NormalizeCategory(category)
	if !IsValidCategory(category) {
		return Article{}, fmt.Errorf("invalid category %q", category)
	}

	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		slugValue = slug.Make(title)
	}
	if slugValue == "" {
		return Article{}, fmt.Errorf("cannot derive slug from title %q", title)
	}

	return Article{
		Title:       title,
		Slug:        slugValue,
		Excerpt:     excerpt,
		Content:     content,
		Image:       strings.TrimSpace(image),
		AuthorID:    strings.TrimSpace(authorID),
		Category:    category,
		Tags:        normalizeTags(tags),
		IsPublished: isPublished,
		PublishDate: time.Now().UTC(),
	}, nil
}

func NormalizeCategory(value string) string {
	category := strings.ToLower(strings.TrimSpace(value))
	if category == "" {
		return CategoryOther
	}
	return category
}

func IsValidCategory(value string) bool {
	switch NormalizeCategory(value) {
	case CategoryTeam, CategoryMatch, CategoryTransfer, CategoryClub, CategoryOther:
		return true
	default:
		return false
	}
}

// SplitTags parses a comma separated tag list.
func SplitTags(raw string) []string {
	return normalizeTags(strings.Split(raw, ","))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		item := strings.TrimSpace(tag)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
