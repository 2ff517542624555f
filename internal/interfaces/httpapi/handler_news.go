package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

// maxUploadBytes caps article image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

type createNewsRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Slug        string   `json:"slug" validate:"max=120"`
	Excerpt     string   `json:"excerpt" validate:"required,max=250"`
	Content     string   `json:"content" validate:"required"`
	Image       string   `json:"image"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

type listNewsResponse struct {
	Success       bool      `json:"success"`
	Count         int       `json:"count"`
	TotalArticles int       `json:"totalArticles"`
	TotalPages    int       `json:"totalPages"`
	CurrentPage   int       `json:"currentPage"`
	Articles      []newsDTO `json:"articles"`
}

type articleResponse struct {
	Success bool    `json:"success"`
	Article newsDTO `json:"article"`
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	query := r.URL.Query()
	input := usecase.ListNewsInput{
		Category: query.Get("category"),
		Tag:      query.Get("tag"),
		Limit:    queryInt(r, "limit"),
		Page:     queryInt(r, "page"),
	}
	if raw := strings.TrimSpace(query.Get("published")); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(ctx, w, fmt.Errorf("%w: invalid published value %q", usecase.ErrInvalidInput, raw))
			return
		}
		input.Published = &published
	}

	page, err := h.newsService.List(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list news failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	articles := make([]newsDTO, 0, len(page.Items))
	for _, article := range page.Items {
		articles = append(articles, newsToDTO(article))
	}

	writeJSON(ctx, w, http.StatusOK, listNewsResponse{
		Success:       true,
		Count:         len(articles),
		TotalArticles: page.TotalArticles,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
		Articles:      articles,
	})
}

// GetNews resolves an article by ID or slug.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	ref := strings.TrimSpace(r.PathValue("ref"))
	article, err := h.newsService.Get(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get news failed", "ref", ref, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, articleResponse{Success: true, Article: newsToDTO(article)})
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		h.writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createNewsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.newsService.Create(ctx, usecase.CreateNewsInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Image:       req.Image,
		AuthorID:    principal.UserID,
		AuthorName:  principal.Username,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create news failed", "title", req.Title, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, articleResponse{Success: true, Article: newsToDTO(created)})
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		h.writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	articleID := strings.TrimSpace(r.PathValue("articleID"))

	var req createNewsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	updated, err := h.newsService.Update(ctx, articleID, usecase.CreateNewsInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Image:       req.Image,
		AuthorID:    principal.UserID,
		AuthorName:  principal.Username,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update news failed", "article_id", articleID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, articleResponse{Success: true, Article: newsToDTO(updated)})
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	articleID := strings.TrimSpace(r.PathValue("articleID"))
	if err := h.newsService.Delete(ctx, articleID); err != nil {
		h.logger.WarnContext(ctx, "delete news failed", "article_id", articleID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": "article deleted"})
}

// UploadNewsImage accepts a multipart form with an "image" file part and
// stores it for later reference from article bodies.
func (h *Handler) UploadNewsImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadNewsImage")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(ctx, w, fmt.Errorf("%w: missing image file", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(ctx, w, fmt.Errorf("%w: read image file: %v", usecase.ErrInvalidInput, err))
		return
	}

	path, err := h.newsService.UploadImage(ctx, header.Filename, data)
	if err != nil {
		h.logger.WarnContext(ctx, "upload news image failed", "filename", header.Filename, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, uploadResponse{Success: true, Path: path})
}
