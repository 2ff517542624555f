package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type unsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePreferencesRequest struct {
	Email       string         `json:"email" validate:"required,email"`
	Preferences preferencesDTO `json:"preferences"`
}

type subscriptionResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	Subscription subscriptionDTO `json:"subscription"`
}

type subscribersResponse struct {
	Success     bool              `json:"success"`
	Count       int               `json:"count"`
	Subscribers []subscriptionDTO `json:"subscribers"`
}

func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubscribeNewsletter")
	defer span.End()

	var req subscribeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	subscription, err := h.newsletterService.Subscribe(ctx, req.Email)
	if err != nil {
		h.logger.WarnContext(ctx, "newsletter subscribe failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, subscriptionResponse{
		Success:      true,
		Message:      "subscription created, check your inbox to confirm",
		Subscription: subscriptionToDTO(subscription),
	})
}

func (h *Handler) ConfirmNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmNewsletter")
	defer span.End()

	token := strings.TrimSpace(r.PathValue("token"))
	subscription, err := h.newsletterService.Confirm(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "newsletter confirm failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, subscriptionResponse{
		Success:      true,
		Message:      "subscription confirmed",
		Subscription: subscriptionToDTO(subscription),
	})
}

func (h *Handler) UnsubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnsubscribeNewsletter")
	defer span.End()

	var req unsubscribeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	if err := h.newsletterService.Unsubscribe(ctx, req.Email); err != nil {
		h.logger.WarnContext(ctx, "newsletter unsubscribe failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": "unsubscribed"})
}

func (h *Handler) UpdateNewsletterPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNewsletterPreferences")
	defer span.End()

	var req updatePreferencesRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	subscription, err := h.newsletterService.UpdatePreferences(ctx, req.Email, newsletter.Preferences{
		News:       req.Preferences.News,
		Matches:    req.Preferences.Matches,
		Events:     req.Preferences.Events,
		Promotions: req.Preferences.Promotions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "newsletter update preferences failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, subscriptionResponse{
		Success:      true,
		Message:      "preferences updated",
		Subscription: subscriptionToDTO(subscription),
	})
}

// ListNewsletterSubscribers is the admin export of the subscriber base.
func (h *Handler) ListNewsletterSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNewsletterSubscribers")
	defer span.End()

	activeOnly := false
	if raw := strings.TrimSpace(r.URL.Query().Get("active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(ctx, w, usecase.ErrInvalidInput)
			return
		}
		activeOnly = parsed
	}

	subscribers, err := h.newsletterService.ListSubscribers(ctx, activeOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "list newsletter subscribers failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	items := make([]subscriptionDTO, 0, len(subscribers))
	for _, subscription := range subscribers {
		items = append(items, subscriptionToDTO(subscription))
	}

	writeJSON(ctx, w, http.StatusOK, subscribersResponse{Success: true, Count: len(items), Subscribers: items})
}
