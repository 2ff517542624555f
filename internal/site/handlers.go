package site

import (
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

// Handler serves the rendered public pages.
type Handler struct {
	renderer *Renderer
	facade   Facade
	logger   *logging.Logger
}

func NewHandler(renderer *Renderer, facade Facade, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{renderer: renderer, facade: facade, logger: logger}
}

// NewRouter registers the site routes.
func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("POST /newsletter/subscribe", handler.SubscribeNewsletter)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	return mux
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view := h.renderer.BuildHomeView(ctx, r.URL.Query().Get("competition"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderHome(w, view); err != nil {
		h.logger.ErrorContext(ctx, "render home page failed", "error", err)
	}
}

type subscribeSiteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubscribeNewsletter proxies the signup form to the API. Validation
// and transport failures surface to the visitor; nothing falls back.
func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.writeSubscribeJSON(w, http.StatusBadRequest, subscribeSiteResponse{
			Success: false,
			Message: "Por favor, introduce tu dirección de correo electrónico.",
		})
		return
	}

	email := r.PostFormValue("email")
	message, err := h.facade.SubscribeNewsletter(ctx, email)
	if err != nil {
		h.logger.WarnContext(ctx, "newsletter signup failed", "error", err)

		status := http.StatusBadRequest
		if errors.Is(err, webclient.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		h.writeSubscribeJSON(w, status, subscribeSiteResponse{
			Success: false,
			Message: userFacingMessage(err),
		})
		return
	}

	h.writeSubscribeJSON(w, http.StatusOK, subscribeSiteResponse{Success: true, Message: message})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"status":"ok"}`))
}

func (h *Handler) writeSubscribeJSON(w http.ResponseWriter, status int, payload subscribeSiteResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return
	}
	_, _ = w.Write(encoded)
}

func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, webclient.ErrInvalidEmail):
		return webclient.ErrInvalidEmail.Error()
	case errors.Is(err, webclient.ErrUnavailable):
		return webclient.ErrUnavailable.Error()
	default:
		return err.Error()
	}
}
