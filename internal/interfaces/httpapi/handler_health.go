package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, healthResponse{Success: true, Status: "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.readyCheck != nil {
		if err := h.readyCheck(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			h.writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err))
			return
		}
	}
	writeJSON(ctx, w, http.StatusOK, healthResponse{Success: true, Status: "ready"})
}
