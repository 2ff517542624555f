package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeErrorDetail(ctx, w, err, false)
}

// writeErrorDetail renders the error envelope. The error field carries
// the raw error text and is only populated outside production.
func writeErrorDetail(ctx context.Context, w http.ResponseWriter, err error, includeDetail bool) {
	ctx, span := startSpan(ctx, "httpapi.writeErrorDetail")
	defer span.End()

	status := mapError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	body := errorEnvelope{Success: false, Message: message}
	if includeDetail {
		body.Error = err.Error()
	}
	writeJSON(ctx, w, status, body)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Success: false,
		Message: "internal server error",
	})
}

// mapError translates usecase sentinels onto HTTP statuses. Conflicts
// map to 400 to match the public API contract.
func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
