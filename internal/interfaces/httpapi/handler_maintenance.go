package httpapi

import (
	"net/http"

	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type maintenanceRequest struct {
	MaxWorkers int  `json:"maxWorkers" validate:"gte=0,lte=8"`
	DryRun     bool `json:"dryRun"`
}

type maintenanceResponse struct {
	Success bool                      `json:"success"`
	Result  usecase.MaintenanceResult `json:"result"`
}

// RunMaintenance sweeps orphaned uploads and retires expired sponsors.
// The route sits behind the internal job token, not user auth.
func (h *Handler) RunMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunMaintenance")
	defer span.End()

	var req maintenanceRequest
	if r.ContentLength > 0 {
		if err := h.decodeRequest(ctx, r, &req); err != nil {
			h.writeError(ctx, w, err)
			return
		}
	}

	result, err := h.maintenanceService.Run(ctx, usecase.MaintenanceInput{
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "maintenance run failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "maintenance run finished",
		"files_scanned", result.FilesScanned,
		"orphans_deleted", result.OrphansDeleted,
		"sponsors_deactivated", result.SponsorsDeactivated,
		"dry_run", result.DryRun,
	)
	writeJSON(ctx, w, http.StatusOK, maintenanceResponse{Success: true, Result: result})
}
