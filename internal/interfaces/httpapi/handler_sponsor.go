package httpapi

import (
	"net/http"
	"strings"

	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type createSponsorRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Logo         string `json:"logo" validate:"required"`
	URL          string `json:"url" validate:"omitempty,url"`
	Level        string `json:"level" validate:"required"`
	Description  string `json:"description" validate:"max=500"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsActive     *bool  `json:"isActive"`
}

type sponsorsResponse struct {
	Success  bool         `json:"success"`
	Count    int          `json:"count"`
	Sponsors []sponsorDTO `json:"sponsors"`
}

type sponsorResponse struct {
	Success bool       `json:"success"`
	Sponsor sponsorDTO `json:"sponsor"`
}

// ListSponsors serves the public sponsor strip: only sponsors inside
// their display window, in display order.
func (h *Handler) ListSponsors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSponsors")
	defer span.End()

	sponsors, err := h.sponsorService.ListActive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list active sponsors failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, sponsorsResponse{
		Success:  true,
		Count:    len(sponsors),
		Sponsors: sponsorsToDTO(sponsors),
	})
}

// ListAllSponsors is the admin listing, expired and inactive included.
func (h *Handler) ListAllSponsors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllSponsors")
	defer span.End()

	sponsors, err := h.sponsorService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list sponsors failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, sponsorsResponse{
		Success:  true,
		Count:    len(sponsors),
		Sponsors: sponsorsToDTO(sponsors),
	})
}

func (h *Handler) GetSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSponsor")
	defer span.End()

	sponsorID := strings.TrimSpace(r.PathValue("sponsorID"))
	found, err := h.sponsorService.Get(ctx, sponsorID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sponsor failed", "sponsor_id", sponsorID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, sponsorResponse{Success: true, Sponsor: sponsorToDTO(found)})
}

func (h *Handler) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSponsor")
	defer span.End()

	var req createSponsorRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.sponsorService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create sponsor failed", "name", req.Name, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, sponsorResponse{Success: true, Sponsor: sponsorToDTO(created)})
}

func (h *Handler) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSponsor")
	defer span.End()

	sponsorID := strings.TrimSpace(r.PathValue("sponsorID"))

	var req createSponsorRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	updated, err := h.sponsorService.Update(ctx, sponsorID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update sponsor failed", "sponsor_id", sponsorID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, sponsorResponse{Success: true, Sponsor: sponsorToDTO(updated)})
}

func (h *Handler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSponsor")
	defer span.End()

	sponsorID := strings.TrimSpace(r.PathValue("sponsorID"))
	if err := h.sponsorService.Delete(ctx, sponsorID); err != nil {
		h.logger.WarnContext(ctx, "delete sponsor failed", "sponsor_id", sponsorID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": "sponsor deleted"})
}

func (req createSponsorRequest) toInput() (usecase.CreateSponsorInput, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return usecase.CreateSponsorInput{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return usecase.CreateSponsorInput{}, err
	}

	return usecase.CreateSponsorInput{
		Name:         req.Name,
		Logo:         req.Logo,
		URL:          req.URL,
		Level:        req.Level,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		StartDate:    startDate,
		EndDate:      endDate,
		IsActive:     req.IsActive,
	}, nil
}
