package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type playerStatsRequest struct {
	Appearances   int `json:"appearances" validate:"gte=0"`
	Goals         int `json:"goals" validate:"gte=0"`
	Assists       int `json:"assists" validate:"gte=0"`
	YellowCards   int `json:"yellowCards" validate:"gte=0"`
	RedCards      int `json:"redCards" validate:"gte=0"`
	MinutesPlayed int `json:"minutesPlayed" validate:"gte=0"`
}

type createPlayerRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Slug        string              `json:"slug" validate:"max=120"`
	Number      int                 `json:"number" validate:"required,gte=1,lte=99"`
	Position    string              `json:"position" validate:"required"`
	Nationality string              `json:"nationality" validate:"max=60"`
	DateOfBirth string              `json:"dateOfBirth"`
	HeightCm    int                 `json:"heightCm" validate:"gte=0,lte=250"`
	WeightKg    int                 `json:"weightKg" validate:"gte=0,lte=200"`
	Photo       string              `json:"photo"`
	Bio         string              `json:"bio"`
	JoinedAt    string              `json:"joinedAt"`
	IsActive    *bool               `json:"isActive"`
	Stats       *playerStatsRequest `json:"stats"`
}

type playersResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Players []playerDTO `json:"players"`
}

type playerResponse struct {
	Success bool      `json:"success"`
	Player  playerDTO `json:"player"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	input := usecase.ListPlayersInput{Position: query.Get("position")}
	if raw := strings.TrimSpace(query.Get("active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(ctx, w, fmt.Errorf("%w: invalid active value %q", usecase.ErrInvalidInput, raw))
			return
		}
		input.Active = &active
	}

	players, err := h.playerService.List(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	now := time.Now()
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p, now))
	}

	writeJSON(ctx, w, http.StatusOK, playersResponse{Success: true, Count: len(items), Players: items})
}

// GetPlayer resolves a player by ID or slug.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	ref := strings.TrimSpace(r.PathValue("ref"))
	found, err := h.playerService.Get(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "ref", ref, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerResponse{Success: true, Player: playerToDTO(found, time.Now())})
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, playerResponse{Success: true, Player: playerToDTO(created, time.Now())})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, playerID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerResponse{Success: true, Player: playerToDTO(updated, time.Now())})
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": "player deleted"})
}

func (req createPlayerRequest) toInput() (usecase.CreatePlayerInput, error) {
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return usecase.CreatePlayerInput{}, err
	}
	joinedAt, err := parseDate(req.JoinedAt)
	if err != nil {
		return usecase.CreatePlayerInput{}, err
	}

	input := usecase.CreatePlayerInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Number:      req.Number,
		Position:    req.Position,
		Nationality: req.Nationality,
		DateOfBirth: dateOfBirth,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		Photo:       req.Photo,
		Bio:         req.Bio,
		JoinedAt:    joinedAt,
		IsActive:    req.IsActive,
	}
	if req.Stats != nil {
		input.Stats = player.Stats{
			Appearances:   req.Stats.Appearances,
			Goals:         req.Stats.Goals,
			Assists:       req.Stats.Assists,
			YellowCards:   req.Stats.YellowCards,
			RedCards:      req.Stats.RedCards,
			MinutesPlayed: req.Stats.MinutesPlayed,
		}
	}
	return input, nil
}
