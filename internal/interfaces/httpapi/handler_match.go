package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type matchEventRequest struct {
	Type     string `json:"type" validate:"required"`
	Minute   int    `json:"minute" validate:"gte=0,lte=130"`
	Team     string `json:"team"`
	Player   string `json:"player"`
	AssistBy string `json:"assistBy"`
}

type matchStatsRequest struct {
	HomePossession    int `json:"homePossession" validate:"gte=0,lte=100"`
	AwayPossession    int `json:"awayPossession" validate:"gte=0,lte=100"`
	HomeShots         int `json:"homeShots" validate:"gte=0"`
	AwayShots         int `json:"awayShots" validate:"gte=0"`
	HomeShotsOnTarget int `json:"homeShotsOnTarget" validate:"gte=0"`
	AwayShotsOnTarget int `json:"awayShotsOnTarget" validate:"gte=0"`
	HomeCorners       int `json:"homeCorners" validate:"gte=0"`
	AwayCorners       int `json:"awayCorners" validate:"gte=0"`
	HomeFouls         int `json:"homeFouls" validate:"gte=0"`
	AwayFouls         int `json:"awayFouls" validate:"gte=0"`
	HomeYellowCards   int `json:"homeYellowCards" validate:"gte=0"`
	AwayYellowCards   int `json:"awayYellowCards" validate:"gte=0"`
	HomeRedCards      int `json:"homeRedCards" validate:"gte=0"`
	AwayRedCards      int `json:"awayRedCards" validate:"gte=0"`
}

type createMatchRequest struct {
	Competition string              `json:"competition" validate:"required,max=100"`
	Season      string              `json:"season" validate:"max=20"`
	Matchday    int                 `json:"matchday" validate:"gte=0"`
	Date        string              `json:"date" validate:"required"`
	HomeTeam    string              `json:"homeTeam" validate:"required,max=100"`
	AwayTeam    string              `json:"awayTeam" validate:"required,max=100"`
	Venue       string              `json:"venue" validate:"max=150"`
	Status      string              `json:"status"`
	HomeScore   int                 `json:"homeScore" validate:"gte=0"`
	AwayScore   int                 `json:"awayScore" validate:"gte=0"`
	Events      []matchEventRequest `json:"events" validate:"dive"`
	Stats       *matchStatsRequest  `json:"stats"`
	Highlights  string              `json:"highlights"`
	TicketURL   string              `json:"ticketUrl"`
	StreamURL   string              `json:"streamUrl"`
}

type updateMatchResultRequest struct {
	Status    *string             `json:"status"`
	HomeScore *int                `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore *int                `json:"awayScore" validate:"omitempty,gte=0"`
	Minute    *int                `json:"minute" validate:"omitempty,gte=0,lte=130"`
	Events    []matchEventRequest `json:"events" validate:"dive"`
	Stats     *matchStatsRequest  `json:"stats"`
}

type listMatchesResponse struct {
	Success      bool       `json:"success"`
	Count        int        `json:"count"`
	TotalMatches int        `json:"totalMatches"`
	TotalPages   int        `json:"totalPages"`
	CurrentPage  int        `json:"currentPage"`
	Matches      []matchDTO `json:"matches"`
}

type fixturesResponse struct {
	Success  bool       `json:"success"`
	Count    int        `json:"count"`
	Fixtures []matchDTO `json:"fixtures"`
}

type resultsResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Results []matchDTO `json:"results"`
}

type liveMatchesResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Matches []matchDTO `json:"matches"`
}

type matchResponse struct {
	Success bool     `json:"success"`
	Match   matchDTO `json:"match"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	page, err := h.matchService.List(ctx, usecase.ListMatchesInput{
		Competition: query.Get("competition"),
		Season:      query.Get("season"),
		Status:      query.Get("status"),
		Limit:       queryInt(r, "limit"),
		Page:        queryInt(r, "page"),
		Sort:        query.Get("sort"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listMatchesResponse{
		Success:      true,
		Count:        len(page.Items),
		TotalMatches: page.TotalMatches,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
		Matches:      matchesToDTO(page.Items),
	})
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	fixtures, err := h.matchService.Fixtures(ctx, r.URL.Query().Get("competition"), queryInt(r, "limit"))
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, fixturesResponse{
		Success:  true,
		Count:    len(fixtures),
		Fixtures: matchesToDTO(fixtures),
	})
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	results, err := h.matchService.Results(ctx, r.URL.Query().Get("competition"), queryInt(r, "limit"))
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resultsResponse{
		Success: true,
		Count:   len(results),
		Results: matchesToDTO(results),
	})
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	matches, err := h.matchService.Live(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, liveMatchesResponse{
		Success: true,
		Count:   len(matches),
		Matches: matchesToDTO(matches),
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	found, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchResponse{Success: true, Match: matchToDTO(found)})
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "home_team", req.HomeTeam, "away_team", req.AwayTeam, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchResponse{Success: true, Match: matchToDTO(created)})
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchResponse{Success: true, Match: matchToDTO(updated)})
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req updateMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateMatchResultInput{
		Status:    req.Status,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		Minute:    req.Minute,
		Events:    matchEventsFromRequest(req.Events),
	}
	if req.Stats != nil {
		stats := matchStatsFromRequest(*req.Stats)
		input.Stats = &stats
	}

	updated, err := h.matchService.UpdateResult(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", matchID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchResponse{Success: true, Match: matchToDTO(updated)})
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": "match deleted"})
}

func (req createMatchRequest) toInput() (usecase.CreateMatchInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return usecase.CreateMatchInput{}, err
	}
	if date.IsZero() {
		return usecase.CreateMatchInput{}, fmt.Errorf("%w: date is required", usecase.ErrInvalidInput)
	}

	input := usecase.CreateMatchInput{
		Competition: req.Competition,
		Season:      req.Season,
		Matchday:    req.Matchday,
		Date:        date,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		Venue:       req.Venue,
		Status:      req.Status,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Events:      matchEventsFromRequest(req.Events),
		Highlights:  req.Highlights,
		TicketURL:   req.TicketURL,
		StreamURL:   req.StreamURL,
	}
	if req.Stats != nil {
		input.Stats = matchStatsFromRequest(*req.Stats)
	}
	return input, nil
}

func matchEventsFromRequest(events []matchEventRequest) []match.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]match.Event, 0, len(events))
	for _, event := range events {
		out = append(out, match.Event{
			Type:     event.Type,
			Minute:   event.Minute,
			Team:     event.Team,
			Player:   event.Player,
			AssistBy: event.AssistBy,
		})
	}
	return out
}

func matchStatsFromRequest(stats matchStatsRequest) match.Stats {
	return match.Stats{
		HomePossession:    stats.HomePossession,
		AwayPossession:    stats.AwayPossession,
		HomeShots:         stats.HomeShots,
		AwayShots:         stats.AwayShots,
		HomeShotsOnTarget: stats.HomeShotsOnTarget,
		AwayShotsOnTarget: stats.AwayShotsOnTarget,
		HomeCorners:       stats.HomeCorners,
		AwayCorners:       stats.AwayCorners,
		HomeFouls:         stats.HomeFouls,
		AwayFouls:         stats.AwayFouls,
		HomeYellowCards:   stats.HomeYellowCards,
		AwayYellowCards:   stats.AwayYellowCards,
		HomeRedCards:      stats.HomeRedCards,
		AwayRedCards:      stats.AwayRedCards,
	}
}
