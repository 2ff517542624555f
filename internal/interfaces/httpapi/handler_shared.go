package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type Handler struct {
	matchService       *usecase.MatchService
	newsService        *usecase.NewsService
	playerService      *usecase.PlayerService
	sponsorService     *usecase.SponsorService
	newsletterService  *usecase.NewsletterService
	maintenanceService *usecase.MaintenanceService
	logger             *logging.Logger
	validator          *validator.Validate
	includeErrorDetail bool
	readyCheck         func(context.Context) error
}

func NewHandler(
	matchService *usecase.MatchService,
	newsService *usecase.NewsService,
	playerService *usecase.PlayerService,
	sponsorService *usecase.SponsorService,
	newsletterService *usecase.NewsletterService,
	maintenanceService *usecase.MaintenanceService,
	logger *logging.Logger,
	includeErrorDetail bool,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:       matchService,
		newsService:        newsService,
		playerService:      playerService,
		sponsorService:     sponsorService,
		newsletterService:  newsletterService,
		maintenanceService: maintenanceService,
		logger:             logger,
		validator:          validator.New(),
		includeErrorDetail: includeErrorDetail,
	}
}

// SetReadinessCheck wires the dependency probe readiness reports on.
// Without one, Readyz only confirms the process is serving.
func (h *Handler) SetReadinessCheck(check func(context.Context) error) {
	h.readyCheck = check
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeErrorDetail(ctx, w, err, h.includeErrorDetail)
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func queryInt(r *http.Request, name string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want RFC 3339 or YYYY-MM-DD", usecase.ErrInvalidInput, raw)
	}
	return parsed.UTC(), nil
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

type matchEventDTO struct {
	Type     string `json:"type"`
	Minute   int    `json:"minute"`
	Team     string `json:"team,omitempty"`
	Player   string `json:"player,omitempty"`
	AssistBy string `json:"assistBy,omitempty"`
}

type matchStatsDTO struct {
	HomePossession    int `json:"homePossession"`
	AwayPossession    int `json:"awayPossession"`
	HomeShots         int `json:"homeShots"`
	AwayShots         int `json:"awayShots"`
	HomeShotsOnTarget int `json:"homeShotsOnTarget"`
	AwayShotsOnTarget int `json:"awayShotsOnTarget"`
	HomeCorners       int `json:"homeCorners"`
	AwayCorners       int `json:"awayCorners"`
	HomeFouls         int `json:"homeFouls"`
	AwayFouls         int `json:"awayFouls"`
	HomeYellowCards   int `json:"homeYellowCards"`
	AwayYellowCards   int `json:"awayYellowCards"`
	HomeRedCards      int `json:"homeRedCards"`
	AwayRedCards      int `json:"awayRedCards"`
}

type matchDTO struct {
	ID          string          `json:"id"`
	Competition string          `json:"competition"`
	Season      string          `json:"season,omitempty"`
	Matchday    int             `json:"matchday,omitempty"`
	Date        string          `json:"date"`
	HomeTeam    string          `json:"homeTeam"`
	AwayTeam    string          `json:"awayTeam"`
	Venue       string          `json:"venue,omitempty"`
	Status      string          `json:"status"`
	HomeScore   int             `json:"homeScore"`
	AwayScore   int             `json:"awayScore"`
	Minute      int             `json:"minute,omitempty"`
	Result      string          `json:"result,omitempty"`
	Events      []matchEventDTO `json:"events,omitempty"`
	Stats       matchStatsDTO   `json:"stats"`
	Highlights  string          `json:"highlights,omitempty"`
	TicketURL   string          `json:"ticketUrl,omitempty"`
	StreamURL   string          `json:"streamUrl,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}

func matchToDTO(v match.Match) matchDTO {
	events := make([]matchEventDTO, 0, len(v.Events))
	for _, event := range v.Events {
		events = append(events, matchEventDTO{
			Type:     event.Type,
			Minute:   event.Minute,
			Team:     event.Team,
			Player:   event.Player,
			AssistBy: event.AssistBy,
		})
	}

	result, _ := v.Result()

	return matchDTO{
		ID:          v.ID,
		Competition: v.Competition,
		Season:      v.Season,
		Matchday:    v.Matchday,
		Date:        formatTime(v.Date),
		HomeTeam:    v.HomeTeam,
		AwayTeam:    v.AwayTeam,
		Venue:       v.Venue,
		Status:      v.Status,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		Minute:      v.Minute,
		Result:      result,
		Events:      events,
		Stats:       matchStatsToDTO(v.Stats),
		Highlights:  v.Highlights,
		TicketURL:   v.TicketURL,
		StreamURL:   v.StreamURL,
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

func matchStatsToDTO(v match.Stats) matchStatsDTO {
	return matchStatsDTO{
		HomePossession:    v.HomePossession,
		AwayPossession:    v.AwayPossession,
		HomeShots:         v.HomeShots,
		AwayShots:         v.AwayShots,
		HomeShotsOnTarget: v.HomeShotsOnTarget,
		AwayShotsOnTarget: v.AwayShotsOnTarget,
		HomeCorners:       v.HomeCorners,
		AwayCorners:       v.AwayCorners,
		HomeFouls:         v.HomeFouls,
		AwayFouls:         v.AwayFouls,
		HomeYellowCards:   v.HomeYellowCards,
		AwayYellowCards:   v.AwayYellowCards,
		HomeRedCards:      v.HomeRedCards,
		AwayRedCards:      v.AwayRedCards,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

type newsDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content,omitempty"`
	Image       string   `json:"image"`
	AuthorID    string   `json:"authorId,omitempty"`
	AuthorName  string   `json:"authorName,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
	Views       int      `json:"views"`
	PublishDate string   `json:"publishDate,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

func newsToDTO(v news.Article) newsDTO {
	return newsDTO{
		ID:          v.ID,
		Title:       v.Title,
		Slug:        v.Slug,
		Excerpt:     v.Excerpt,
		Content:     v.Content,
		Image:       v.Image,
		AuthorID:    v.AuthorID,
		AuthorName:  v.AuthorName,
		Category:    v.Category,
		Tags:        append([]string{}, v.Tags...),
		IsPublished: v.IsPublished,
		Views:       v.Views,
		PublishDate: formatTime(v.PublishDate),
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

type playerStatsDTO struct {
	Appearances   int `json:"appearances"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	MinutesPlayed int `json:"minutesPlayed"`
}

type playerDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Number      int            `json:"number"`
	Position    string         `json:"position"`
	Nationality string         `json:"nationality,omitempty"`
	DateOfBirth string         `json:"dateOfBirth,omitempty"`
	Age         int            `json:"age,omitempty"`
	HeightCm    int            `json:"heightCm,omitempty"`
	WeightKg    int            `json:"weightKg,omitempty"`
	Photo       string         `json:"photo,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	JoinedAt    string         `json:"joinedAt,omitempty"`
	IsActive    bool           `json:"isActive"`
	Stats       playerStatsDTO `json:"stats"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

func playerToDTO(v player.Player, now time.Time) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Slug:        v.Slug,
		Number:      v.Number,
		Position:    v.Position,
		Nationality: v.Nationality,
		DateOfBirth: formatTime(v.DateOfBirth),
		Age:         v.Age(now),
		HeightCm:    v.HeightCm,
		WeightKg:    v.WeightKg,
		Photo:       v.Photo,
		Bio:         v.Bio,
		JoinedAt:    formatTime(v.JoinedAt),
		IsActive:    v.IsActive,
		Stats: playerStatsDTO{
			Appearances:   v.Stats.Appearances,
			Goals:         v.Stats.Goals,
			Assists:       v.Stats.Assists,
			YellowCards:   v.Stats.YellowCards,
			RedCards:      v.Stats.RedCards,
			MinutesPlayed: v.Stats.MinutesPlayed,
		},
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

type sponsorDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	URL          string `json:"url,omitempty"`
	Level        string `json:"level"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func sponsorToDTO(v sponsor.Sponsor) sponsorDTO {
	return sponsorDTO{
		ID:           v.ID,
		Name:         v.Name,
		Logo:         v.Logo,
		URL:          v.URL,
		Level:        v.Level,
		Description:  v.Description,
		DisplayOrder: v.DisplayOrder,
		IsActive:     v.IsActive,
		StartDate:    formatTime(v.StartDate),
		EndDate:      formatTime(v.EndDate),
		CreatedAt:    formatTime(v.CreatedAt),
		UpdatedAt:    formatTime(v.UpdatedAt),
	}
}

func sponsorsToDTO(items []sponsor.Sponsor) []sponsorDTO {
	out := make([]sponsorDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sponsorToDTO(item))
	}
	return out
}

type preferencesDTO struct {
	News       bool `json:"news"`
	Matches    bool `json:"matches"`
	Events     bool `json:"events"`
	Promotions bool `json:"promotions"`
}

type subscriptionDTO struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	IsActive     bool           `json:"isActive"`
	Confirmed    bool           `json:"confirmed"`
	Preferences  preferencesDTO `json:"preferences"`
	SubscribedAt string         `json:"subscribedAt,omitempty"`
}

func subscriptionToDTO(v newsletter.Subscription) subscriptionDTO {
	return subscriptionDTO{
		ID:        v.ID,
		Email:     v.Email,
		IsActive:  v.IsActive,
		Confirmed: !v.ConfirmedAt.IsZero(),
		Preferences: preferencesDTO{
			News:       v.Preferences.News,
			Matches:    v.Preferences.Matches,
			Events:     v.Preferences.Events,
			Promotions: v.Preferences.Promotions,
		},
		SubscribedAt: formatTime(v.SubscribedAt),
	}
}
