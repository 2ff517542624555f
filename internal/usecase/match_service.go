package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
)

const (
	defaultMatchPageSize    = 10
	maxMatchPageSize        = 100
	defaultFixtureListLimit = 5
)

type ListMatchesInput struct {
	Competition string
	Season      string
	Status      string
	Limit       int
	Page        int
	Sort        string
}

type CreateMatchInput struct {
	Competition string
	Season      string
	Matchday    int
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	Venue       string
	Status      string
	HomeScore   int
	AwayScore   int
	Events      []match.Event
	Stats       match.Stats
	Highlights  string
	TicketURL   string
	StreamURL   string
}

// UpdateMatchResultInput is a partial update. Nil fields keep the
// stored value.
type UpdateMatchResultInput struct {
	Status    *string
	HomeScore *int
	AwayScore *int
	Minute    *int
	Events    []match.Event
	Stats     *match.Stats
}

// MatchPage is one listing page plus the numbers the API reports
// alongside it.
type MatchPage struct {
	Items        []match.Match
	TotalMatches int
	TotalPages   int
	CurrentPage  int
}

type MatchService struct {
	matchRepo match.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *MatchService) List(ctx context.Context, input ListMatchesInput) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	filter := match.Filter{
		Competition: strings.TrimSpace(input.Competition),
		Season:      strings.TrimSpace(input.Season),
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		normalized := match.NormalizeStatus(status)
		if !match.IsValidStatus(normalized) {
			return MatchPage{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
		}
		filter.Status = normalized
	}

	page := normalizeMatchPage(input)
	items, total, err := s.matchRepo.List(ctx, filter, page)
	if err != nil {
		return MatchPage{}, fmt.Errorf("list matches: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}

	return MatchPage{
		Items:        items,
		TotalMatches: total,
		TotalPages:   totalPages,
		CurrentPage:  page.Page,
	}, nil
}

// Fixtures lists upcoming matches in kickoff order.
func (s *MatchService) Fixtures(ctx context.Context, competition string, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = defaultFixtureListLimit
	}

	fixtures, err := s.matchRepo.ListFixtures(ctx, s.now().UTC(), strings.TrimSpace(competition), limit)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return fixtures, nil
}

// Results lists finished matches, most recent first.
func (s *MatchService) Results(ctx context.Context, competition string, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = defaultFixtureListLimit
	}

	results, err := s.matchRepo.ListResults(ctx, s.now().UTC(), strings.TrimSpace(competition), limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	return results, nil
}

func (s *MatchService) Live(ctx context.Context) ([]match.Match, error) {
	live, err := s.matchRepo.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}

	return live, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	m, err := match.New(input.Competition, input.Season, input.Matchday, input.Date, input.HomeTeam, input.AwayTeam, input.Venue, input.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := validateMatchEvents(input.Events); err != nil {
		return match.Match{}, err
	}

	if err := s.ensureNoMatchClash(ctx, m.HomeTeam, m.AwayTeam, m.Date, ""); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	m.ID = matchID
	m.HomeScore = input.HomeScore
	m.AwayScore = input.AwayScore
	m.Events = input.Events
	m.Stats = input.Stats
	m.Highlights = strings.TrimSpace(input.Highlights)
	m.TicketURL = strings.TrimSpace(input.TicketURL)
	m.StreamURL = strings.TrimSpace(input.StreamURL)
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.matchRepo.Create(ctx, m); err != nil {
		if isDuplicateConstraintError(err) {
			return match.Match{}, fmt.Errorf("%w: a match between these teams on this date already exists", ErrConflict)
		}
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return m, nil
}

func (s *MatchService) Update(ctx context.Context, matchID string, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	current, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	next, err := match.New(input.Competition, input.Season, input.Matchday, input.Date, input.HomeTeam, input.AwayTeam, input.Venue, input.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := validateMatchEvents(input.Events); err != nil {
		return match.Match{}, err
	}

	if err := s.ensureNoMatchClash(ctx, next.HomeTeam, next.AwayTeam, next.Date, current.ID); err != nil {
		return match.Match{}, err
	}

	next.ID = current.ID
	next.HomeScore = input.HomeScore
	next.AwayScore = input.AwayScore
	next.Minute = current.Minute
	next.Events = input.Events
	next.Stats = input.Stats
	next.Highlights = strings.TrimSpace(input.Highlights)
	next.TicketURL = strings.TrimSpace(input.TicketURL)
	next.StreamURL = strings.TrimSpace(input.StreamURL)
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Update(ctx, next); err != nil {
		if isDuplicateConstraintError(err) {
			return match.Match{}, fmt.Errorf("%w: a match between these teams on this date already exists", ErrConflict)
		}
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return next, nil
}

// UpdateResult applies a live score patch. Only the fields present in
// the input change.
func (s *MatchService) UpdateResult(ctx context.Context, matchID string, input UpdateMatchResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateResult")
	defer span.End()

	m, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	if input.Status != nil {
		status := match.NormalizeStatus(*input.Status)
		if !match.IsValidStatus(status) {
			return match.Match{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *input.Status)
		}
		m.Status = status
	}
	if input.HomeScore != nil {
		if *input.HomeScore < 0 {
			return match.Match{}, fmt.Errorf("%w: home score must not be negative", ErrInvalidInput)
		}
		m.HomeScore = *input.HomeScore
	}
	if input.AwayScore != nil {
		if *input.AwayScore < 0 {
			return match.Match{}, fmt.Errorf("%w: away score must not be negative", ErrInvalidInput)
		}
		m.AwayScore = *input.AwayScore
	}
	if input.Minute != nil {
		if *input.Minute < 0 {
			return match.Match{}, fmt.Errorf("%w: minute must not be negative", ErrInvalidInput)
		}
		m.Minute = *input.Minute
	}
	if input.Events != nil {
		if err := validateMatchEvents(input.Events); err != nil {
			return match.Match{}, err
		}
		m.Events = input.Events
	}
	if input.Stats != nil {
		m.Stats = *input.Stats
	}
	m.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match result: %w", err)
	}

	return m, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	if _, err := s.Get(ctx, matchID); err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, strings.TrimSpace(matchID)); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

func (s *MatchService) ensureNoMatchClash(ctx context.Context, homeTeam, awayTeam string, date time.Time, excludeID string) error {
	existing, exists, err := s.matchRepo.FindByTeamsAndDate(ctx, homeTeam, awayTeam, date)
	if err != nil {
		return fmt.Errorf("check duplicate match: %w", err)
	}
	if exists && existing.ID != excludeID {
		return fmt.Errorf("%w: a match between these teams on this date already exists", ErrConflict)
	}
	return nil
}

func normalizeMatchPage(input ListMatchesInput) match.Page {
	page := match.Page{
		Limit: input.Limit,
		Page:  input.Page,
		Sort:  strings.TrimSpace(input.Sort),
	}
	if page.Limit <= 0 {
		page.Limit = defaultMatchPageSize
	}
	if page.Limit > maxMatchPageSize {
		page.Limit = maxMatchPageSize
	}
	if page.Page <= 0 {
		page.Page = 1
	}
	if page.Sort != "date" {
		page.Sort = "-date"
	}
	return page
}

func validateMatchEvents(events []match.Event) error {
	for _, e := range events {
		if !match.IsValidEventType(e.Type) {
			return fmt.Errorf("%w: invalid event type %q", ErrInvalidInput, e.Type)
		}
		if e.Minute < 0 {
			return fmt.Errorf("%w: event minute must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
