package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
)

type ListPlayersInput struct {
	Position string
	Active   *bool
}

type CreatePlayerInput struct {
	Name        string
	Slug        string
	Number      int
	Position    string
	Nationality string
	DateOfBirth time.Time
	HeightCm    int
	WeightKg    int
	Photo       string
	Bio         string
	JoinedAt    time.Time
	IsActive    *bool
	Stats       player.Stats
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context, input ListPlayersInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	filter := player.Filter{Active: input.Active}
	if position := strings.TrimSpace(input.Position); position != "" {
		if !player.IsValidPosition(position) {
			return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, input.Position)
		}
		filter.Position = position
	}

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// Get resolves a player by ID or slug.
func (s *PlayerService) Get(ctx context.Context, ref string) (player.Player, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return player.Player{}, fmt.Errorf("%w: player id or slug is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, ref)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		p, exists, err = s.playerRepo.GetBySlug(ctx, ref)
		if err != nil {
			return player.Player{}, fmt.Errorf("get player by slug: %w", err)
		}
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, ref)
	}

	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p, err := player.New(input.Name, input.Slug, input.Position, input.Nationality, input.Number, input.DateOfBirth)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.ensurePlayerSlugAvailable(ctx, p.Slug, ""); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	p.ID = playerID
	p.HeightCm = input.HeightCm
	p.WeightKg = input.WeightKg
	p.Photo = strings.TrimSpace(input.Photo)
	p.Bio = strings.TrimSpace(input.Bio)
	p.JoinedAt = input.JoinedAt
	p.Stats = input.Stats
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.playerRepo.Create(ctx, p); err != nil {
		if isDuplicateConstraintError(err) {
			return player.Player{}, fmt.Errorf("%w: a player with slug %q already exists", ErrConflict, p.Slug)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	next, err := player.New(input.Name, input.Slug, input.Position, input.Nationality, input.Number, input.DateOfBirth)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.ensurePlayerSlugAvailable(ctx, next.Slug, current.ID); err != nil {
		return player.Player{}, err
	}

	next.ID = current.ID
	next.HeightCm = input.HeightCm
	next.WeightKg = input.WeightKg
	next.Photo = strings.TrimSpace(input.Photo)
	next.Bio = strings.TrimSpace(input.Bio)
	next.JoinedAt = input.JoinedAt
	next.Stats = input.Stats
	next.IsActive = current.IsActive
	if input.IsActive != nil {
		next.IsActive = *input.IsActive
	}
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now().UTC()

	if err := s.playerRepo.Update(ctx, next); err != nil {
		if isDuplicateConstraintError(err) {
			return player.Player{}, fmt.Errorf("%w: a player with slug %q already exists", ErrConflict, next.Slug)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return next, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (s *PlayerService) ensurePlayerSlugAvailable(ctx context.Context, slug, excludeID string) error {
	existing, exists, err := s.playerRepo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("check player slug: %w", err)
	}
	if exists && existing.ID != excludeID {
		return fmt.Errorf("%w: a player with slug %q already exists", ErrConflict, slug)
	}
	return nil
}
