package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/domain/valuation"
	idgen "github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

// PlayerView is a player with its valuation derived on read. Valuations are
// never cached: every view recomputes from the current counters.
type PlayerView struct {
	player.Player
	Valuation valuation.Valuation
}

// PlayerInput carries the full editable player form. Updates are absolute
// overwrites of every field, mirroring the admin edit form.
type PlayerInput struct {
	Name            string
	Photo           string
	Role            player.Role
	Goals           int
	Assists         int
	Matches         int
	MOTMCount       int
	HattrickCount   int
	CleanSheetCount int
}

type PlayerService struct {
	playerRepo player.Repository
	ladder     valuation.Ladder
	writer     *StateWriter
	idgen      idgen.Generator
	logger     *logging.Logger
}

func NewPlayerService(
	playerRepo player.Repository,
	ladder valuation.Ladder,
	writer *StateWriter,
	generator idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		ladder:     ladder,
		writer:     writer,
		idgen:      generator,
		logger:     logger,
	}
}

// ListPlayers returns all players with valuations, optionally filtered by a
// case-insensitive name substring.
func (s *PlayerService) ListPlayers(ctx context.Context, query string) ([]PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]PlayerView, 0, len(players))
	for _, p := range players {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, s.view(p))
	}

	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerView{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return PlayerView{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return s.view(p), nil
}

// Ranking returns all players sorted by total value descending.
func (s *PlayerService) Ranking(ctx context.Context) ([]PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Ranking")
	defer span.End()

	views, err := s.ListPlayers(ctx, "")
	if err != nil {
		return nil, err
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Valuation.Total > views[j].Valuation.Total
	})

	return views, nil
}

// Ladder exposes the pricing table for display.
func (s *PlayerService) Ladder() valuation.Ladder {
	return s.ladder
}

func (s *PlayerService) CreatePlayer(ctx context.Context, principal session.Principal, input PlayerInput) (PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return PlayerView{}, err
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return PlayerView{}, fmt.Errorf("generate player id: %w", err)
	}

	p := playerFromInput(id, input)
	if err := p.Validate(); err != nil {
		return PlayerView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.writer.Commit(ctx, func(ctx context.Context) error {
		return s.playerRepo.Upsert(ctx, p)
	})
	if err != nil {
		return PlayerView{}, err
	}

	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "name", p.Name)

	return s.view(p), nil
}

// UpdatePlayer overwrites every editable field, including the award counters
// that are only ever promoted manually.
func (s *PlayerService) UpdatePlayer(ctx context.Context, principal session.Principal, playerID string, input PlayerInput) (PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return PlayerView{}, err
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p := playerFromInput(playerID, input)
	if err := p.Validate(); err != nil {
		return PlayerView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.writer.Commit(ctx, func(ctx context.Context) error {
		_, ok, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		return s.playerRepo.Upsert(ctx, p)
	})
	if err != nil {
		return PlayerView{}, err
	}

	return s.view(p), nil
}

// DeletePlayer removes the player record. Match rosters and ledgers keep the
// dangling ID; readers filter it and reconciliation skips it.
func (s *PlayerService) DeletePlayer(ctx context.Context, principal session.Principal, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	err := s.writer.Commit(ctx, func(ctx context.Context) error {
		_, ok, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		return s.playerRepo.Delete(ctx, playerID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)

	return nil
}

func (s *PlayerService) view(p player.Player) PlayerView {
	return PlayerView{
		Player: p,
		Valuation: valuation.Compute(valuation.Counters{
			Goals:           p.Goals,
			Assists:         p.Assists,
			Matches:         p.Matches,
			MOTMCount:       p.MOTMCount,
			HattrickCount:   p.HattrickCount,
			CleanSheetCount: p.CleanSheetCount,
		}, s.ladder),
	}
}

func playerFromInput(id string, input PlayerInput) player.Player {
	return player.Player{
		ID:              id,
		Name:            strings.TrimSpace(input.Name),
		Photo:           strings.TrimSpace(input.Photo),
		Role:            input.Role,
		Goals:           input.Goals,
		Assists:         input.Assists,
		Matches:         input.Matches,
		MOTMCount:       input.MOTMCount,
		HattrickCount:   input.HattrickCount,
		CleanSheetCount: input.CleanSheetCount,
	}
}
