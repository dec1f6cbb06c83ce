package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	idgen "github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

// MatchInput carries the match creation form. Date is the only required
// field; Status defaults to upcoming.
type MatchInput struct {
	Date     string
	Time     string
	Location string
	Rivalry  string
	Notes    string
	Status   match.Status
}

// StatInput overwrites one or both halves of a player's per-match stat line.
// Nil leaves that half untouched.
type StatInput struct {
	Goals   *int
	Assists *int
}

// MatchDetail joins a match with the player records its rosters and ledger
// reference. Dangling IDs of deleted players are simply absent from Players.
type MatchDetail struct {
	Match   match.Match
	Players []player.Player
}

// ApplyResult reports what a reconciliation run changed.
type ApplyResult struct {
	Match          match.Match
	Deltas         []match.PlayerDelta
	UpdatedPlayers []player.Player
	SkippedIDs     []string
}

type MatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	writer     *StateWriter
	idgen      idgen.Generator
	logger     *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	writer *StateWriter,
	generator idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		writer:     writer,
		idgen:      generator,
		logger:     logger,
	}
}

// ListMatches returns matches filtered by status. Upcoming matches sort
// ascending by date+time, played matches descending, as on the club pages.
func (s *MatchService) ListMatches(ctx context.Context, status match.Status) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if status != "" {
		if _, ok := match.AllStatuses[status]; !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Date+out[i].Time, out[j].Date+out[j].Time
		if status == match.StatusPlayed {
			return a > b
		}
		return a < b
	})

	return out, nil
}

// GetMatch returns the match plus the still-existing players referenced by
// its rosters, stats or awards.
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}

	referenced := m.TeamSet()
	for id := range m.Stats {
		referenced[id] = struct{}{}
	}
	for _, id := range m.MOTM {
		referenced[id] = struct{}{}
	}
	for _, id := range m.Hattricks {
		referenced[id] = struct{}{}
	}
	if m.CleanSheetPlayer != "" {
		referenced[m.CleanSheetPlayer] = struct{}{}
	}

	ids := make([]string, 0, len(referenced))
	for id := range referenced {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	players := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		p, ok, err := s.playerRepo.GetByID(ctx, id)
		if err != nil {
			return MatchDetail{}, fmt.Errorf("get player: %w", err)
		}
		if !ok {
			continue // deleted player, dangling reference tolerated
		}
		players = append(players, p)
	}

	return MatchDetail{Match: m, Players: players}, nil
}

func (s *MatchService) CreateMatch(ctx context.Context, principal session.Principal, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return match.Match{}, err
	}
	if strings.TrimSpace(input.Date) == "" {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = match.StatusUpcoming
	}
	if _, ok := match.AllStatuses[status]; !ok {
		return match.Match{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.New(id, strings.TrimSpace(input.Date), status)
	m.Time = strings.TrimSpace(input.Time)
	m.Location = strings.TrimSpace(input.Location)
	m.Rivalry = strings.TrimSpace(input.Rivalry)
	m.Notes = strings.TrimSpace(input.Notes)

	err = s.writer.Commit(ctx, func(ctx context.Context) error {
		return s.matchRepo.Upsert(ctx, m)
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match created", "match_id", m.ID, "date", m.Date, "status", m.Status)

	return m, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, principal session.Principal, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}

	return s.writer.Commit(ctx, func(ctx context.Context) error {
		if _, err := s.getMatch(ctx, matchID); err != nil {
			return err
		}

		return s.matchRepo.Delete(ctx, matchID)
	})
}

// MarkPlayed converts an upcoming match to played; the transition never
// reverses.
func (s *MatchService) MarkPlayed(ctx context.Context, principal session.Principal, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.MarkPlayed")
	defer span.End()

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		return m.MarkPlayed()
	})
}

func (s *MatchService) AssignToTeam(ctx context.Context, principal session.Principal, matchID, playerID string, team match.Team) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AssignToTeam")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return match.Match{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		if _, ok, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
			return fmt.Errorf("get player: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		if err := m.AssignToTeam(playerID, team); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		return nil
	})
}

func (s *MatchService) Unassign(ctx context.Context, principal session.Principal, matchID, playerID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Unassign")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return match.Match{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		m.Unassign(playerID)
		return nil
	})
}

func (s *MatchService) SetStat(ctx context.Context, principal session.Principal, matchID, playerID string, input StatInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetStat")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return match.Match{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.Goals == nil && input.Assists == nil {
		return match.Match{}, fmt.Errorf("%w: goals or assists must be set", ErrInvalidInput)
	}

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		if input.Goals != nil {
			m.SetGoals(playerID, *input.Goals)
		}
		if input.Assists != nil {
			m.SetAssists(playerID, *input.Assists)
		}

		return nil
	})
}

func (s *MatchService) ToggleAward(ctx context.Context, principal session.Principal, matchID string, award match.Award, playerID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ToggleAward")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return match.Match{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		if err := m.ToggleAward(award, playerID); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil
	})
}

func (s *MatchService) ClearAward(ctx context.Context, principal session.Principal, matchID string, award match.Award) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ClearAward")
	defer span.End()

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		if err := m.ClearAward(award); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil
	})
}

func (s *MatchService) SetCleanSheet(ctx context.Context, principal session.Principal, matchID, playerID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetCleanSheet")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return match.Match{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		m.SetCleanSheet(playerID)
		return nil
	})
}

func (s *MatchService) ClearCleanSheet(ctx context.Context, principal session.Principal, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ClearCleanSheet")
	defer span.End()

	return s.mutate(ctx, principal, matchID, func(m *match.Match) error {
		m.ClearCleanSheet()
		return nil
	})
}

// ApplyToTotals commits the match's ledger into player career totals via the
// snapshot diff. Players, the new snapshot and the archive flush all happen
// under the state lock, so the run is atomic relative to other edits and
// repeated runs with no intervening edits are no-ops.
func (s *MatchService) ApplyToTotals(ctx context.Context, principal session.Principal, matchID string) (ApplyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ApplyToTotals")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return ApplyResult{}, err
	}

	var result ApplyResult
	err := s.writer.Commit(ctx, func(ctx context.Context) error {
		m, err := s.getMatch(ctx, matchID)
		if err != nil {
			return err
		}

		deltas, next := match.Reconcile(m)

		for _, delta := range deltas {
			p, ok, err := s.playerRepo.GetByID(ctx, delta.PlayerID)
			if err != nil {
				return fmt.Errorf("get player: %w", err)
			}
			if !ok {
				// Deleted player: the delta is dropped, the snapshot below
				// still advances so it is not re-attempted forever.
				result.SkippedIDs = append(result.SkippedIDs, delta.PlayerID)
				continue
			}

			p.Goals += delta.Goals
			p.Assists += delta.Assists
			p.Matches += delta.Matches
			if err := s.playerRepo.Upsert(ctx, p); err != nil {
				return fmt.Errorf("update player totals: %w", err)
			}
			result.UpdatedPlayers = append(result.UpdatedPlayers, p)
		}

		m.Applied = next
		if err := s.matchRepo.Upsert(ctx, m); err != nil {
			return fmt.Errorf("update match snapshot: %w", err)
		}

		result.Match = m
		result.Deltas = deltas

		return nil
	})
	if err != nil {
		return ApplyResult{}, err
	}

	s.logger.InfoContext(ctx, "match reconciled",
		"match_id", matchID,
		"delta_count", len(result.Deltas),
		"players_updated", len(result.UpdatedPlayers),
		"players_skipped", len(result.SkippedIDs),
	)

	return result, nil
}

// mutate runs an admin ledger edit on one match under the state lock.
func (s *MatchService) mutate(ctx context.Context, principal session.Principal, matchID string, fn func(*match.Match) error) (match.Match, error) {
	if err := requireAdmin(principal); err != nil {
		return match.Match{}, err
	}

	var out match.Match
	err := s.writer.Commit(ctx, func(ctx context.Context) error {
		m, err := s.getMatch(ctx, matchID)
		if err != nil {
			return err
		}

		if err := fn(&m); err != nil {
			return err
		}

		if err := s.matchRepo.Upsert(ctx, m); err != nil {
			return fmt.Errorf("save match: %w", err)
		}
		out = m

		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	return out, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}
