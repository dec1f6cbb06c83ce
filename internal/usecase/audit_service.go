package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

const defaultAuditWorkers = 4

// AuditRow compares one player's stored career counters against the totals
// implied by applied match snapshots. Drift columns are stored minus applied;
// a nonzero drift is either a pre-seeded baseline or a manual counter edit.
type AuditRow struct {
	PlayerID       string
	PlayerName     string
	StoredGoals    int
	StoredAssists  int
	StoredMatches  int
	AppliedGoals   int
	AppliedAssists int
	AppliedMatches int
	DriftGoals     int
	DriftAssists   int
	DriftMatches   int
}

// AuditResult is the full drift report. Orphaned IDs appear in snapshots but
// no longer resolve to a player.
type AuditResult struct {
	MatchCount  int
	PlayerCount int
	WorkerCount int
	DriftCount  int
	Rows        []AuditRow
	OrphanedIDs []string
}

// AuditService recomputes the totals implied by every match's applied
// snapshot and reports drift against stored player counters. It only reads.
type AuditService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	maxWorkers int
	logger     *logging.Logger
}

func NewAuditService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	maxWorkers int,
	logger *logging.Logger,
) *AuditService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuditService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

type auditContribution struct {
	playerID string
	goals    int
	assists  int
	matches  int
}

// Run sums applied snapshots across all matches on a bounded worker pool and
// joins the totals against the player list.
func (s *AuditService) Run(ctx context.Context, principal session.Principal) (AuditResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditService.Run")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return AuditResult{}, err
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return AuditResult{}, fmt.Errorf("list matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return AuditResult{}, fmt.Errorf("list players: %w", err)
	}

	workerCount := normalizeAuditWorkerCount(s.maxWorkers, len(matches))
	result := AuditResult{
		MatchCount:  len(matches),
		PlayerCount: len(players),
		WorkerCount: workerCount,
	}

	applied := make(map[string]auditContribution, len(players))
	if len(matches) > 0 {
		pool, err := ants.NewPool(workerCount)
		if err != nil {
			return AuditResult{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		contributions := make(chan []auditContribution, len(matches))

		var workers sync.WaitGroup
		for _, m := range matches {
			m := m
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				contributions <- sumAppliedSnapshot(m)
			}); err != nil {
				workers.Done()
				return AuditResult{}, fmt.Errorf("submit match to worker pool: %w", err)
			}
		}

		workers.Wait()
		close(contributions)

		for batch := range contributions {
			for _, c := range batch {
				agg := applied[c.playerID]
				agg.playerID = c.playerID
				agg.goals += c.goals
				agg.assists += c.assists
				agg.matches += c.matches
				applied[c.playerID] = agg
			}
		}
	}

	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	result.Rows = make([]AuditRow, 0, len(players))
	for _, p := range players {
		c := applied[p.ID]
		row := AuditRow{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			StoredGoals:    p.Goals,
			StoredAssists:  p.Assists,
			StoredMatches:  p.Matches,
			AppliedGoals:   c.goals,
			AppliedAssists: c.assists,
			AppliedMatches: c.matches,
			DriftGoals:     p.Goals - c.goals,
			DriftAssists:   p.Assists - c.assists,
			DriftMatches:   p.Matches - c.matches,
		}
		if row.DriftGoals != 0 || row.DriftAssists != 0 || row.DriftMatches != 0 {
			result.DriftCount++
		}
		result.Rows = append(result.Rows, row)
	}

	for id := range applied {
		if _, ok := playersByID[id]; !ok {
			result.OrphanedIDs = append(result.OrphanedIDs, id)
		}
	}
	sort.Strings(result.OrphanedIDs)

	s.logger.InfoContext(ctx, "reconciliation audit finished",
		"matches", result.MatchCount,
		"players", result.PlayerCount,
		"workers", result.WorkerCount,
		"drift_rows", result.DriftCount,
		"orphaned_ids", len(result.OrphanedIDs),
	)

	return result, nil
}

// sumAppliedSnapshot flattens one match's applied snapshot into per-player
// contributions. Counted marks whether the match itself went into the
// player's match tally.
func sumAppliedSnapshot(m match.Match) []auditContribution {
	out := make([]auditContribution, 0, len(m.Applied))
	for id, stat := range m.Applied {
		c := auditContribution{
			playerID: id,
			goals:    stat.Goals,
			assists:  stat.Assists,
		}
		if stat.Counted {
			c.matches = 1
		}
		out = append(out, c)
	}

	return out
}

func normalizeAuditWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultAuditWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	if count < 1 {
		count = 1
	}

	return count
}
