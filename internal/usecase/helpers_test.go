package usecase

import (
	"fmt"
	"time"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

// staticIDGenerator hands out a fixed ID sequence so tests can address
// created records.
type staticIDGenerator struct {
	ids  []string
	next int
}

func (g *staticIDGenerator) NewID() (string, error) {
	if g.next >= len(g.ids) {
		return "", fmt.Errorf("id sequence exhausted")
	}
	id := g.ids[g.next]
	g.next++

	return id, nil
}

type testState struct {
	players *memory.PlayerRepository
	matches *memory.MatchRepository
	news    *memory.NewsRepository
	writer  *StateWriter
}

// newTestState wires memory repositories behind a StateWriter with no
// archive, which is how every service test builds its world.
func newTestState(players []player.Player, matches []match.Match, items []news.Item) testState {
	playerRepo := memory.NewPlayerRepository(players)
	matchRepo := memory.NewMatchRepository(matches)
	newsRepo := memory.NewNewsRepository(items)

	return testState{
		players: playerRepo,
		matches: matchRepo,
		news:    newsRepo,
		writer:  NewStateWriter(playerRepo, matchRepo, newsRepo, nil),
	}
}

func adminPrincipal() session.Principal {
	now := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)

	return session.Principal{
		Token:     "test-admin-token",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}
