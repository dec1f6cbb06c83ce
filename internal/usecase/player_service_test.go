package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/domain/valuation"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/repository/memory"
)

func newPlayerService(state testState, ids ...string) *PlayerService {
	return NewPlayerService(state.players, valuation.DefaultLadder(), state.writer, &staticIDGenerator{ids: ids}, testLogger())
}

func TestPlayerServiceListComputesValuationOnRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	state := newTestState(memory.SeedPlayers(), nil, nil)
	service := newPlayerService(state)

	views, err := service.ListPlayers(ctx, "")
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Hassan: (2 + 0.7*1) / 2 = 1.35 -> threshold 1.2 row
	hassan := views[0]
	require.Equal(t, "p-hassan-hojeij", hassan.ID)
	require.Equal(t, 1.35, hassan.Valuation.Score)
	require.Equal(t, 3.0, hassan.Valuation.PricePerMatch)
	require.Equal(t, "3ade", hassan.Valuation.Tier)
	require.Equal(t, 3.0, hassan.Valuation.Total)

	// Ali: no goals or assists, clean sheet bonus only
	ali := views[2]
	require.Equal(t, 0.0, ali.Valuation.Score)
	require.Equal(t, "TA3BENNN", ali.Valuation.Tier)
	require.Equal(t, 0.3, ali.Valuation.Bonus)
	require.Equal(t, 0.6, ali.Valuation.Total)
}

func TestPlayerServiceListFiltersByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newPlayerService(newTestState(memory.SeedPlayers(), nil, nil))

	views, err := service.ListPlayers(ctx, "  hAsSan ")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Hassan Hojeij", views[0].Name)

	views, err = service.ListPlayers(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestPlayerServiceRankingSortsByTotalDesc(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	players := []player.Player{
		{ID: "p-low", Name: "Low", Role: player.RoleDefender, Matches: 2},
		{ID: "p-high", Name: "High", Role: player.RoleForward, Goals: 6, Matches: 2},
	}
	service := newPlayerService(newTestState(players, nil, nil))

	views, err := service.Ranking(ctx)
	require.NoError(t, err)
	require.Equal(t, "p-high", views[0].ID)
	require.Equal(t, "p-low", views[1].ID)
	require.Greater(t, views[0].Valuation.Total, views[1].Valuation.Total)
}

func TestPlayerServiceCreateUpdateDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	admin := adminPrincipal()
	state := newTestState(nil, nil, nil)
	service := newPlayerService(state, "p-new")

	created, err := service.CreatePlayer(ctx, admin, PlayerInput{Name: "  Omar  ", Role: player.RoleGoalkeeper})
	require.NoError(t, err)
	require.Equal(t, "p-new", created.ID)
	require.Equal(t, "Omar", created.Name)

	// updates are absolute overwrites, award counters included
	updated, err := service.UpdatePlayer(ctx, admin, "p-new", PlayerInput{
		Name:      "Omar",
		Role:      player.RoleGoalkeeper,
		Goals:     1,
		Matches:   4,
		MOTMCount: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 1, updated.Goals)
	require.Equal(t, 2, updated.MOTMCount)
	require.Equal(t, 1.0, updated.Valuation.Bonus)

	require.NoError(t, service.DeletePlayer(ctx, admin, "p-new"))

	_, err = service.GetPlayer(ctx, "p-new")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerServiceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	admin := adminPrincipal()
	service := newPlayerService(newTestState(nil, nil, nil), "p-1", "p-2")

	_, err := service.CreatePlayer(ctx, admin, PlayerInput{Name: "", Role: player.RoleForward})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreatePlayer(ctx, admin, PlayerInput{Name: "Sami", Role: "ST"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreatePlayer(ctx, admin, PlayerInput{Name: "Sami", Role: player.RoleForward, Goals: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.UpdatePlayer(ctx, admin, "missing", PlayerInput{Name: "Sami", Role: player.RoleForward})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerServiceMutationsRequireAdmin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newPlayerService(newTestState(memory.SeedPlayers(), nil, nil))

	var anon session.Principal

	_, err := service.CreatePlayer(ctx, anon, PlayerInput{Name: "X", Role: player.RoleForward})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = service.UpdatePlayer(ctx, anon, "p-hassan-hojeij", PlayerInput{Name: "X", Role: player.RoleForward})
	require.ErrorIs(t, err, ErrUnauthorized)
	err = service.DeletePlayer(ctx, anon, "p-hassan-hojeij")
	require.ErrorIs(t, err, ErrUnauthorized)
}
