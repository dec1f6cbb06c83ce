package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
)

func newNewsService(state testState, ids ...string) *NewsService {
	return NewNewsService(state.news, state.writer, &staticIDGenerator{ids: ids}, testLogger())
}

func TestNewsServiceListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	items := []news.Item{
		{ID: "n-old", Title: "Season opener", CreatedAt: base},
		{ID: "n-new", Title: "Derby recap", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "n-mid", Title: "Training update", CreatedAt: base.Add(24 * time.Hour)},
	}
	service := newNewsService(newTestState(nil, nil, items))

	got, err := service.ListNews(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"n-new", "n-mid", "n-old"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestNewsServiceCreateRequiresTitle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newNewsService(newTestState(nil, nil, nil), "n-1")

	_, err := service.CreateNews(ctx, adminPrincipal(), NewsInput{Title: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)

	item, err := service.CreateNews(ctx, adminPrincipal(), NewsInput{Title: "Cup draw", Rivalry: "vs Eagles"})
	require.NoError(t, err)
	require.Equal(t, "n-1", item.ID)
	require.Equal(t, "Cup draw", item.Title)
	require.False(t, item.CreatedAt.IsZero())
}

func TestNewsServiceUpdateKeepsCreatedAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	items := []news.Item{{ID: "n-1", Title: "Old title", CreatedAt: createdAt}}
	service := newNewsService(newTestState(nil, nil, items))

	updated, err := service.UpdateNews(ctx, adminPrincipal(), "n-1", NewsInput{Title: "New title", Details: "More words"})
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, createdAt, updated.CreatedAt)

	_, err = service.UpdateNews(ctx, adminPrincipal(), "missing", NewsInput{Title: "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsServiceDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	items := []news.Item{{ID: "n-1", Title: "Gone soon", CreatedAt: time.Now()}}
	service := newNewsService(newTestState(nil, nil, items))

	require.NoError(t, service.DeleteNews(ctx, adminPrincipal(), "n-1"))

	_, err := service.GetNews(ctx, "n-1")
	require.ErrorIs(t, err, ErrNotFound)

	err = service.DeleteNews(ctx, adminPrincipal(), "n-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsServiceMutationsRequireAdmin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	items := []news.Item{{ID: "n-1", Title: "Locked", CreatedAt: time.Now()}}
	service := newNewsService(newTestState(nil, nil, items), "n-2")

	var anon session.Principal

	_, err := service.CreateNews(ctx, anon, NewsInput{Title: "X"})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = service.UpdateNews(ctx, anon, "n-1", NewsInput{Title: "X"})
	require.ErrorIs(t, err, ErrUnauthorized)
	err = service.DeleteNews(ctx, anon, "n-1")
	require.ErrorIs(t, err, ErrUnauthorized)
}
