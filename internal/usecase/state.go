package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/storage"
)

// Saver persists the full club state. Satisfied by storage.Archive; tests may
// pass nil to skip persistence.
type Saver interface {
	Save(ctx context.Context, snap storage.Snapshot) error
}

// StateWriter serializes every mutation across players, matches and news, and
// writes the full state through to the archive afterwards. Holding one lock
// across all three collections is what makes reconciliation atomic relative
// to concurrent ledger edits.
type StateWriter struct {
	mu         sync.Mutex
	playerRepo player.Repository
	matchRepo  match.Repository
	newsRepo   news.Repository
	archive    Saver
}

func NewStateWriter(
	playerRepo player.Repository,
	matchRepo match.Repository,
	newsRepo news.Repository,
	archive Saver,
) *StateWriter {
	return &StateWriter{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		newsRepo:   newsRepo,
		archive:    archive,
	}
}

// Commit runs fn under the state lock and flushes the resulting state to the
// archive. fn failing skips the flush.
func (w *StateWriter) Commit(ctx context.Context, fn func(ctx context.Context) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := fn(ctx); err != nil {
		return err
	}

	return w.flush(ctx)
}

func (w *StateWriter) flush(ctx context.Context) error {
	if w.archive == nil {
		return nil
	}

	players, err := w.playerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list players for snapshot: %w", err)
	}
	matches, err := w.matchRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list matches for snapshot: %w", err)
	}
	items, err := w.newsRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list news for snapshot: %w", err)
	}

	if err := w.archive.Save(ctx, storage.Snapshot{
		Players: players,
		News:    items,
		Matches: matches,
	}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// requireAdmin rejects calls made without an unlocked admin capability.
// Token validity (existence, expiry) is checked by the auth boundary; here
// only presence matters.
func requireAdmin(principal session.Principal) error {
	if principal.IsZero() {
		return fmt.Errorf("%w: admin session required", ErrUnauthorized)
	}

	return nil
}
