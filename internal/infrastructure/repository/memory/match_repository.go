package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
)

// MatchRepository keeps matches in memory, preserving insertion order.
// Reads and writes deep-copy the match so callers never alias stored maps.
type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
	order []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	order := make([]string, 0, len(matches))

	for _, m := range matches {
		if _, ok := items[m.ID]; !ok {
			order = append(order, m.ID)
		}
		items[m.ID] = m.Clone()
	}

	return &MatchRepository{
		items: items,
		order: order,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m.Clone(), true, nil
}

func (r *MatchRepository) Upsert(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.items[m.ID] = m.Clone()

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[matchID]; !ok {
		return nil
	}

	delete(r.items, matchID)
	for i, id := range r.order {
		if id == matchID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
