package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/club-tracker/internal/domain/news"
)

// NewsRepository keeps news items in memory, preserving insertion order.
type NewsRepository struct {
	mu    sync.RWMutex
	items map[string]news.Item
	order []string
}

func NewNewsRepository(items []news.Item) *NewsRepository {
	byID := make(map[string]news.Item, len(items))
	order := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := byID[item.ID]; !ok {
			order = append(order, item.ID)
		}
		byID[item.ID] = item
	}

	return &NewsRepository{
		items: byID,
		order: order,
	}
}

func (r *NewsRepository) List(_ context.Context) ([]news.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *NewsRepository) GetByID(_ context.Context, newsID string) (news.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[newsID]
	if !ok {
		return news.Item{}, false, nil
	}

	return item, true, nil
}

func (r *NewsRepository) Upsert(_ context.Context, item news.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *NewsRepository) Delete(_ context.Context, newsID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[newsID]; !ok {
		return nil
	}

	delete(r.items, newsID)
	for i, id := range r.order {
		if id == newsID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
