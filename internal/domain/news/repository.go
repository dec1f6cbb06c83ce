package news

import "context"

// Repository describes news persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, newsID string) (Item, bool, error)
	Upsert(ctx context.Context, item Item) error
	Delete(ctx context.Context, newsID string) error
}
