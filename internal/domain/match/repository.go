package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Upsert(ctx context.Context, m Match) error
	Delete(ctx context.Context, matchID string) error
}
