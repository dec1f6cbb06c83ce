package httpapi

import (
	"context"

	"github.com/riskibarqy/club-tracker/internal/domain/session"
)

type contextKey string

const principalContextKey contextKey = "admin_principal"

func withPrincipal(ctx context.Context, p session.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (session.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(session.Principal)
	return p, ok
}
