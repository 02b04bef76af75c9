package httpapi

import (
	"context"

	"github.com/pitlanehq/pitwall/internal/domain/identity"
)

type contextKey string

const userContextKey contextKey = "auth_user"

func withUser(ctx context.Context, u identity.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

func userFromContext(ctx context.Context) (identity.User, bool) {
	u, ok := ctx.Value(userContextKey).(identity.User)
	return u, ok
}
