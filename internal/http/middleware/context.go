package middlewarex

import (
	"context"

	"codearea/internal/domain/user"
)

type ctxKey string

const (
	ctxUser ctxKey = "user"
)

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ctxUser, u)
}

// User returns the session user, or nil for anonymous requests
func User(ctx context.Context) *user.User {
	u, _ := ctx.Value(ctxUser).(*user.User)
	return u
}
