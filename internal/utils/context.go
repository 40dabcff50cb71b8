package utils

import (
	"context"
	"errors"
)

type ctxKey string

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user's id.
const UserIDCtxKey ctxKey = "user_id"

// ErrNoUserIDInContext is returned by UserIDFromContext when the request was
// not authenticated.
var ErrNoUserIDInContext = errors.New("no user id in context")

// WithUserID returns a child context carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// UserIDFromContext extracts the authenticated user id set by the auth
// middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok {
		return 0, ErrNoUserIDInContext
	}
	return userID, nil
}
