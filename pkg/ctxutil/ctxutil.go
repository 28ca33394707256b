package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	requestIDKey   ctxKey = "request_id"
	sessionHashKey ctxKey = "session_hash"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSessionHash stores the hash of the presenting session token in the
// context. Only set when the request authenticated via the session cookie.
func WithSessionHash(ctx context.Context, hash string) context.Context {
	return context.WithValue(ctx, sessionHashKey, hash)
}

// SessionHashFromCtx extracts the session token hash from the context.
// Returns an empty string if the request did not carry a session cookie.
func SessionHashFromCtx(ctx context.Context) string {
	hash, _ := ctx.Value(sessionHashKey).(string)
	return hash
}
