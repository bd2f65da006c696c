package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "session_id"
	commandKey   ctxKey = "command"
)

// WithSessionID stores the session ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// NewSession stores a freshly generated session ID in the context.
func NewSession(ctx context.Context) (context.Context, uuid.UUID) {
	id := uuid.New()
	return WithSessionID(ctx, id), id
}

// SessionIDFromCtx extracts the session ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// SessionIDString returns the session ID as a string, or "" if absent.
func SessionIDString(ctx context.Context) string {
	id, ok := SessionIDFromCtx(ctx)
	if !ok {
		return ""
	}
	return id.String()
}

// WithCommand stores the name of the running menu command in the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// CommandFromCtx extracts the command name from the context.
// Returns an empty string if absent.
func CommandFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(commandKey).(string)
	return name
}
