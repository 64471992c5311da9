// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	sessionIDKey contextKey = "ctxutil.sessionID"
	commandIDKey contextKey = "ctxutil.commandID"
)

// WithSessionID adds a grade-entry session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID retrieves the session ID from the context.
// Returns the session ID if found, empty string otherwise.
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		if sessionID, ok := v.(string); ok && sessionID != "" {
			return sessionID
		}
	}
	return ""
}

// MustGetSessionID retrieves the session ID from the context.
// Panics if the session ID is not found.
func MustGetSessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		panic("ctxutil: sessionID not found")
	}
	return sessionID
}

// WithCommandID adds the sequence number of the console command being handled.
func WithCommandID(ctx context.Context, commandID int) context.Context {
	return context.WithValue(ctx, commandIDKey, commandID)
}

// GetCommandID retrieves the command sequence number from the context.
func GetCommandID(ctx context.Context) (int, bool) {
	commandID, ok := ctx.Value(commandIDKey).(int)
	return commandID, ok
}
