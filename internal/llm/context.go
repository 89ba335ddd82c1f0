package llm

import "context"

type contextKey string

const userKey contextKey = "llm_user"

// WithUser attaches the requesting user's ID to the context for event
// logging.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFrom extracts the user ID from the context.
func UserFrom(ctx context.Context) string {
	if v, ok := ctx.Value(userKey).(string); ok {
		return v
	}
	return "unknown"
}
