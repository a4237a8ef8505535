package kernel

import "context"

type ContextKey string

const (
	// RunIDKey stores the current RunID in a context.Context
	RunIDKey ContextKey = "run_id"
)

// WithRunID returns a context carrying the given run identifier.
func WithRunID(ctx context.Context, id RunID) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// RunIDFromContext extracts the run identifier, if any.
func RunIDFromContext(ctx context.Context) (RunID, bool) {
	id, ok := ctx.Value(RunIDKey).(RunID)
	return id, ok && !id.IsEmpty()
}
