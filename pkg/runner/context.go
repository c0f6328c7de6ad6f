package runner

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/advent/pkg/logger"
)

type runIDKey struct{}

// WithRunID stores the run id in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored in ctx, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// LogRunID is a logger option that adds the run id of the context to every
// record as "run_id".
func LogRunID() logger.Option {
	return logger.WithContextValue("run_id", runIDKey{})
}

// ensureRunID returns ctx unchanged when it already carries a run id and
// otherwise attaches a fresh one.
func ensureRunID(ctx context.Context) (context.Context, string) {
	if id, ok := RunIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRunID(ctx, id), id
}
