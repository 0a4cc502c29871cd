package log

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx retrieves the logger from the context.
// If no logger is found, the global logger is returned.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}

// WithRun derives a child logger tagged with a fresh run ID, stores it in the
// context and returns both along with the ID.
func WithRun(ctx context.Context, logger zerolog.Logger) (context.Context, zerolog.Logger, string) {
	runID := uuid.New().String()
	child := logger.With().Str(FieldRunID, runID).Logger()
	return WithLogger(ctx, child), child, runID
}
