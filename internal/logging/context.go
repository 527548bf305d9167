package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored on ctx, or zerolog's disabled logger
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every event logged through the returned context with
// the emitting component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithPID tags events with the overlay's process id so log lines from a
// replaced instance can be told apart from its successor.
func WithPID(ctx context.Context, pid int) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Int("pid", pid)
	})
}

func derive(ctx context.Context, fn func(zerolog.Context) zerolog.Context) context.Context {
	child := fn(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}
