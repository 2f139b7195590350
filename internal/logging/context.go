package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey carries the command logger through a command's context.
type loggerKey struct{}

// FromContext returns the logger attached by WithLogger, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger attaches logger to ctx. The root command does this before any
// subcommand runs, so command code logs through FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}
