// Package logging wires the editor core's structured logging: every
// layer logs a typed event through log/slog rather than formatting its
// own strings, matching the "typed event, caller logs" shape the
// teacher's own status/stat objects use.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// contextKey is an unexported type to avoid collisions with other
// packages' context keys.
type contextKey struct{}

var loggerKey = contextKey{}

// New builds the editor's default logger: JSON to stderr at every level
// from level upward, so a supervising process can collect structured
// fields (package path, footprint UUID, command description) instead of
// parsing prose. There is no separate human-readable text output.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// WithContext attaches logger to ctx, for handlers that only have a
// context.Context in scope (e.g. a watch.Watcher callback).
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or slog.Default() if
// none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// TabFields returns the structured fields every orchestrator.Tab log
// line carries, so a multi-tab editor's log stream can be filtered by
// package path without a per-call logger.With chain at every call site.
func TabFields(packagePath, footprintName string) []any {
	return []any{
		slog.String("package_path", packagePath),
		slog.String("footprint", footprintName),
	}
}
