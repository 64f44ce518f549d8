package bubble

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for bubble and its sub-packages.
// By default, bubble produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by bubble:
//   - [slog.LevelDebug]: rejected style writes, degenerate arcs, backend registration and selection
//   - [slog.LevelInfo]: written outputs (cmd/bubble host only)
//   - [slog.LevelWarn]: failed style reloads (cmd/bubble host only)
//
// Example:
//
//	bubble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by bubble.
// Backends and the style loader call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
