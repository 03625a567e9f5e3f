package raymarch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. SetLogger may run concurrently with
// logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by raymarch and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels:
//   - [slog.LevelDebug]: GPU resource creation, uniform sizes, adapter list
//   - [slog.LevelInfo]: lifecycle (adapter selected, phase changes, exit)
//   - [slog.LevelWarn]: skipped frames, surface reconfiguration
//   - [slog.LevelError]: unrecoverable frame errors
//
// Example:
//
//	raymarch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call it on every use so a
// later SetLogger takes effect immediately.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ComponentLogger returns the current logger tagged with a component name.
func ComponentLogger(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}
