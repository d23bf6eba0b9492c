package glyph

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// LoggerSetter is implemented by sub-packages that keep their own logger
// (for example the GPU pipeline) and want SetLogger to reach them.
type LoggerSetter interface {
	SetLogger(*slog.Logger)
}

var (
	settersMu sync.Mutex
	setters   []LoggerSetter
)

// RegisterLoggerSetter adds s to the set of loggers updated by SetLogger.
// s immediately receives the current logger.
func RegisterLoggerSetter(s LoggerSetter) {
	if s == nil {
		return
	}
	settersMu.Lock()
	setters = append(setters, s)
	settersMu.Unlock()
	s.SetLogger(Logger())
}

// SetLogger configures the logger for glyph and all its sub-packages.
// By default glyph produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// Log levels used by glyph:
//   - [slog.LevelDebug]: dispatch sizing, pipeline and buffer creation
//   - [slog.LevelWarn]: non-fatal issues (resource release on failed setup)
//
// Example:
//
//	glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	settersMu.Lock()
	targets := append([]LoggerSetter(nil), setters...)
	settersMu.Unlock()
	for _, s := range targets {
		s.SetLogger(l)
	}
}

// Logger returns the current logger used by glyph.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
