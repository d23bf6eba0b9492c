package glyph

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

type mockLoggerSetter struct {
	mu     sync.Mutex
	logger *slog.Logger
}

func (m *mockLoggerSetter) SetLogger(l *slog.Logger) {
	m.mu.Lock()
	m.logger = l
	m.mu.Unlock()
}

func (m *mockLoggerSetter) current() *slog.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logger
}

func resetLoggerSetters() {
	settersMu.Lock()
	setters = nil
	settersMu.Unlock()
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() should return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the custom logger")
	}

	d := NewDispatcher(nil, WithWorkers(2), WithChunkSize(4))
	defer d.Close()
	in := make([]Vertex, 16)
	out := make([]Output, 16)
	if err := d.Run(context.Background(), Identity(), in, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "glyph: dispatch") {
		t.Errorf("expected dispatch debug log, got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestRegisterLoggerSetter(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		resetLoggerSetters()
	})

	before := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(before)

	mock := &mockLoggerSetter{}
	RegisterLoggerSetter(mock)
	if mock.current() != before {
		t.Error("RegisterLoggerSetter did not hand over the current logger")
	}

	after := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(after)
	if mock.current() != after {
		t.Error("SetLogger did not propagate to the registered setter")
	}

	RegisterLoggerSetter(nil) // ignored
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
				return
			}
			l.Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
