// Package testutil provides shared helpers for tests: a logger that writes
// to t.Log and a recorder for plugin loader diagnostics.
package testutil

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Diagnostic is one recorded loader warning.
type Diagnostic struct {
	Category plugin.Category
	Message  string
}

// DiagnosticsRecorder implements plugin.Diagnostics by keeping every warning.
type DiagnosticsRecorder struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// Warn records a warning.
func (r *DiagnosticsRecorder) Warn(category plugin.Category, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Diagnostic{Category: category, Message: message})
}

// Entries returns a copy of the recorded warnings.
func (r *DiagnosticsRecorder) Entries() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Diagnostic(nil), r.entries...)
}

// Count returns the number of warnings recorded for category.
func (r *DiagnosticsRecorder) Count(category plugin.Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Category == category {
			n++
		}
	}
	return n
}
