package plugin

import "log/slog"

// Category classifies an operator-facing loader diagnostic.
type Category string

// Diagnostic categories. These never surface as lint violations.
const (
	CategoryIncompatible Category = "incompatible structure"
	CategoryLoadFailed   Category = "load failed"
)

// Diagnostics receives operator-facing warnings from the loader.
type Diagnostics interface {
	Warn(category Category, message string)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(category Category, message string)

// Warn calls f.
func (f DiagnosticsFunc) Warn(category Category, message string) { f(category, message) }

// SlogDiagnostics writes diagnostics to a structured logger.
type SlogDiagnostics struct {
	Logger *slog.Logger
}

// Warn logs message at warn level with the category attached.
func (d SlogDiagnostics) Warn(category Category, message string) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(message, slog.String("category", string(category)))
}
