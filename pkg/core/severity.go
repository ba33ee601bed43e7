package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is the level a rule is configured at. The numeric values match the
// 0/1/2 shorthand accepted in configuration files.
type Severity int

// Severity levels.
const (
	// SeverityOff disables the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports violations without failing the run.
	SeverityWarn
	// SeverityError reports violations and fails the run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value. Numeric shorthands and
// "warning" are accepted. Returns SeverityOff and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return SeverityOff, true
	case "warn", "warning", "1":
		return SeverityWarn, true
	case "error", "2":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("invalid severity %q, must be one of: off, warn, error", string(text))
	}
	*s = sev
	return nil
}

// SeverityFromInt converts the 0/1/2 shorthand.
func SeverityFromInt(n int) (Severity, bool) {
	if n < int(SeverityOff) || n > int(SeverityError) {
		return SeverityOff, false
	}
	return Severity(n), true
}

// =============================================================================
// RuleSetting
// =============================================================================

// RuleSetting is the configured state of one rule: its severity and any
// rule-specific options.
type RuleSetting struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Options  []any    `json:"options,omitempty" yaml:"options,omitempty"`
}

// Off returns a setting that disables a rule.
func Off() RuleSetting { return RuleSetting{Severity: SeverityOff} }

// Warn returns a setting that reports a rule as a warning.
func Warn() RuleSetting { return RuleSetting{Severity: SeverityWarn} }

// Error returns a setting that reports a rule as an error.
func Error() RuleSetting { return RuleSetting{Severity: SeverityError} }

// String renders the setting the way config files spell it.
func (r RuleSetting) String() string {
	if len(r.Options) == 0 {
		return r.Severity.String()
	}
	return fmt.Sprintf("%s %v", r.Severity, r.Options)
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a plugin rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id" yaml:"id"`
	Description     string   `json:"description" yaml:"description"`
	DefaultSeverity Severity `json:"default_severity" yaml:"default_severity"`
	Fixable         bool     `json:"fixable,omitempty" yaml:"fixable,omitempty"`
}
