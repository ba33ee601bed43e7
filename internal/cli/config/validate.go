package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.OutputFormat != "" && !containsString(validOutputs, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q, must be one of: %s", c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Markdown.Enabled && c.Markdown.Plugin == "" {
		return fmt.Errorf("markdown.plugin is required when markdown is enabled")
	}
	return nil
}

// ValidatePlugin checks that the configured plugin is registered. An unknown
// plugin is not fatal for configuration building, which degrades instead.
func (c *Config) ValidatePlugin() error {
	if !c.Markdown.Enabled || plugin.IsRegistered(c.Markdown.Plugin) {
		return nil
	}
	return &plugin.UnknownPluginError{Name: c.Markdown.Plugin, Available: plugin.List()}
}

// ParseLogLevel converts a level name into a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", s)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
