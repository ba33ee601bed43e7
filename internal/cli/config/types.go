// Package config provides configuration management for the flatlint CLI.
//
// Configuration is layered: built-in defaults, then flatlint.yaml, then
// FLATLINT_ environment variables, then explicitly set flags.
package config

import (
	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/plugins/mdx"
)

// MarkdownConfig controls the markdown/MDX contribution.
type MarkdownConfig struct {
	Enabled       bool                        `koanf:"enabled"`
	Plugin        string                      `koanf:"plugin"`
	Files         []string                    `koanf:"files"`
	ComponentExts []string                    `koanf:"component_exts"`
	Overrides     map[string]core.RuleSetting `koanf:"overrides"`
}

// Config holds all CLI configuration options.
type Config struct {
	Markdown     MarkdownConfig `koanf:"markdown"`
	Ignores      []string       `koanf:"ignores"`
	LogLevel     string         `koanf:"log_level"`
	OutputFormat string         `koanf:"output"`
	Concurrency  int            `koanf:"concurrency"`
	Verbose      bool           `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPlugin      = mdx.Name
	DefaultLogLevel    = "warn"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultConcurrency = 4
)

// DefaultConfig returns the configuration used when nothing is loaded.
func DefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{
			Enabled: true,
			Plugin:  DefaultPlugin,
		},
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
		Concurrency:  DefaultConcurrency,
	}
}
