// Package flatconfig assembles flat lint configuration items: ordered blocks
// that each pair a set of file patterns with language options, plugins, an
// optional processor and rule settings.
//
// The markdown contribution is gated on a plugin loader. When the MDX plugin
// is unavailable the contribution is empty rather than partially configured:
//
//	loader := plugin.NewLoader("mdx")
//	items := flatconfig.Markdown(ctx, loader, flatconfig.MarkdownOptions{})
package flatconfig

import (
	"context"

	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

// PluginLoader produces a plugin load outcome. Implemented by *plugin.Loader.
type PluginLoader interface {
	Load(ctx context.Context) plugin.Outcome
}

// Rules maps rule IDs to their settings.
type Rules map[string]core.RuleSetting

// LanguageOptions configures how matching files are parsed.
type LanguageOptions struct {
	EcmaVersion string
	SourceType  string
	// Globals maps global names to writability; false means read-only.
	Globals       map[string]bool
	Parser        parser.Parser
	ParserOptions *parser.Options
}

// ProcessorRef names a processor instance installed on a config item.
type ProcessorRef struct {
	Name string
	Impl plugin.Processor
}

// ConfigItem is one block of a flat configuration.
type ConfigItem struct {
	Name            string
	Files           []string
	Ignores         []string
	LanguageOptions *LanguageOptions
	Plugins         map[string]*plugin.Plugin
	Processor       *ProcessorRef
	Rules           Rules
}

// Merge returns a copy of r with every entry of overrides applied on top.
func (r Rules) Merge(overrides Rules) Rules {
	out := make(Rules, len(r)+len(overrides))
	for id, s := range r {
		out[id] = s
	}
	for id, s := range overrides {
		out[id] = s
	}
	return out
}

// Disabled returns the IDs of rules set to off.
func (r Rules) Disabled() []string {
	var ids []string
	for id, s := range r {
		if s.Severity == core.SeverityOff {
			ids = append(ids, id)
		}
	}
	return ids
}
