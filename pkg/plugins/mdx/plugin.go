// Package mdx is the built-in markdown and MDX parser plugin. It registers
// itself with the plugin registry under the name "mdx".
//
// The parser reports every token it sees in the document, including tokens
// in frontmatter and link reference definitions that no body node covers.
// Configuration code wraps it with parser.NewConsistencyFilter before
// installing it.
package mdx

import (
	"context"

	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

// Plugin identity.
const (
	Name     = "mdx"
	MetaName = "flatlint-mdx"
	Version  = "0.1.0"
)

func init() {
	plugin.Register(Name, New)
}

// New builds the plugin module.
func New(ctx context.Context) (*plugin.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := NewParser()
	return &plugin.Module{
		Meta: p.Meta(),
		Configs: map[string]*plugin.Preset{
			plugin.FlatPreset: {
				LanguageOptions: &plugin.PresetLanguageOptions{Parser: p},
				Rules: map[string]core.RuleSetting{
					RemarkRuleID: core.Warn(),
				},
			},
		},
		Rules: map[string]core.RuleInfo{
			"remark": {
				ID:              RemarkRuleID,
				Description:     "Reports code blocks that fail to parse",
				DefaultSeverity: core.SeverityWarn,
			},
		},
		NewProcessor: func(opts plugin.ProcessorOptions) plugin.Processor {
			return NewProcessor(opts)
		},
	}, nil
}
