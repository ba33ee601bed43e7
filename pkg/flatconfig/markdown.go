package flatconfig

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

// Names of the markdown config items.
const (
	MarkdownSetupName      = "flatlint/markdown-mdx/setup"
	MarkdownCodeBlocksName = "flatlint/markdown-mdx/code-blocks"
)

// MarkdownPluginKey is the namespace the MDX plugin is installed under.
const MarkdownPluginKey = "mdx"

// MarkdownOptions configures the markdown contribution.
type MarkdownOptions struct {
	// Files replaces the setup block's file patterns when non-empty.
	Files []string
	// ComponentExts adds code-block patterns for component file types, e.g. "vue".
	ComponentExts []string
	// Overrides are applied last to the code-blocks rules.
	Overrides Rules
	Logger    *slog.Logger
}

// Markdown returns the markdown/MDX contribution. It waits for the loader and
// returns an empty slice when the plugin is unavailable: no parser, no rules.
func Markdown(ctx context.Context, loader PluginLoader, opts MarkdownOptions) []ConfigItem {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if loader == nil {
		logger.Debug("skipping markdown configuration, no plugin loader")
		return []ConfigItem{}
	}
	outcome := loader.Load(ctx)
	mdx, ok := outcome.Ready()
	if !ok {
		logger.Debug("skipping markdown configuration due to plugin loading failure",
			slog.String("reason", outcome.Reason.String()))
		return []ConfigItem{}
	}

	files := opts.Files
	if len(files) == 0 {
		files = []string{GlobMarkdownOrMDX}
	}

	setup := ConfigItem{
		Name:  MarkdownSetupName,
		Files: files,
		LanguageOptions: &LanguageOptions{
			EcmaVersion: "latest",
			SourceType:  "module",
			Globals:     map[string]bool{"React": false},
			Parser:      parser.NewConsistencyFilter(mdx.Parser),
			ParserOptions: &parser.Options{
				EcmaFeatures: parser.EcmaFeatures{JSX: true},
			},
		},
		Plugins: map[string]*plugin.Plugin{MarkdownPluginKey: mdx},
		Rules:   markdownSetupRules(),
	}
	if proc, ok := mdx.NewProcessor(plugin.ProcessorOptions{LintCodeBlocks: true}); ok {
		setup.Processor = &ProcessorRef{Name: MarkdownPluginKey + "/remark", Impl: proc}
	}

	codeFiles := make([]string, 0, 1+len(opts.ComponentExts))
	codeFiles = append(codeFiles, GlobMarkdownCode)
	for _, ext := range opts.ComponentExts {
		codeFiles = append(codeFiles, ComponentGlob(ext))
	}

	codeBlocks := ConfigItem{
		Name:  MarkdownCodeBlocksName,
		Files: codeFiles,
		LanguageOptions: &LanguageOptions{
			ParserOptions: &parser.Options{
				EcmaFeatures: parser.EcmaFeatures{ImpliedStrict: true},
			},
		},
		Rules: markdownCodeBlockRules().Merge(opts.Overrides),
	}

	logger.Debug("markdown configuration enabled",
		slog.String("plugin", mdx.Name),
		slog.String("parser", mdx.Meta.Name))
	return []ConfigItem{setup, codeBlocks}
}

func markdownSetupRules() Rules {
	return Rules{
		"mdx/remark": core.Warn(),

		// JSX in documents is not resolvable as plain script.
		"no-undef":              core.Off(),
		"no-unused-expressions": core.Off(),

		// Stylistic rules that fight each other on embedded JSX.
		"style/indent":                       core.Off(),
		"style/jsx-closing-bracket-location": core.Off(),
		"style/jsx-closing-tag-location":     core.Off(),
		"style/jsx-indent":                   core.Off(),
		"style/jsx-indent-props":             core.Off(),
		"style/jsx-one-expression-per-line":  core.Off(),
		"style/max-statements-per-line":      core.Off(),
	}
}

func markdownCodeBlockRules() Rules {
	rules := Rules{
		"import/newline-after-import": core.Off(),

		"no-alert":                   core.Off(),
		"no-console":                 core.Off(),
		"no-labels":                  core.Off(),
		"no-lone-blocks":             core.Off(),
		"no-restricted-syntax":       core.Off(),
		"no-undef":                   core.Off(),
		"no-unused-expressions":      core.Off(),
		"no-unused-labels":           core.Off(),
		"no-unused-vars":             core.Off(),
		"node/prefer-global/process": core.Off(),
		"style/comma-dangle":         core.Off(),
		"style/eol-last":             core.Off(),

		"ts/consistent-type-imports": core.Off(),
		"ts/no-namespace":            core.Off(),
		"ts/no-redeclare":            core.Off(),
		"ts/no-require-imports":      core.Off(),
		"ts/no-unused-vars":          core.Off(),
		"ts/no-use-before-define":    core.Off(),
		"ts/no-var-requires":         core.Off(),

		"unicode-bom":                      core.Off(),
		"unused-imports/no-unused-imports": core.Off(),
		"unused-imports/no-unused-vars":    core.Off(),
	}
	// A code block has no project to resolve types against.
	for _, id := range typeAwareRules {
		rules[id] = core.Off()
	}
	return rules
}

var typeAwareRules = []string{
	"ts/await-thenable",
	"ts/dot-notation",
	"ts/no-floating-promises",
	"ts/no-for-in-array",
	"ts/no-implied-eval",
	"ts/no-misused-promises",
	"ts/no-throw-literal",
	"ts/no-unnecessary-type-assertion",
	"ts/no-unsafe-argument",
	"ts/no-unsafe-assignment",
	"ts/no-unsafe-call",
	"ts/no-unsafe-member-access",
	"ts/no-unsafe-return",
	"ts/restrict-plus-operands",
	"ts/restrict-template-expressions",
	"ts/unbound-method",
}
