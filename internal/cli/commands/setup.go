package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/flatlint/internal/cli/config"
	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/leapstack-labs/flatlint/pkg/flatconfig"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
	"github.com/spf13/cobra"

	_ "github.com/leapstack-labs/flatlint/pkg/plugins/mdx" // register the mdx plugin
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// WithFormat returns the renderer, switched to format when it is set.
func (c *CommandContext) WithFormat(cmd *cobra.Command, format string) *output.Renderer {
	if format == "" {
		return c.Renderer
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
}

// NewLoader creates a loader for the configured markdown plugin. A load
// diagnostic is shown to the user once and logged at debug level.
func (c *CommandContext) NewLoader() *plugin.Loader {
	return plugin.NewLoader(c.Cfg.Markdown.Plugin, plugin.WithDiagnostics(
		plugin.DiagnosticsFunc(func(category plugin.Category, message string) {
			c.Logger.Debug("plugin diagnostic", slog.String("category", string(category)))
			c.Renderer.Warning(message)
		}),
	))
}

// BuildOptions maps the CLI configuration onto a configuration build.
func (c *CommandContext) BuildOptions(loader flatconfig.PluginLoader) flatconfig.BuildOptions {
	md := c.Cfg.Markdown
	return flatconfig.BuildOptions{
		Ignores:  c.Cfg.Ignores,
		Markdown: md.Enabled,
		Loader:   loader,
		MarkdownOptions: flatconfig.MarkdownOptions{
			Files:         md.Files,
			ComponentExts: md.ComponentExts,
			Overrides:     flatconfig.Rules(md.Overrides),
		},
		Logger: c.Logger,
	}
}

// ReadyPlugin loads the markdown plugin and fails when it is unavailable.
func (c *CommandContext) ReadyPlugin(cmd *cobra.Command) (*plugin.Plugin, error) {
	if err := c.Cfg.ValidatePlugin(); err != nil {
		return nil, err
	}
	outcome := c.NewLoader().Load(cmd.Context())
	p, ok := outcome.Ready()
	if !ok {
		return nil, fmt.Errorf("markdown plugin %q unavailable (%s): %w",
			c.Cfg.Markdown.Plugin, outcome.Reason, outcome.Err)
	}
	return p, nil
}

// getConfig returns the current configuration, or the defaults when none
// has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}
