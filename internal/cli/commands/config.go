package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/leapstack-labs/flatlint/pkg/flatconfig"
	"github.com/spf13/cobra"
)

// ConfigOptions holds options for the config command.
type ConfigOptions struct {
	Format string // Output format
}

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	opts := &ConfigOptions{}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the composed flat configuration",
		Long: `Build the flat configuration and print every item in order.

The markdown items only appear when the markdown plugin loads and passes the
structure check. When it does not, a warning is printed to stderr and the
configuration degrades to the global ignores.`,
		Example: `  # Show the configuration
  flatlint config

  # Without markdown support
  flatlint config --markdown=false

  # As YAML
  flatlint config --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func runConfig(cmd *cobra.Command, opts *ConfigOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.WithFormat(cmd, opts.Format)

	items := flatconfig.Build(cmd.Context(), cmdCtx.BuildOptions(cmdCtx.NewLoader()))
	return renderConfig(r, flatconfig.Summarize(items))
}

func renderConfig(r *output.Renderer, summaries []flatconfig.ItemSummary) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(summaries)
	case output.ModeYAML:
		return r.YAML(summaries)
	case output.ModeMarkdown:
		return configMarkdown(r, summaries)
	default:
		return configText(r, summaries)
	}
}

func configText(r *output.Renderer, items []flatconfig.ItemSummary) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Flat Configuration (%d items)", len(items))))
	r.Println("")

	for i, item := range items {
		r.Println(styles.Header2.Render(fmt.Sprintf("%d. %s", i+1, item.Name)))
		writeItemFields(r, item)
		if len(item.Rules) > 0 {
			r.Table([]string{"Rule", "Setting"}, ruleRows(item.Rules))
		}
		r.Println("")
	}
	return nil
}

func configMarkdown(r *output.Renderer, items []flatconfig.ItemSummary) error {
	r.Println("# Flat Configuration")
	r.Println("")

	for _, item := range items {
		r.Header(item.Name)
		writeItemFields(r, item)
		if len(item.Rules) > 0 {
			r.Println("")
			r.Table([]string{"Rule", "Setting"}, ruleRows(item.Rules))
		}
		r.Println("")
	}
	return nil
}

func writeItemFields(r *output.Renderer, item flatconfig.ItemSummary) {
	if len(item.Files) > 0 {
		r.StatusLine("Files", strings.Join(item.Files, ", "))
	}
	if len(item.Ignores) > 0 {
		r.StatusLine("Ignores", strings.Join(item.Ignores, ", "))
	}
	if item.Parser != "" {
		r.StatusLine("Parser", item.Parser)
	}
	if item.EcmaVersion != "" {
		r.StatusLine("Language", fmt.Sprintf("%s %s", item.EcmaVersion, item.SourceType))
	}
	if item.JSX {
		r.StatusLine("JSX", "enabled")
	}
	if item.Strict {
		r.StatusLine("Implied strict", "yes")
	}
	if len(item.Globals) > 0 {
		r.StatusLine("Globals", formatGlobals(item.Globals))
	}
	if len(item.Plugins) > 0 {
		r.StatusLine("Plugins", strings.Join(item.Plugins, ", "))
	}
	if item.Processor != "" {
		r.StatusLine("Processor", item.Processor)
	}
}

func formatGlobals(globals map[string]string) string {
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" ("+globals[name]+")")
	}
	return strings.Join(parts, ", ")
}

func ruleRows(rules map[string]string) [][]string {
	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{id, rules[id]})
	}
	return rows
}
