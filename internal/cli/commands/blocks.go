package commands

import (
	"fmt"

	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/leapstack-labs/flatlint/internal/inspect"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
	"github.com/spf13/cobra"
)

// NewBlocksCommand creates the blocks command.
func NewBlocksCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "blocks <file>",
		Short: "Extract and check fenced code blocks",
		Long: `Split a markdown document into its fenced code blocks and check the
JavaScript and TypeScript ones for syntax errors. Reported positions are
in document coordinates.`,
		Example: `  flatlint blocks README.md
  flatlint blocks docs/guide.mdx --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.WithFormat(cmd, format)

			p, err := cmdCtx.ReadyPlugin(cmd)
			if err != nil {
				return err
			}
			proc, ok := p.NewProcessor(plugin.ProcessorOptions{LintCodeBlocks: true})
			if !ok {
				return fmt.Errorf("plugin %q has no processor", p.Name)
			}

			report, err := inspect.Blocks(proc, args[0])
			if err != nil {
				return err
			}
			return renderBlocks(r, report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func renderBlocks(r *output.Renderer, report *inspect.BlockReport) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeYAML:
		return r.YAML(report)
	}

	r.Header(fmt.Sprintf("Code Blocks in %s (%d)", report.File, len(report.Blocks)))
	rows := make([][]string, 0, len(report.Blocks))
	for _, b := range report.Blocks {
		rows = append(rows, []string{b.Filename, b.Lang, fmt.Sprint(b.Line)})
	}
	r.Table([]string{"Virtual File", "Lang", "Line"}, rows)

	if len(report.Messages) == 0 {
		r.Success("no problems")
		return nil
	}
	r.Println("")
	for _, m := range report.Messages {
		r.Printf("  %d:%d  %-5s %s\n", m.Line, m.Column, m.Severity, m.Message)
	}
	return nil
}
