package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/leapstack-labs/flatlint/internal/inspect"
	"github.com/leapstack-labs/flatlint/pkg/token"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Tokens bool   // List dropped tokens
	Watch  bool   // Re-run on change
	Jobs   int    // Concurrent parses, 0 uses the configured concurrency
	Format string // Output format
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse markdown files and report token consistency",
		Long: `Parse markdown and MDX files with the configured plugin parser.

For each file the raw parser output is compared with the filtered output:
tokens and comments that no top-level node encloses are dropped before the
result reaches lint rules. The report shows how many were dropped.`,
		Example: `  # Report token counts
  flatlint parse README.md docs/*.mdx

  # Show the dropped tokens
  flatlint parse --tokens README.md

  # Re-run whenever the files change
  flatlint parse --watch README.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Tokens, "tokens", false, "List dropped tokens")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when files change")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Concurrent parses (default: configured concurrency)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func runParse(cmd *cobra.Command, paths []string, opts *ParseOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.WithFormat(cmd, opts.Format)

	p, err := cmdCtx.ReadyPlugin(cmd)
	if err != nil {
		return err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cmdCtx.Cfg.Concurrency
	}
	iopts := inspect.Options{Jobs: jobs, KeepDropped: opts.Tokens}

	run := func(ctx context.Context, runID string) error {
		reports, err := inspect.Files(ctx, p.Parser, paths, iopts)
		if err != nil {
			return err
		}
		cmdCtx.Logger.Debug("parsed files",
			slog.String("run_id", runID),
			slog.Int("files", len(reports)))
		return renderReports(r, reports, opts.Tokens)
	}

	if opts.Watch {
		return inspect.Watch(cmd.Context(), paths, inspect.DefaultDebounce, cmdCtx.Logger, run)
	}
	return run(cmd.Context(), "")
}

func renderReports(r *output.Renderer, reports []inspect.FileReport, tokens bool) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(reports)
	case output.ModeYAML:
		return r.YAML(reports)
	}

	rows := make([][]string, 0, len(reports))
	failed := 0
	for _, rep := range reports {
		if rep.Error != "" {
			failed++
			rows = append(rows, []string{rep.File, "-", "-", "-", "-", rep.Error})
			continue
		}
		rows = append(rows, []string{
			rep.File,
			strconv.Itoa(rep.BodyNodes),
			fmt.Sprintf("%d/%d", rep.Tokens, rep.RawTokens),
			fmt.Sprintf("%d/%d", rep.Comments, rep.RawComments),
			strconv.Itoa(rep.DroppedTokens() + rep.DroppedComments()),
			"",
		})
	}

	r.Header("Token Consistency")
	r.Table([]string{"File", "Nodes", "Tokens", "Comments", "Dropped", "Error"}, rows)

	if tokens {
		for _, rep := range reports {
			if len(rep.Dropped) == 0 {
				continue
			}
			r.Println("")
			r.Header("Dropped in " + rep.File)
			for _, tok := range rep.Dropped {
				r.Printf("  %d:%d  [%d,%d)  %-9s %-12s %q\n",
					tok.Span.Start.Line, tok.Span.Start.Column, tok.Start(), tok.End(),
					droppedKind(tok.Type), tok.Type, tok.Literal)
			}
		}
	}

	if failed > 0 {
		r.Warning(fmt.Sprintf("%d of %d files failed to parse", failed, len(reports)))
	}
	return nil
}

// droppedKind tells bare markup delimiters apart from dropped content.
func droppedKind(t token.TokenType) string {
	if token.IsDelimiter(t) {
		return "delimiter"
	}
	return "content"
}
