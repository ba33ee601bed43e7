// Package inspect runs the markdown parser over files and reports what the
// consistency filter kept and dropped.
package inspect

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/leapstack-labs/flatlint/pkg/token"
	"golang.org/x/sync/errgroup"
)

// FileReport summarizes one parsed file.
type FileReport struct {
	File        string        `json:"file" yaml:"file"`
	BodyNodes   int           `json:"body_nodes" yaml:"body_nodes"`
	RawTokens   int           `json:"raw_tokens" yaml:"raw_tokens"`
	Tokens      int           `json:"tokens" yaml:"tokens"`
	RawComments int           `json:"raw_comments" yaml:"raw_comments"`
	Comments    int           `json:"comments" yaml:"comments"`
	Dropped     []token.Token `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// DroppedTokens returns how many tokens the filter removed.
func (r FileReport) DroppedTokens() int {
	return r.RawTokens - r.Tokens
}

// DroppedComments returns how many comments the filter removed.
func (r FileReport) DroppedComments() int {
	return r.RawComments - r.Comments
}

// Options configures Files.
type Options struct {
	// Jobs bounds concurrent parses. Zero or less means one.
	Jobs int
	// KeepDropped records the dropped tokens in each report.
	KeepDropped bool
}

// Files parses each path with c, raw and filtered. Reports are returned in
// path order. A file that fails to read or parse gets a report with Error
// set; only context cancellation fails the whole run.
func Files(ctx context.Context, c parser.Capability, paths []string, opts Options) ([]FileReport, error) {
	if c == nil {
		return nil, parser.ErrNilCapability
	}
	filter := parser.NewConsistencyFilter(c)
	reports := make([]FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = inspectFile(c, filter, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func inspectFile(raw parser.Capability, filter *parser.FilteringParser, path string, opts Options) FileReport {
	report := FileReport{File: path}

	content, err := os.ReadFile(path)
	if err != nil {
		report.Error = fmt.Sprintf("read: %v", err)
		return report
	}
	src := string(content)
	popts := parser.Options{FilePath: path}

	rawRes, err := raw.ParseForLint(src, popts)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	if rawRes == nil || rawRes.AST == nil {
		report.Error = parser.ErrNilAST.Error()
		return report
	}
	res, err := filter.ParseForLint(src, popts)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.BodyNodes = len(res.AST.Body)
	report.RawTokens = len(rawRes.AST.Tokens)
	report.Tokens = len(res.AST.Tokens)
	report.RawComments = len(rawRes.AST.Comments)
	report.Comments = len(res.AST.Comments)
	if opts.KeepDropped {
		report.Dropped = droppedTokens(rawRes.AST)
	}
	return report
}

// droppedTokens returns the tokens no body node encloses.
func droppedTokens(prog *parser.Program) []token.Token {
	keep := parser.EnclosedByBody(prog.Body)
	var dropped []token.Token
	for _, tok := range prog.Tokens {
		if !keep(tok.Span) {
			dropped = append(dropped, tok)
		}
	}
	return dropped
}
