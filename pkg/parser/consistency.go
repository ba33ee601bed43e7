package parser

import "github.com/leapstack-labs/flatlint/pkg/token"

// FilteringParser wraps a Capability and drops every token and comment whose
// span is not enclosed by a top-level body node. Lexers for embedded markup
// emit tokens for delimiters (frontmatter fences, reference definitions) that
// have no node in the tree; rules such as indent treat those orphans as a
// structural inconsistency.
type FilteringParser struct {
	wrapped Capability
}

var (
	_ Parser       = (*FilteringParser)(nil)
	_ MetaProvider = (*FilteringParser)(nil)
)

// NewConsistencyFilter wraps c. The tree returned by c is never modified.
func NewConsistencyFilter(c Capability) *FilteringParser {
	return &FilteringParser{wrapped: c}
}

// Parse is the legacy single-result entry point.
func (p *FilteringParser) Parse(text string, opts Options) (*Program, error) {
	res, err := p.parse(text, opts)
	if err != nil {
		return nil, err
	}
	return res.AST, nil
}

// ParseForLint is the richer entry point returning services and visitor keys.
func (p *FilteringParser) ParseForLint(text string, opts Options) (*LintResult, error) {
	return p.parse(text, opts)
}

// Meta forwards the wrapped parser's metadata.
func (p *FilteringParser) Meta() Meta {
	if mp, ok := p.wrapped.(MetaProvider); ok {
		return mp.Meta()
	}
	return Meta{Name: "unknown"}
}

// Unwrap returns the wrapped capability.
func (p *FilteringParser) Unwrap() Capability {
	return p.wrapped
}

func (p *FilteringParser) parse(text string, opts Options) (*LintResult, error) {
	if p.wrapped == nil {
		return nil, ErrNilCapability
	}
	raw, err := p.wrapped.ParseForLint(text, opts)
	if err != nil {
		return nil, err
	}
	if raw == nil || raw.AST == nil {
		return nil, ErrNilAST
	}

	keep := EnclosedByBody(raw.AST.Body)
	ast := &Program{
		Span:     raw.AST.Span,
		Body:     raw.AST.Body,
		Tokens:   filterSpans(raw.AST.Tokens, func(t token.Token) token.Span { return t.Span }, keep),
		Comments: filterSpans(raw.AST.Comments, func(c token.Comment) token.Span { return c.Span }, keep),
	}
	return &LintResult{
		AST:         ast,
		Services:    raw.Services,
		VisitorKeys: raw.VisitorKeys,
	}, nil
}

// EnclosedByBody returns a predicate reporting whether a span lies within at
// least one of the given nodes. Only the nodes themselves are checked, not
// their descendants.
func EnclosedByBody(body []*Node) func(token.Span) bool {
	return func(s token.Span) bool {
		for _, n := range body {
			if n != nil && n.Span.Encloses(s) {
				return true
			}
		}
		return false
	}
}

// filterSpans returns the subsequence of items whose span satisfies keep.
// The result never aliases items.
func filterSpans[T any](items []T, span func(T) token.Span, keep func(token.Span) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(span(it)) {
			out = append(out, it)
		}
	}
	return out
}
