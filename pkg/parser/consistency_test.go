package parser

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/flatlint/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCapability returns a fixed raw result for every call.
type stubCapability struct {
	result *LintResult
	err    error
	calls  int
	last   Options
}

func (s *stubCapability) ParseForLint(_ string, opts Options) (*LintResult, error) {
	s.calls++
	s.last = opts
	if s.err != nil {
		return nil, s.err
	}
	// Hand out fresh slices so that callers cannot observe each other.
	ast := *s.result.AST
	ast.Tokens = append([]token.Token(nil), s.result.AST.Tokens...)
	ast.Comments = append([]token.Comment(nil), s.result.AST.Comments...)
	return &LintResult{AST: &ast, Services: s.result.Services, VisitorKeys: s.result.VisitorKeys}, nil
}

type metaCapability struct{ stubCapability }

func (m *metaCapability) Meta() Meta { return Meta{Name: "eslint-mdx", Version: "3.1.5"} }

func node(start, end int) *Node {
	return &Node{Type: "paragraph", Span: token.OffsetSpan(start, end)}
}

func tok(lit string, start, end int) token.Token {
	return token.Token{Type: token.IDENT, Literal: lit, Span: token.OffsetSpan(start, end)}
}

func comment(text string, start, end int) token.Comment {
	return token.Comment{Kind: token.BlockComment, Text: text, Span: token.OffsetSpan(start, end)}
}

func rawResult(body []*Node, tokens []token.Token, comments []token.Comment) *LintResult {
	return &LintResult{
		AST:      &Program{Body: body, Tokens: tokens, Comments: comments},
		Services: map[string]any{"frontmatter": map[string]any{"title": "x"}},
	}
}

func TestFilteringParser_DropsTokenOutsideBody(t *testing.T) {
	stub := &stubCapability{result: rawResult(
		[]*Node{node(0, 10)},
		[]token.Token{tok("a", 0, 10), tok("b", 12, 15)},
		nil,
	)}

	prog, err := NewConsistencyFilter(stub).Parse("ignored", Options{})
	require.NoError(t, err)

	require.Len(t, prog.Tokens, 1)
	assert.Equal(t, token.OffsetSpan(0, 10), prog.Tokens[0].Span)
}

func TestFilteringParser_KeepsTokenWithIdenticalBounds(t *testing.T) {
	stub := &stubCapability{result: rawResult(
		[]*Node{node(0, 10)},
		[]token.Token{tok("a", 0, 10)},
		[]token.Comment{comment("c", 0, 10)},
	)}

	prog, err := NewConsistencyFilter(stub).Parse("ignored", Options{})
	require.NoError(t, err)

	assert.Len(t, prog.Tokens, 1, "equal bounds count as contained")
	assert.Len(t, prog.Comments, 1, "equal bounds count as contained")
}

func TestFilteringParser_ContainmentAndOrder(t *testing.T) {
	body := []*Node{node(0, 10), node(20, 30), node(40, 41)}
	tokens := []token.Token{
		tok("t0", 0, 3),
		tok("t1", 8, 12), // straddles the end of the first node
		tok("t2", 10, 10),
		tok("t3", 15, 18), // in the gap
		tok("t4", 20, 25),
		tok("t5", 25, 30),
		tok("t6", 30, 31),
		tok("t7", 40, 41),
		tok("t8", 50, 52),
	}
	comments := []token.Comment{
		comment("c0", 12, 19),
		comment("c1", 21, 29),
		comment("c2", 0, 41), // spans several nodes but no single one
		comment("c3", 3, 4),
	}
	stub := &stubCapability{result: rawResult(body, tokens, comments)}

	prog, err := NewConsistencyFilter(stub).Parse("ignored", Options{})
	require.NoError(t, err)

	var gotTokens []string
	for _, tk := range prog.Tokens {
		gotTokens = append(gotTokens, tk.Literal)
	}
	assert.Equal(t, []string{"t0", "t2", "t4", "t5", "t7"}, gotTokens)

	var gotComments []string
	for _, c := range prog.Comments {
		gotComments = append(gotComments, c.Text)
	}
	assert.Equal(t, []string{"c1", "c3"}, gotComments)

	keep := EnclosedByBody(prog.Body)
	for _, tk := range prog.Tokens {
		assert.True(t, keep(tk.Span), "token %s must lie in a body node", tk.Literal)
	}
	for _, c := range prog.Comments {
		assert.True(t, keep(c.Span), "comment %s must lie in a body node", c.Text)
	}
}

func TestFilteringParser_NoDeduplication(t *testing.T) {
	stub := &stubCapability{result: rawResult(
		[]*Node{node(0, 10)},
		[]token.Token{tok("a", 1, 2), tok("a", 1, 2)},
		nil,
	)}

	prog, err := NewConsistencyFilter(stub).Parse("ignored", Options{})
	require.NoError(t, err)
	assert.Len(t, prog.Tokens, 2)
}

func TestFilteringParser_EntryPointsAgree(t *testing.T) {
	stub := &stubCapability{result: rawResult(
		[]*Node{node(0, 10), node(20, 30)},
		[]token.Token{tok("a", 0, 2), tok("b", 11, 12), tok("c", 22, 24)},
		[]token.Comment{comment("x", 9, 21), comment("y", 25, 26)},
	)}
	p := NewConsistencyFilter(stub)
	opts := Options{EcmaFeatures: EcmaFeatures{JSX: true}}

	prog, err := p.Parse("doc", opts)
	require.NoError(t, err)
	res, err := p.ParseForLint("doc", opts)
	require.NoError(t, err)

	assert.Equal(t, prog.Tokens, res.AST.Tokens)
	assert.Equal(t, prog.Comments, res.AST.Comments)
	assert.Equal(t, prog.Body, res.AST.Body)
	assert.Equal(t, 2, stub.calls, "both entry points delegate to the rich call")
	assert.Equal(t, opts, stub.last, "options are forwarded unchanged")
	assert.Equal(t, stub.result.Services, res.Services)
}

func TestFilteringParser_TreeUnchangedAndNotAliased(t *testing.T) {
	body := []*Node{node(0, 10)}
	raw := rawResult(body, []token.Token{tok("a", 0, 1), tok("b", 11, 12)}, nil)
	capability := &passthrough{result: raw}

	res, err := NewConsistencyFilter(capability).ParseForLint("doc", Options{})
	require.NoError(t, err)

	assert.Same(t, body[0], res.AST.Body[0], "tree nodes are passed through")
	assert.Len(t, raw.AST.Tokens, 2, "raw token slice is not modified")
	require.Len(t, res.AST.Tokens, 1)

	res.AST.Tokens[0].Literal = "mutated"
	assert.Equal(t, "a", raw.AST.Tokens[0].Literal, "filtered slice must not alias the raw slice")
}

// passthrough returns the exact same result object every call.
type passthrough struct{ result *LintResult }

func (p *passthrough) ParseForLint(string, Options) (*LintResult, error) { return p.result, nil }

func TestFilteringParser_OnlyTopLevelNodesConsulted(t *testing.T) {
	parent := &Node{
		Type: "list",
		Span: token.OffsetSpan(0, 10),
		Children: []*Node{
			{Type: "listItem", Span: token.OffsetSpan(2, 30)},
		},
	}
	stub := &stubCapability{result: rawResult(
		[]*Node{parent},
		[]token.Token{tok("inner", 12, 14)},
		nil,
	)}

	prog, err := NewConsistencyFilter(stub).Parse("doc", Options{})
	require.NoError(t, err)
	assert.Empty(t, prog.Tokens, "descendant spans do not rescue a token")
}

func TestFilteringParser_PropagatesParseError(t *testing.T) {
	cause := &ParseError{Message: "unexpected closing tag"}
	stub := &stubCapability{err: cause}
	p := NewConsistencyFilter(stub)

	_, err := p.Parse("<div>", Options{})
	require.Error(t, err)
	assert.Same(t, cause, err)

	_, err = p.ParseForLint("<div>", Options{})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "unexpected closing tag", pe.Message)
}

func TestFilteringParser_NilInputs(t *testing.T) {
	_, err := NewConsistencyFilter(nil).Parse("doc", Options{})
	require.ErrorIs(t, err, ErrNilCapability)

	_, err = NewConsistencyFilter(&passthrough{result: &LintResult{}}).Parse("doc", Options{})
	require.ErrorIs(t, err, ErrNilAST)
}

func TestFilteringParser_EmptyBodyDropsEverything(t *testing.T) {
	stub := &stubCapability{result: rawResult(nil,
		[]token.Token{tok("a", 0, 1)},
		[]token.Comment{comment("c", 0, 1)},
	)}

	prog, err := NewConsistencyFilter(stub).Parse("doc", Options{})
	require.NoError(t, err)
	assert.NotNil(t, prog.Tokens)
	assert.Empty(t, prog.Tokens)
	assert.Empty(t, prog.Comments)
}

func TestFilteringParser_Meta(t *testing.T) {
	withMeta := NewConsistencyFilter(&metaCapability{})
	assert.Equal(t, Meta{Name: "eslint-mdx", Version: "3.1.5"}, withMeta.Meta())

	without := NewConsistencyFilter(&stubCapability{})
	assert.Equal(t, "unknown", without.Meta().Name)
}

func TestParseError(t *testing.T) {
	inner := errors.New("boom")
	err := &ParseError{Pos: token.Position{Line: 3, Column: 7}, Message: "bad fence", Err: inner}

	assert.Equal(t, "parse error at line 3, column 7: bad fence", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "parse error: bad fence", (&ParseError{Message: "bad fence"}).Error())
}

func TestWalk(t *testing.T) {
	root := &Node{Type: "list", Children: []*Node{
		{Type: "listItem", Children: []*Node{{Type: "paragraph"}}},
		{Type: "listItem"},
	}}

	var seen []NodeType
	Walk(root, func(n *Node) bool {
		seen = append(seen, n.Type)
		return n.Type != "listItem"
	})
	assert.Equal(t, []NodeType{"list", "listItem", "listItem"}, seen)
}
