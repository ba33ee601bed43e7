package mdx_test

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/leapstack-labs/flatlint/pkg/plugins/mdx"
	"github.com/leapstack-labs/flatlint/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *parser.LintResult {
	t.Helper()
	res, err := mdx.NewParser().ParseForLint(src, parser.Options{FilePath: "doc.mdx"})
	require.NoError(t, err)
	require.NotNil(t, res.AST)
	return res
}

func filtered(t *testing.T, src string) *parser.Program {
	t.Helper()
	prog, err := parser.NewConsistencyFilter(mdx.NewParser()).Parse(src, parser.Options{})
	require.NoError(t, err)
	return prog
}

func nodeTypes(prog *parser.Program) []parser.NodeType {
	types := make([]parser.NodeType, 0, len(prog.Body))
	for _, n := range prog.Body {
		types = append(types, n.Type)
	}
	return types
}

func countType(tokens []token.Token, typ token.TokenType) int {
	n := 0
	for _, tok := range tokens {
		if tok.Type == typ {
			n++
		}
	}
	return n
}

func TestParser_Frontmatter(t *testing.T) {
	src := "---\ntitle: Hello # note\n---\n\n# Heading\n\nSome text.\n"

	res := parse(t, src)

	assert.Equal(t, map[string]any{"title": "Hello"}, res.Services[mdx.ServiceFrontmatter])
	assert.Equal(t, "doc.mdx", res.Services["filePath"])
	assert.Equal(t, []parser.NodeType{"Heading", "Paragraph"}, nodeTypes(res.AST))
	assert.Equal(t, 5, res.AST.Body[0].Span.Start.Line)

	assert.Equal(t, 2, countType(res.AST.Tokens, token.FRONTMATTER))
	require.Len(t, res.AST.Comments, 1)
	assert.Equal(t, token.LineComment, res.AST.Comments[0].Kind)
	assert.Equal(t, " note", res.AST.Comments[0].Text)

	prog := filtered(t, src)
	assert.Zero(t, countType(prog.Tokens, token.FRONTMATTER), "frontmatter has no body node")
	assert.Empty(t, prog.Comments)
	assert.Less(t, len(prog.Tokens), len(res.AST.Tokens))
	for _, tok := range prog.Tokens {
		assert.GreaterOrEqual(t, tok.Span.Start.Line, 5, tok.Literal)
	}
}

func TestParser_InvalidFrontmatter(t *testing.T) {
	_, err := mdx.NewParser().ParseForLint("---\ntitle: [unclosed\n---\n\ntext\n", parser.Options{})
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Pos.Line)

	var fmErr *mdx.FrontmatterError
	require.ErrorAs(t, err, &fmErr)
	assert.Equal(t, 2, fmErr.Line)

	_, filterErr := parser.NewConsistencyFilter(mdx.NewParser()).Parse("---\na: [\n---\n", parser.Options{})
	assert.True(t, errors.As(filterErr, &fmErr), "filter propagates the plugin error")
}

func TestParser_UnclosedFrontmatterIsProse(t *testing.T) {
	res := parse(t, "---\ntitle: x\n")
	assert.NotContains(t, res.Services, mdx.ServiceFrontmatter)
	assert.Zero(t, countType(res.AST.Tokens, token.FRONTMATTER))
}

func TestParser_FencedCode(t *testing.T) {
	src := "Intro\n\n```js\nconst a = 1\n```\n"

	res := parse(t, src)
	require.Equal(t, []parser.NodeType{"Paragraph", "FencedCodeBlock"}, nodeTypes(res.AST))

	code := res.AST.Body[1]
	assert.Equal(t, 3, code.Span.Start.Line)
	assert.Equal(t, 5, code.Span.End.Line)

	assert.Equal(t, 2, countType(res.AST.Tokens, token.FENCE))
	assert.Equal(t, 1, countType(res.AST.Tokens, token.CODE))

	prog := filtered(t, src)
	assert.Len(t, prog.Tokens, len(res.AST.Tokens), "fence lines belong to the block")
}

func TestParser_SetextHeading(t *testing.T) {
	src := "Title\n=====\n\ntext\n"

	res := parse(t, src)
	require.Equal(t, []parser.NodeType{"Heading", "Paragraph"}, nodeTypes(res.AST))
	assert.Equal(t, 2, res.AST.Body[0].Span.End.Line)

	prog := filtered(t, src)
	assert.Len(t, prog.Tokens, len(res.AST.Tokens))
}

func TestParser_ThematicBreak(t *testing.T) {
	src := "a\n\n---\n\nb\n"

	res := parse(t, src)
	require.Equal(t, []parser.NodeType{"Paragraph", "ThematicBreak", "Paragraph"}, nodeTypes(res.AST))
	assert.Equal(t, 3, res.AST.Body[1].Span.Start.Line)

	prog := filtered(t, src)
	assert.Len(t, prog.Tokens, len(res.AST.Tokens))
}

func TestParser_LinkReferenceDefinition(t *testing.T) {
	src := "See [docs][d].\n\n[d]: https://example.com\n"

	res := parse(t, src)
	require.Equal(t, []parser.NodeType{"Paragraph"}, nodeTypes(res.AST))

	onDefLine := 0
	for _, tok := range res.AST.Tokens {
		if tok.Span.Start.Line == 3 {
			onDefLine++
		}
	}
	assert.Positive(t, onDefLine, "lexer sees the definition")

	prog := filtered(t, src)
	assert.Len(t, prog.Tokens, len(res.AST.Tokens)-onDefLine)
	for _, tok := range prog.Tokens {
		assert.Equal(t, 1, tok.Span.Start.Line, tok.Literal)
	}
}

func TestParser_Comments(t *testing.T) {
	src := "{/* hidden */}\n\n<!-- html -->\n"

	res := parse(t, src)
	require.Len(t, res.AST.Comments, 2)
	assert.Equal(t, " hidden ", res.AST.Comments[0].Text)
	assert.Equal(t, " html ", res.AST.Comments[1].Text)
	for _, c := range res.AST.Comments {
		assert.Equal(t, token.BlockComment, c.Kind)
	}

	prog := filtered(t, src)
	assert.Len(t, prog.Comments, 2)
}

func TestParser_MultilineHTMLComment(t *testing.T) {
	src := "<!--\nfirst\nsecond\n-->\n\nafter\n"

	res := parse(t, src)
	require.Len(t, res.AST.Comments, 1)
	c := res.AST.Comments[0]
	assert.Equal(t, 1, c.Span.Start.Line)
	assert.Equal(t, 4, c.Span.End.Line)

	var idents []string
	for _, tok := range res.AST.Tokens {
		if tok.Type == token.IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	assert.Equal(t, []string{"after"}, idents)
}

func TestParser_EmptyDocument(t *testing.T) {
	res := parse(t, "")
	assert.Empty(t, res.AST.Body)
	assert.NotNil(t, res.AST.Tokens)
	assert.NotNil(t, res.AST.Comments)
}

func TestParser_ListChildren(t *testing.T) {
	res := parse(t, "- one\n- two\n")
	require.Len(t, res.AST.Body, 1)

	list := res.AST.Body[0]
	assert.Equal(t, parser.NodeType("List"), list.Type)
	assert.Len(t, list.Children, 2)

	var seen int
	parser.Walk(list, func(*parser.Node) bool {
		seen++
		return true
	})
	assert.GreaterOrEqual(t, seen, 3)
}

func TestParser_Meta(t *testing.T) {
	meta := mdx.NewParser().Meta()
	assert.Equal(t, mdx.MetaName, meta.Name)
	assert.Equal(t, mdx.Version, meta.Version)
}
