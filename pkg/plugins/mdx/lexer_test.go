package mdx

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/flatlint/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	type tok struct {
		typ token.TokenType
		lit string
	}

	tests := []struct {
		name string
		src  string
		want []tok
	}{
		{
			name: "prose with apostrophe",
			src:  "Don't stop 42",
			want: []tok{
				{token.IDENT, "Don"}, {token.PUNCT, "'"}, {token.IDENT, "t"},
				{token.IDENT, "stop"}, {token.NUMBER, "42"},
			},
		},
		{
			name: "quoted string",
			src:  `say "hi there"`,
			want: []tok{{token.IDENT, "say"}, {token.STRING, `"hi there"`}},
		},
		{
			name: "fenced code",
			src:  "```ts\nlet a = 1\n\n```\n",
			want: []tok{{token.FENCE, "```ts"}, {token.CODE, "let a = 1"}, {token.FENCE, "```"}},
		},
		{
			name: "unclosed fence runs to end",
			src:  "~~~\ncode\n",
			want: []tok{{token.FENCE, "~~~"}, {token.CODE, "code"}},
		},
		{
			name: "heading",
			src:  "# Hi",
			want: []tok{{token.PUNCT, "#"}, {token.IDENT, "Hi"}},
		},
		{
			name: "inline code",
			src:  "run `go test` or ``a`b``",
			want: []tok{
				{token.IDENT, "run"}, {InlineCode, "`go test`"},
				{token.IDENT, "or"}, {InlineCode, "``a`b``"},
			},
		},
		{
			name: "unmatched backtick",
			src:  "a ` b",
			want: []tok{{token.IDENT, "a"}, {token.PUNCT, "`"}, {token.IDENT, "b"}},
		},
		{
			name: "unterminated html comment",
			src:  "<!-- x",
			want: []tok{
				{token.PUNCT, "<"}, {token.PUNCT, "!"}, {token.PUNCT, "-"}, {token.PUNCT, "-"},
				{token.IDENT, "x"},
			},
		},
		{
			name: "code span runs of other lengths are skipped",
			src:  "` `` x ``` `",
			want: []tok{{InlineCode, "` `` x ``` `"}},
		},
		{
			name: "unmatched run after a span",
			src:  "`` ` `` `",
			want: []tok{{InlineCode, "`` ` ``"}, {token.PUNCT, "`"}},
		},
		{
			name: "mdx comment closer without brace",
			src:  "{/* a */ b",
			want: []tok{
				{token.PUNCT, "{"}, {token.PUNCT, "/"}, {token.PUNCT, "*"},
				{token.IDENT, "a"}, {token.PUNCT, "*"}, {token.PUNCT, "/"},
				{token.IDENT, "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			li := newLineIndex(tt.src)
			tokens, _ := lex(li, nil)

			got := make([]tok, 0, len(tokens))
			for _, tk := range tokens {
				got = append(got, tok{tk.Type, tk.Literal})
				assert.Equal(t, tk.Literal, tt.src[tk.Span.Start.Offset:tk.Span.End.Offset])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLex_Positions(t *testing.T) {
	li := newLineIndex("a\n  bc\r\nd")
	tokens, _ := lex(li, nil)

	if assert.Len(t, tokens, 3) {
		assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 4}, tokens[1].Span.Start)
		assert.Equal(t, token.Position{Line: 3, Column: 1, Offset: 8}, tokens[2].Span.Start)
	}
}

func TestLex_FrontmatterComments(t *testing.T) {
	src := "---\n# heading comment\nkey: value#not-a-comment\n---\n"
	li := newLineIndex(src)
	fm, ok := findFrontmatter(li)
	if !assert.True(t, ok) {
		return
	}

	tokens, comments := lex(li, fm)

	if assert.Len(t, comments, 1) {
		assert.Equal(t, " heading comment", comments[0].Text)
	}
	var frontmatter int
	for _, tk := range tokens {
		if tk.Type == token.FRONTMATTER {
			frontmatter++
		}
	}
	assert.Equal(t, 2, frontmatter)
}

func TestLineIndex(t *testing.T) {
	li := newLineIndex("ab\r\ncd\n")

	assert.Equal(t, 3, li.count())
	assert.Equal(t, 0, li.line(0))
	assert.Equal(t, 0, li.line(3))
	assert.Equal(t, 1, li.line(4))
	assert.Equal(t, "ab", li.text(0))
	assert.Equal(t, "cd", li.text(1))
	assert.Equal(t, "", li.text(2))
	assert.Equal(t, 1, li.nextNonBlank(1))
	assert.Equal(t, -1, li.nextNonBlank(2))
}

func TestFence(t *testing.T) {
	f, ok := parseFenceOpen("  ````js title=x")
	if assert.True(t, ok) {
		assert.Equal(t, byte('`'), f.char)
		assert.Equal(t, 4, f.length)
		assert.Equal(t, "js title=x", f.info)
		assert.False(t, f.closedBy("```"))
		assert.True(t, f.closedBy("`````  "))
	}

	_, ok = parseFenceOpen("    ```")
	assert.False(t, ok, "four spaces is indented code")
	_, ok = parseFenceOpen("``` a`b")
	assert.False(t, ok)

	assert.True(t, isSetextUnderline("==="))
	assert.True(t, isSetextUnderline("  ---  "))
	assert.False(t, isSetextUnderline("=-="))
	assert.True(t, isTableDelimiter("| --- | :-: |"))
	assert.False(t, isTableDelimiter("| a |"))
}

func TestInlineCodeTokenType(t *testing.T) {
	assert.Equal(t, "InlineCode", InlineCode.String())
	typ, ok := token.Lookup("InlineCode")
	assert.True(t, ok)
	assert.Equal(t, InlineCode, typ)
}

func TestLex_RepeatedOpeners(t *testing.T) {
	const n = 20000

	tests := []struct {
		name     string
		src      string
		tokens   map[token.TokenType]int
		comments int
	}{
		{
			name:   "unterminated html comments",
			src:    strings.Repeat("<!--", n),
			tokens: map[token.TokenType]int{token.PUNCT: 4 * n},
		},
		{
			name:     "html comment closed at the end",
			src:      strings.Repeat("<!--", n) + "-->",
			tokens:   map[token.TokenType]int{},
			comments: 1,
		},
		{
			name:   "unterminated mdx comments",
			src:    strings.Repeat("{/*", n),
			tokens: map[token.TokenType]int{token.PUNCT: 3 * n},
		},
		{
			name:     "mdx comment closed at the end",
			src:      strings.Repeat("{/*", n) + "*/}",
			tokens:   map[token.TokenType]int{},
			comments: 1,
		},
		{
			name:   "alternating backticks",
			src:    strings.Repeat("`a", n+1),
			tokens: map[token.TokenType]int{InlineCode: n / 2, token.IDENT: n/2 + 1, token.PUNCT: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, comments := lex(newLineIndex(tt.src), nil)

			got := map[token.TokenType]int{}
			for _, tk := range tokens {
				got[tk.Type]++
			}
			assert.Equal(t, tt.tokens, got)
			assert.Len(t, comments, tt.comments)
		})
	}
}

func TestCloserCache(t *testing.T) {
	src := "a --> b --> c"
	c := closerCache{closer: "-->"}

	assert.Equal(t, 2, c.next(src, 0))
	assert.Equal(t, 2, c.next(src, 1), "cached result still ahead")
	assert.Equal(t, 8, c.next(src, 3))
	assert.Equal(t, -1, c.next(src, 9))
	assert.Equal(t, -1, c.next(src, 12), "a miss stays a miss")
}
