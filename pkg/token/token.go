// Package token defines the lexical tokens shared by document parsers and
// the generic tooling that walks their token streams.
//
// Builtin token types are constants (IDs 0-999) for switch performance.
// Plugin-specific token types are registered dynamically via Register().
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // token.TokenType reads better at call sites than token.Type
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier or bare word
	NUMBER // 123, 45.67
	STRING // "hello" or 'hello'

	// Punctuation
	PUNCT // any single punctuation character

	// Markup delimiters
	FENCE       // ``` or ~~~ code fence marker
	FRONTMATTER // --- frontmatter delimiter
	CODE        // one line of fenced code content

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:         "EOF",
	ILLEGAL:     "Illegal",
	IDENT:       "Identifier",
	NUMBER:      "Numeric",
	STRING:      "String",
	PUNCT:       "Punctuator",
	FENCE:       "Fence",
	FRONTMATTER: "Frontmatter",
	CODE:        "Code",
}

// IsDelimiter returns true for raw markup delimiters that carry no content.
func IsDelimiter(t TokenType) bool {
	return t == FENCE || t == FRONTMATTER
}

// Token represents a lexical token with its source span.
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}

// Start returns the byte offset where the token begins.
func (t Token) Start() int { return t.Span.Start.Offset }

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Span.End.Offset }
