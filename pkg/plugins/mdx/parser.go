package mdx

import (
	"errors"

	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/leapstack-labs/flatlint/pkg/token"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ServiceFrontmatter is the LintResult.Services key holding decoded frontmatter.
const ServiceFrontmatter = "frontmatter"

// visitorKeys lists the child fields tooling may traverse per node type.
func visitorKeys() map[string][]string {
	return map[string][]string{
		"Program":    {"body"},
		"List":       {"children"},
		"ListItem":   {"children"},
		"Blockquote": {"children"},
	}
}

// Parser parses markdown and MDX documents. The token stream covers the
// whole document, including frontmatter and link reference definitions that
// no body node spans; wrap it with parser.NewConsistencyFilter before
// handing it to position-based tooling.
type Parser struct {
	md goldmark.Markdown
}

var _ interface {
	parser.Capability
	parser.MetaProvider
} = (*Parser)(nil)

// NewParser creates a parser with CommonMark and GFM block syntax.
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Meta identifies the parser.
func (p *Parser) Meta() parser.Meta {
	return parser.Meta{Name: MetaName, Version: Version}
}

// ParseForLint parses text into a program with tokens and comments.
func (p *Parser) ParseForLint(src string, opts parser.Options) (*parser.LintResult, error) {
	li := newLineIndex(src)

	services := map[string]any{}
	if opts.FilePath != "" {
		services["filePath"] = opts.FilePath
	}

	markdown := src
	from := 0
	fm, hasFM := findFrontmatter(li)
	if hasFM {
		if err := fm.parse(); err != nil {
			msg := err.Error()
			var fmErr *FrontmatterError
			if errors.As(err, &fmErr) {
				msg = fmErr.Message
			}
			return nil, &parser.ParseError{
				Pos:     li.position(li.start(fm.openLine + 1)),
				Message: msg,
				Err:     err,
			}
		}
		services[ServiceFrontmatter] = fm.data
		markdown = fm.blank(li)
		from = fm.closeLine + 1
	}

	doc := p.md.Parser().Parse(text.NewReader([]byte(markdown)))
	b := &blockBuilder{li: li}
	body := b.body(doc, from)

	tokens, comments := lex(li, fm)
	if tokens == nil {
		tokens = []token.Token{}
	}
	if comments == nil {
		comments = []token.Comment{}
	}

	return &parser.LintResult{
		AST: &parser.Program{
			Span:     li.span(0, len(src)),
			Body:     body,
			Tokens:   tokens,
			Comments: comments,
		},
		Services:    services,
		VisitorKeys: visitorKeys(),
	}, nil
}
