package mdx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/flatlint/pkg/token"
)

// InlineCode is the token type of a backtick code span. It is registered
// with the token package since only markdown has it.
var InlineCode = token.Register("InlineCode")

// lexer scans a whole document into tokens and comments. It knows three
// line modes: frontmatter, fenced code, and prose.
type lexer struct {
	li *lineIndex
	fm *frontmatter

	pos      int
	open     *fence
	tokens   []token.Token
	comments []token.Comment

	htmlClose closerCache
	mdxClose  closerCache
	ticks     *tickRuns
}

func lex(li *lineIndex, fm *frontmatter) ([]token.Token, []token.Comment) {
	l := &lexer{
		li:        li,
		fm:        fm,
		htmlClose: closerCache{closer: "-->"},
		mdxClose:  closerCache{closer: "*/"},
	}
	l.run()
	return l.tokens, l.comments
}

func (l *lexer) run() {
	src := l.li.src
	for l.pos < len(src) {
		line := l.li.line(l.pos)
		end := l.li.end(line)

		if l.pos == l.li.start(line) && l.lexLine(line) {
			l.pos = l.li.next(line)
			continue
		}
		if l.lexInline(end, l.inFrontmatter(line)) {
			l.pos = l.li.next(line)
		}
	}
}

func (l *lexer) inFrontmatter(line int) bool {
	return l.fm != nil && l.fm.contains(line)
}

// lexLine handles lines that are consumed whole. It reports false when the
// line should be lexed inline.
func (l *lexer) lexLine(line int) bool {
	text := l.li.text(line)
	start := l.li.start(line)

	switch {
	case l.inFrontmatter(line):
		if line == l.fm.openLine || line == l.fm.closeLine {
			l.emit(token.FRONTMATTER, start, start+len(frontmatterDelim))
			return true
		}
		return false

	case l.open != nil:
		if l.open.closedBy(text) {
			l.emitTrimmed(token.FENCE, start, text)
			l.open = nil
			return true
		}
		if strings.TrimSpace(text) != "" {
			l.emitTrimmed(token.CODE, start, text)
		}
		return true
	}

	if f, ok := parseFenceOpen(text); ok {
		l.emitTrimmed(token.FENCE, start, text)
		l.open = &f
		return true
	}
	return false
}

// emitTrimmed emits a token for a line without its surrounding whitespace.
func (l *lexer) emitTrimmed(typ token.TokenType, start int, text string) {
	lead := len(text) - len(strings.TrimLeft(text, " \t"))
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	l.emit(typ, start+lead, start+lead+len(trimmed))
}

func (l *lexer) emit(typ token.TokenType, start, end int) {
	l.tokens = append(l.tokens, token.Token{
		Type:    typ,
		Literal: l.li.src[start:end],
		Span:    l.li.span(start, end),
	})
}

func (l *lexer) comment(kind token.CommentKind, text string, start, end int) {
	l.comments = append(l.comments, token.Comment{
		Kind: kind,
		Text: text,
		Span: l.li.span(start, end),
	})
}

// lexInline scans from l.pos to end. It returns false if a block comment
// ran past end, leaving l.pos after the comment.
func (l *lexer) lexInline(end int, yamlMode bool) bool {
	src := l.li.src
	for l.pos < end {
		c := src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++

		case yamlMode && c == '#' && (l.pos == 0 || isSpace(src[l.pos-1])):
			l.comment(token.LineComment, src[l.pos+1:end], l.pos, end)
			l.pos = end

		case strings.HasPrefix(src[l.pos:], "<!--"):
			if !l.blockComment() {
				l.punct()
				continue
			}
			if l.pos > end {
				return false
			}

		case c == '{' && strings.HasPrefix(strings.TrimLeft(src[l.pos+1:], " \t"), "/*"):
			if !l.mdxComment() {
				l.punct()
				continue
			}
			if l.pos > end {
				return false
			}

		case c == '"' || c == '\'':
			l.str(c, end)

		case c == '`':
			l.codeSpan(end)

		case c >= '0' && c <= '9':
			l.scan(token.NUMBER, isNumberPart)

		default:
			r, _ := utf8.DecodeRuneInString(src[l.pos:])
			if isIdentStart(r) {
				l.scan(token.IDENT, isIdentPart)
			} else {
				l.punct()
			}
		}
	}
	return true
}

func (l *lexer) punct() {
	_, size := utf8.DecodeRuneInString(l.li.src[l.pos:])
	l.emit(token.PUNCT, l.pos, l.pos+size)
	l.pos += size
}

func (l *lexer) scan(typ token.TokenType, part func(rune) bool) {
	src := l.li.src
	start := l.pos
	_, size := utf8.DecodeRuneInString(src[l.pos:])
	l.pos += size
	for l.pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[l.pos:])
		if !part(r) {
			break
		}
		l.pos += size
	}
	l.emit(typ, start, l.pos)
}

// str scans a quoted string that closes on the same line. An unmatched
// quote is punctuation: prose is full of apostrophes.
func (l *lexer) str(quote byte, end int) {
	src := l.li.src
	for i := l.pos + 1; i < end; i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			l.emit(token.STRING, l.pos, i+1)
			l.pos = i + 1
			return
		}
	}
	l.punct()
}

// codeSpan scans a backtick code span closed by a run of the same length on
// the same line. An unmatched run is punctuation.
func (l *lexer) codeSpan(end int) {
	src := l.li.src
	start := l.pos
	n := 0
	for start+n < end && src[start+n] == '`' {
		n++
	}
	if c := l.tickRunsFor(start, end).closing(n, start); c >= 0 {
		l.emit(InlineCode, start, c+n)
		l.pos = c + n
		return
	}
	for range n {
		l.punct()
	}
}

// tickRuns indexes the backtick runs of one line by length.
type tickRuns struct {
	end   int
	byLen map[int][]int
}

// tickRunsFor returns the runs of the line ending at end, indexing them from
// offset from on first use.
func (l *lexer) tickRunsFor(from, end int) *tickRuns {
	if l.ticks != nil && l.ticks.end == end {
		return l.ticks
	}
	src := l.li.src
	t := &tickRuns{end: end, byLen: map[int][]int{}}
	for i := from; i < end; {
		if src[i] != '`' {
			i++
			continue
		}
		run := 0
		for i+run < end && src[i+run] == '`' {
			run++
		}
		t.byLen[run] = append(t.byLen[run], i)
		i += run
	}
	l.ticks = t
	return t
}

// closing returns the start of the first run of length n after offset, or
// -1. Offsets must not decrease between calls.
func (t *tickRuns) closing(n, offset int) int {
	runs := t.byLen[n]
	for len(runs) > 0 && runs[0] <= offset {
		runs = runs[1:]
	}
	t.byLen[n] = runs
	if len(runs) == 0 {
		return -1
	}
	return runs[0]
}

// blockComment consumes an HTML comment. The body may span lines.
func (l *lexer) blockComment() bool {
	const opener, closer = "<!--", "-->"
	src := l.li.src
	body := l.pos + len(opener)
	at := l.htmlClose.next(src, body)
	if at < 0 {
		return false
	}
	end := at + len(closer)
	l.comment(token.BlockComment, src[body:at], l.pos, end)
	l.pos = end
	return true
}

// mdxComment consumes an MDX expression comment: {/* ... */}.
func (l *lexer) mdxComment() bool {
	src := l.li.src
	start := l.pos
	open := start + 1 + (len(src[start+1:]) - len(strings.TrimLeft(src[start+1:], " \t")))
	body := open + 2
	at := l.mdxClose.next(src, body)
	if at < 0 {
		return false
	}
	rest := strings.TrimLeft(src[at+2:], " \t\r\n")
	if !strings.HasPrefix(rest, "}") {
		return false
	}
	end := len(src) - len(rest) + 1
	l.comment(token.BlockComment, src[body:at], start, end)
	l.pos = end
	return true
}

// closerCache remembers the next occurrence of closer found by the last
// search. Search offsets only grow, so a result at or past the new offset is
// still the first one, and a miss stays a miss.
type closerCache struct {
	closer string
	from   int
	at     int
	valid  bool
}

// next returns the offset of the first closer at or after from, or -1.
func (c *closerCache) next(src string, from int) int {
	if c.valid && from >= c.from && (c.at < 0 || c.at >= from) {
		return c.at
	}
	c.from, c.valid, c.at = from, true, -1
	if idx := strings.Index(src[from:], c.closer); idx >= 0 {
		c.at = from + idx
	}
	return c.at
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isNumberPart(r rune) bool {
	return r == '.' || r == '_' || unicode.IsDigit(r) || unicode.IsLetter(r)
}
