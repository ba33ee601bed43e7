package mdx

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/flatlint/pkg/token"
)

// lineIndex maps byte offsets to lines. Lines are 0-based internally and
// 1-based in token positions.
type lineIndex struct {
	src    string
	starts []int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

func (li *lineIndex) count() int {
	return len(li.starts)
}

// line returns the line containing offset.
func (li *lineIndex) line(offset int) int {
	return sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
}

func (li *lineIndex) start(line int) int {
	return li.starts[line]
}

// end returns the offset of the line terminator, excluding a trailing \r.
func (li *lineIndex) end(line int) int {
	e := len(li.src)
	if line+1 < len(li.starts) {
		e = li.starts[line+1] - 1
	}
	if e > li.starts[line] && li.src[e-1] == '\r' {
		e--
	}
	return e
}

// next returns the start of the line after line, or len(src).
func (li *lineIndex) next(line int) int {
	if line+1 < len(li.starts) {
		return li.starts[line+1]
	}
	return len(li.src)
}

func (li *lineIndex) text(line int) string {
	return li.src[li.start(line):li.end(line)]
}

func (li *lineIndex) blank(line int) bool {
	return strings.TrimSpace(li.text(line)) == ""
}

// nextNonBlank returns the first non-blank line at or after from, or -1.
func (li *lineIndex) nextNonBlank(from int) int {
	for l := max(from, 0); l < li.count(); l++ {
		if !li.blank(l) {
			return l
		}
	}
	return -1
}

func (li *lineIndex) position(offset int) token.Position {
	l := li.line(offset)
	return token.Position{Line: l + 1, Column: offset - li.starts[l] + 1, Offset: offset}
}

func (li *lineIndex) span(start, end int) token.Span {
	return token.Span{Start: li.position(start), End: li.position(end)}
}

// lineSpan covers lines first through last, excluding the final terminator.
func (li *lineIndex) lineSpan(first, last int) token.Span {
	return li.span(li.start(first), li.end(last))
}
