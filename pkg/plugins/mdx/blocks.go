package mdx

import (
	"strings"

	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// blockBuilder converts a goldmark document into body nodes whose spans
// cover whole source lines, including fence and underline lines that carry
// no goldmark segment.
type blockBuilder struct {
	li *lineIndex
}

// lineRange is an inclusive range of 0-based lines.
type lineRange struct {
	first, last int
	ok          bool
}

func (r *lineRange) add(first, last int) {
	if !r.ok || first < r.first {
		r.first = first
	}
	if !r.ok || last > r.last {
		r.last = last
	}
	r.ok = true
}

func (b *blockBuilder) addSegment(r *lineRange, seg text.Segment) {
	if seg.Start < 0 || seg.Start > len(b.li.src) {
		return
	}
	stop := max(seg.Stop-1, seg.Start)
	r.add(b.li.line(seg.Start), b.li.line(min(stop, len(b.li.src))))
}

// body builds the top-level nodes. Lines before from are never assigned to
// a node; they hold the frontmatter.
func (b *blockBuilder) body(doc ast.Node, from int) []*parser.Node {
	body := []*parser.Node{}
	cursor := from
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		r := b.lines(n, cursor)
		if !r.ok {
			continue
		}
		body = append(body, b.node(n, r))
		cursor = r.last + 1
	}
	return body
}

func (b *blockBuilder) node(n ast.Node, r lineRange) *parser.Node {
	out := &parser.Node{
		Type: parser.NodeType(n.Kind().String()),
		Span: b.li.lineSpan(r.first, r.last),
	}
	if !isContainer(n) {
		return out
	}
	cursor := r.first
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock {
			continue
		}
		cr := b.lines(c, -1)
		if !cr.ok {
			continue
		}
		// Children are clipped to their parent.
		cr.first = max(cr.first, cursor, r.first)
		cr.last = min(cr.last, r.last)
		if cr.first > cr.last {
			continue
		}
		out.Children = append(out.Children, b.node(c, cr))
		cursor = cr.last + 1
	}
	return out
}

func isContainer(n ast.Node) bool {
	switch n.Kind() {
	case ast.KindList, ast.KindListItem, ast.KindBlockquote, ast.KindDocument:
		return true
	}
	return false
}

// lines computes the line range of n. from is the first line a segment-less
// top-level node may occupy; -1 disables that lookup for nested nodes.
func (b *blockBuilder) lines(n ast.Node, from int) lineRange {
	var r lineRange

	switch v := n.(type) {
	case *ast.Text:
		b.addSegment(&r, v.Segment)
		return r
	case *ast.RawHTML:
		if v.Segments != nil {
			for i := 0; i < v.Segments.Len(); i++ {
				b.addSegment(&r, v.Segments.At(i))
			}
		}
		return r
	}

	if n.Type() == ast.TypeBlock {
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			b.addSegment(&r, segs.At(i))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if cr := b.lines(c, -1); cr.ok {
			r.add(cr.first, cr.last)
		}
	}

	switch v := n.(type) {
	case *ast.FencedCodeBlock:
		return b.fenced(v, r, from)
	case *ast.HTMLBlock:
		if v.HasClosure() {
			b.addSegment(&r, v.ClosureLine)
		}
	case *ast.Heading:
		if r.ok && b.setext(r) {
			r.last++
		}
	case *east.Table:
		if r.ok && r.first == r.last && r.last+1 < b.li.count() && isTableDelimiter(b.li.text(r.last+1)) {
			r.last++
		}
	}

	if !r.ok && from >= 0 {
		// Thematic breaks and empty headings carry no segments.
		if l := b.li.nextNonBlank(from); l >= 0 {
			r.add(l, l)
		}
	}
	return r
}

// fenced extends a fenced code block's content lines to its fences.
func (b *blockBuilder) fenced(v *ast.FencedCodeBlock, r lineRange, from int) lineRange {
	open := -1
	switch {
	case r.ok:
		open = r.first - 1
	case v.Info != nil:
		open = b.li.line(v.Info.Segment.Start)
	case from >= 0:
		open = b.li.nextNonBlank(from)
	}
	if open < 0 {
		return r
	}
	f, ok := parseFenceOpen(strings.TrimLeft(b.li.text(open), " \t>-*+0123456789.)"))
	if !ok {
		return r
	}

	last := open
	if r.ok {
		last = r.last
	}
	if next := last + 1; next < b.li.count() && f.closedBy(strings.TrimLeft(b.li.text(next), " \t>")) {
		last = next
	}
	return lineRange{first: open, last: last, ok: true}
}

// setext reports whether the heading at r is underlined on the next line.
func (b *blockBuilder) setext(r lineRange) bool {
	if r.last+1 >= b.li.count() {
		return false
	}
	head, _, _ := trimIndent(b.li.text(r.first))
	if strings.HasPrefix(head, "#") {
		return false
	}
	return isSetextUnderline(b.li.text(r.last + 1))
}
