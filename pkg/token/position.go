package token

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span represents a range in source text. Start is inclusive and End is the
// offset just past the last byte.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Encloses reports whether inner lies within s. Both ends are inclusive, so
// a span with identical bounds is enclosed.
func (s Span) Encloses(inner Span) bool {
	return s.Start.Offset <= inner.Start.Offset && s.End.Offset >= inner.End.Offset
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsValid returns true if both positions are valid and Start <= End.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Offset <= s.End.Offset
}

// OffsetSpan builds a span from raw offsets, leaving line information unset.
func OffsetSpan(start, end int) Span {
	return Span{Start: Position{Offset: start}, End: Position{Offset: end}}
}
