package token

// CommentKind distinguishes line vs block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // # yaml comment
	BlockComment                    // <!-- html --> or {/* mdx */}
)

// String returns the ESTree-style name of the comment kind.
func (k CommentKind) String() string {
	if k == LineComment {
		return "Line"
	}
	return "Block"
}

// Comment represents a comment with position.
type Comment struct {
	Kind CommentKind
	Text string // comment body without delimiters
	Span Span
}
