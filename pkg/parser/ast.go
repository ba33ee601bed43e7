package parser

import "github.com/leapstack-labs/flatlint/pkg/token"

// NodeType names a syntax tree node kind, e.g. "heading" or "code".
type NodeType string

// Node is a syntax tree node. Only the direct children of a Program are
// consulted when reconciling the token stream with the tree.
type Node struct {
	Type     NodeType
	Span     token.Span
	Children []*Node
}

// Program is the root of a parsed document together with its flat token and
// comment streams, all in the same offset space.
type Program struct {
	Span     token.Span
	Body     []*Node
	Tokens   []token.Token
	Comments []token.Comment
}

// Walk visits n and its descendants depth-first, stopping early if fn
// returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
