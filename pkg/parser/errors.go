package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/flatlint/pkg/token"
)

// ErrNilCapability is returned when a filter wraps no parser.
var ErrNilCapability = errors.New("parser capability is nil")

// ErrNilAST is returned when a parser reports success without a tree.
var ErrNilAST = errors.New("parser returned no AST")

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return "parse error: " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
