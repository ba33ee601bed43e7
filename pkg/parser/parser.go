// Package parser defines the contract between document parsers and generic
// position-based lint tooling, and provides the consistency filter that makes
// a third-party parser safe to drive that tooling.
//
// A plugin parser implements Capability. The filtering wrapper returned by
// NewConsistencyFilter implements Parser, exposing both the legacy Parse
// entry point and the richer ParseForLint entry point:
//
//	p := parser.NewConsistencyFilter(capability)
//	prog, err := p.Parse(text, parser.Options{})
//	res, err := p.ParseForLint(text, parser.Options{})
//
// Both return identically filtered token and comment streams.
package parser

// EcmaFeatures toggles syntax features of embedded code.
type EcmaFeatures struct {
	JSX           bool `json:"jsx,omitempty" yaml:"jsx,omitempty"`
	ImpliedStrict bool `json:"impliedStrict,omitempty" yaml:"impliedStrict,omitempty"`
}

// Options are passed through to the underlying parser unchanged.
type Options struct {
	EcmaVersion  string       `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty"`
	SourceType   string       `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	EcmaFeatures EcmaFeatures `json:"ecmaFeatures" yaml:"ecmaFeatures"`
	FilePath     string       `json:"filePath,omitempty" yaml:"filePath,omitempty"`
}

// LintResult is the richer parse result: the tree plus parser services and
// visitor keys for tooling that understands them.
type LintResult struct {
	AST         *Program
	Services    map[string]any
	VisitorKeys map[string][]string
}

// Capability is the inbound contract a plugin parser must satisfy.
type Capability interface {
	ParseForLint(text string, opts Options) (*LintResult, error)
}

// Parser is the outbound contract installed into a language configuration.
// Generic tooling may call either entry point depending on its own version.
type Parser interface {
	Capability
	Parse(text string, opts Options) (*Program, error)
}

// Meta identifies a parser implementation.
type Meta struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// MetaProvider is implemented by parsers that can describe themselves.
type MetaProvider interface {
	Meta() Meta
}
