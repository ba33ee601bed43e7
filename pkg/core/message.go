package core

// Message is a single lint finding with 1-based line and column numbers.
type Message struct {
	RuleID    string   `json:"rule_id,omitempty"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	EndLine   int      `json:"end_line,omitempty"`
	EndColumn int      `json:"end_column,omitempty"`
	Fatal     bool     `json:"fatal,omitempty"` // parse failure rather than a rule violation
}
