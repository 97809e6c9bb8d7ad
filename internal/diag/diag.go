// Package diag holds the diagnostic record types produced by the Boreal
// analysis pipeline, along with the small set of sentinel errors returned by
// ambient infrastructure (table loading, config loading) that embedders need
// to branch on with errors.Is.
package diag

import (
	"errors"
	"fmt"

	"github.com/dekarrin/rosed"
)

// Severity classifies a Diagnostic. Only lexical, syntactic, and
// semantic-type/structural problems are errors; Warning is reserved for
// optional checks that the core does not currently emit but that embedders
// may want to distinguish from hard errors.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Span is the (position, line, column, length) quadruple attached to tokens
// and synthesised non-terminal attributes.
type Span struct {
	Position int // absolute offset into the source, 0-based
	Line     int // 1-based
	Column   int // 0-based
	Length   int
}

// End returns the absolute offset one past the last byte of the span.
func (s Span) End() int {
	return s.Position + s.Length
}

// Diagnostic is the error record for the pipeline: a severity, a message,
// and a source span. It is plain data, not an error value — the owning
// component (Lexer, Parser, SemanticActions) appends these to its own list
// in source order.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (line %d, col %d)", d.Severity, d.Message, d.Span.Line, d.Span.Column)
}

// New creates an error-severity Diagnostic at the given span.
func New(span Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Span: span}
}

// Warn creates a warning-severity Diagnostic at the given span.
func Warn(span Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Span: span}
}

// Sentinel causes for ambient (non-diagnostic) failures: problems loading a
// parse table or a config file, which the caller of the library must be able
// to branch on, unlike Diagnostics which are simply accumulated.
var (
	ErrMalformedTable  = errors.New("malformed parse table")
	ErrGrammarConflict = errors.New("grammar is not SLR(1)")
	ErrBadConfig       = errors.New("invalid configuration")
)

// Error wraps an ambient failure with a human-readable message and an
// optional cause, compatible with errors.Is/errors.Unwrap against the
// cause.
type Error struct {
	msg   string
	cause error
}

func Wrap(cause error, msg string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(msg, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// FormatExpected renders a syntax error's "expected" terminal-name list as a
// natural-language, word-wrapped sentence using rosed.Edit(...).WordWrap.
func FormatExpected(found string, expected []string) string {
	if len(expected) == 0 {
		return fmt.Sprintf("unexpected %s", found)
	}

	list := oxfordJoin(expected)
	msg := fmt.Sprintf("unexpected %s; expected %s", found, list)
	return rosed.Edit(msg).Wrap(100).String()
}

func oxfordJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		out := ""
		for i, it := range items {
			if i == len(items)-1 {
				out += "or " + it
			} else {
				out += it + ", "
			}
		}
		return out
	}
}
