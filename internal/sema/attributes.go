// Package sema implements the synthesized-attribute semantic actions bound
// to the Boreal grammar's productions: scope management, declaration
// bookkeeping (memory offsets, parameter lists, return types, codegen
// labels), and the full type-checking matrix for expressions, assignments,
// calls, I/O, and control flow.
package sema

import (
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/lexer"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

// Attributes is the value carried on the parser's attribute stack: one slot
// per symbol, terminal or non-terminal, on the state stack. Only the fields
// relevant to a given symbol are populated; the rest sit at their zero
// value, matching how little state most terminals actually carry.
type Attributes struct {
	Span diag.Span

	// DataType is the synthesized type of an expression-producing
	// non-terminal (EXPR and everything under it), or of a TYPE production.
	DataType symtab.DataType

	// Symbol is populated for an "id" terminal (from the token's resolved
	// symbol) and propagated unchanged through IDLIST collection.
	Symbol *symtab.Symbol

	// Symbols accumulates a list of declared/used identifiers, produced by
	// IDLIST and consumed by VARDECL, PARAM and READSTMT.
	Symbols []*symtab.Symbol

	// IdentSpans parallels Symbols with each identifier's own token span,
	// for productions (READSTMT) that need the use site rather than the
	// symbol's declaration site.
	IdentSpans []diag.Span

	IntValue int
	Lexeme   string

	// ExitCount is the number of "exit when" occurrences synthesised from
	// this subtree, summed bottom-up through every compound statement.
	// LOOPSTMT is the only production that consumes it (checks it against
	// one and resets it to zero for everything above).
	ExitCount int

	// ExitSite is the span of an exit contributing to ExitCount; the
	// earliest one is kept, for reporting an exit that escapes its
	// enclosing loop.
	ExitSite diag.Span

	// ByRef is MODE's synthesized value: true if the "var" keyword was
	// present in a parameter declaration.
	ByRef bool

	// Params accumulates formal parameter descriptors through PARAM and
	// PARAMLIST, for attachment to a procedure/function's Symbol and for
	// call-site arity/type checking.
	Params []symtab.Param

	// ArgTypes accumulates actual-argument types through ARGLIST, for
	// call-site checking against a callee's Params.
	ArgTypes []symtab.DataType
	ArgCount int
}

// AttributesFromToken seeds the attribute stack slot pushed alongside a
// shifted terminal.
func AttributesFromToken(tok lexer.Token) Attributes {
	a := Attributes{
		Span:     tok.Span,
		Symbol:   tok.Symbol,
		IntValue: tok.IntValue,
		Lexeme:   tok.Lexeme,
	}
	if tok.Kind == lexer.KKeyword {
		switch tok.KeywordID {
		case "true", "false":
			a.DataType = symtab.Boolean
		}
	}
	return a
}

// spanOf combines the spans of a reduced production's children into the
// span of the synthesized non-terminal: start of the first child to the end
// of the last. An empty (lambda) production has no children to draw a span
// from and is given the zero Span; callers needing a real position for an
// empty production's diagnostics fall back to the surrounding production's
// span instead.
func spanOf(rhs []Attributes) diag.Span {
	if len(rhs) == 0 {
		return diag.Span{}
	}
	first := rhs[0].Span
	last := rhs[len(rhs)-1].Span
	return diag.Span{
		Position: first.Position,
		Line:     first.Line,
		Column:   first.Column,
		Length:   last.End() - first.Position,
	}
}
