// Package parse drives the shift-reduce loop: a canonical SLR(1) parser
// (dragon-book Algorithm 4.44) running a state stack and a synthesized-
// attribute stack in lockstep, invoking one internal/sema.Reduce call per
// reduction. It is deliberately not a generic multi-strategy parser (no
// LALR(1)/CLR(1) support) — Boreal only ever runs one grammar under one
// strategy, so the driver is the textbook loop directly against an
// *ptable.Table.
package parse

import (
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/grammar"
	"github.com/oxixes/boreal-lang-ext/internal/lexer"
	"github.com/oxixes/boreal-lang-ext/internal/ptable"
	"github.com/oxixes/boreal-lang-ext/internal/sema"
)

// TokenSource is the pull-based stream the parser consumes. *lexer.Lexer
// satisfies it directly. SetDeclarationMode lets Actions.OnShift flip
// declaration/use mode at the exact moment the grammar requires it.
type TokenSource interface {
	Next() lexer.Token
	HasNext() bool
	SetDeclarationMode(bool)
}

// Result is everything the parser produced over one token stream.
type Result struct {
	// Accepted is true only if the stream was a complete, syntactically
	// valid Boreal program.
	Accepted bool

	// Value is the synthesized attribute of the start symbol, when Accepted.
	Value sema.Attributes

	// Errors holds at most one syntax error: parsing halts at the first
	// syntax error.
	Errors []diag.Diagnostic
}

// Parser runs one SLR(1) parse of a token stream against a Table, invoking
// actions against a *sema.Actions for each reduction.
type Parser struct {
	table   *ptable.Table
	actions *sema.Actions
}

// New builds a Parser over table, dispatching reductions to actions. Passing
// a nil table selects the bundled default Boreal grammar/table.
func New(table *ptable.Table, actions *sema.Actions) *Parser {
	if table == nil {
		table = ptable.Default
	}
	return &Parser{table: table, actions: actions}
}

// Parse runs the shift-reduce loop to completion or to the first syntax
// error.
func (p *Parser) Parse(src TokenSource) Result {
	states := []int{p.table.Start}
	var attrs []sema.Attributes

	tok := src.Next()

	for {
		top := states[len(states)-1]
		term := tok.TerminalID()
		action := p.table.ActionOf(top, term)

		switch action.Kind {
		case ptable.ActShift:
			states = append(states, action.State)
			attrs = append(attrs, sema.AttributesFromToken(tok))
			p.actions.OnShift(src, tok)
			tok = src.Next()

		case ptable.ActReduce:
			prod := p.table.Productions[action.Production]
			n := len(prod.RHS)

			var rhsAttrs []sema.Attributes
			if n > 0 {
				rhsAttrs = attrs[len(attrs)-n:]
				attrs = attrs[:len(attrs)-n]
				states = states[:len(states)-n]
			}

			synth, err := p.actions.Reduce(prod, rhsAttrs)
			if err != nil {
				return Result{Errors: []diag.Diagnostic{diag.New(synth.Span, "%v", err)}}
			}

			top = states[len(states)-1]
			target, ok := p.table.GotoOf(top, prod.LHS)
			if !ok {
				return Result{Errors: []diag.Diagnostic{
					diag.New(synth.Span, "internal parser error: no GOTO for state %d on %s", top, prod.LHS),
				}}
			}
			states = append(states, target)
			attrs = append(attrs, synth)

		case ptable.ActAccept:
			return Result{Accepted: true, Value: attrs[len(attrs)-1]}

		default:
			return Result{Errors: []diag.Diagnostic{p.syntaxError(top, tok)}}
		}
	}
}

// syntaxError builds the single fatal diagnostic: the token actually
// found, and the sorted set of terminals that would have been accepted
// instead.
func (p *Parser) syntaxError(state int, tok lexer.Token) diag.Diagnostic {
	var expected []string
	if row, ok := p.table.Action[state]; ok {
		for term, a := range row {
			if a.Kind == ptable.ActError {
				continue
			}
			expected = append(expected, humanTerminal(term))
		}
	}

	found := tok.String()
	if tok.Kind == lexer.KEOF {
		found = "end of input"
	}

	return diag.New(tok.Span, "%s", diag.FormatExpected(found, expected))
}

func humanTerminal(term string) string {
	switch term {
	case grammar.EndOfInput:
		return "end of input"
	case "id":
		return "identifier"
	case "intlit":
		return "integer literal"
	case "strlit":
		return "string literal"
	default:
		return "'" + term + "'"
	}
}
