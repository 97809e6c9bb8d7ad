// Package boreal is the front-end analysis pipeline for the Boreal teaching
// language: a table-driven lexer coupled to a symbol table, an SLR(1)
// parser, and a synthesized-attribute type checker, wired together into
// one entry point.
package boreal

import (
	"github.com/google/uuid"

	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/lexer"
	"github.com/oxixes/boreal-lang-ext/internal/parse"
	"github.com/oxixes/boreal-lang-ext/internal/ptable"
	"github.com/oxixes/boreal-lang-ext/internal/sema"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

// Result is everything one call to Analyze produced: every diagnostic
// bucketed by the stage that raised it, plus the resolved symbol table,
// tagged with a RunID so an embedder can correlate a result with whatever
// it logged about the request that produced it.
type Result struct {
	RunID uuid.UUID

	Accepted bool

	LexicalErrors    []diag.Diagnostic
	SyntaxErrors     []diag.Diagnostic
	SemanticErrors   []diag.Diagnostic
	SemanticWarnings []diag.Diagnostic

	// SemanticTokens is the highlighting stream: one entry per resolved
	// identifier occurrence, in source order.
	SemanticTokens []sema.SemanticToken

	SymbolTable *symtab.Table
}

// OK reports whether source was entirely free of diagnostics at every stage.
func (r Result) OK() bool {
	return r.Accepted &&
		len(r.LexicalErrors) == 0 &&
		len(r.SyntaxErrors) == 0 &&
		len(r.SemanticErrors) == 0
}

// Analyze runs the full pipeline over source using the default
// configuration (Boreal's standard limits and reserved-word table).
func Analyze(source string) Result {
	return AnalyzeWithConfig(source, config.Default())
}

// AnalyzeWithConfig runs the full pipeline with a caller-supplied
// configuration, e.g. one loaded from a TOML file via config.Load.
func AnalyzeWithConfig(source string, cfg config.Config) Result {
	runID, err := uuid.NewRandom()
	if err != nil {
		runID = uuid.UUID{}
	}

	table := symtab.New()
	lex := lexer.New(source, table, cfg)
	actions := sema.NewActions(table, cfg)
	parser := parse.New(ptable.Default, actions)

	parseResult := parser.Parse(lex)

	res := Result{
		RunID:            runID,
		Accepted:         parseResult.Accepted,
		LexicalErrors:    lex.Errors,
		SyntaxErrors:     parseResult.Errors,
		SemanticErrors:   actions.Errors,
		SemanticWarnings: actions.Warnings,
		SemanticTokens:   actions.SemanticTokens(),
		SymbolTable:      table,
	}
	return res
}

// DefinitionLocation is the span of a declaration found by FindDefinition.
type DefinitionLocation struct {
	Span  diag.Span
	Found bool
}

// FindDefinition locates the declaration site of the identifier occupying
// (line, column) in source, by re-running the pipeline with the lexer armed
// to stop as soon as it produces a token crossing that position (the "go to
// definition" stop-at protocol), then reading off the Symbol attached to
// the token that was being lexed at that moment.
func FindDefinition(source string, line, column int) DefinitionLocation {
	return FindDefinitionWithConfig(source, line, column, config.Default())
}

// FindDefinitionWithConfig is FindDefinition with a caller-supplied
// configuration.
func FindDefinitionWithConfig(source string, line, column int, cfg config.Config) DefinitionLocation {
	table := symtab.New()
	lex := lexer.New(source, table, cfg)
	lex.ArmStopAt(line, column)
	actions := sema.NewActions(table, cfg)
	parser := parse.New(ptable.Default, actions)

	parseResult := parser.Parse(lex)

	// The stop-at arming above already truncates lexing at the queried
	// position, so any diagnostic collected during this run occurred at or
	// before it: findDefinition must not answer past a preceding error.
	if len(lex.Errors) > 0 || len(parseResult.Errors) > 0 {
		return DefinitionLocation{}
	}

	tok, ok := lex.LastToken()
	if !ok || tok.Kind != lexer.KIdent || tok.Symbol == nil {
		return DefinitionLocation{}
	}
	return DefinitionLocation{Span: tok.Symbol.Def, Found: true}
}
