package sema

import (
	"sort"

	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

// TokenType classifies a semantic token for editor highlighting.
type TokenType int

const (
	TokenVariable TokenType = iota
	TokenFunction
)

func (t TokenType) String() string {
	if t == TokenFunction {
		return "function"
	}
	return "variable"
}

// Modifier is a bitset of semantic-token modifiers.
type Modifier int

// ModifierDefinition marks a token as the declaration site of its symbol,
// as opposed to a later use.
const ModifierDefinition Modifier = 1 << iota

// SemanticToken is one highlighted identifier occurrence: its source
// position, the kind of symbol it resolved to, and whether this occurrence
// is the declaration site.
type SemanticToken struct {
	Line      int
	Column    int
	Length    int
	TokenType TokenType
	Modifiers Modifier
}

// tokenOccurrence records one identifier occurrence as it is shifted or
// reduced. The Symbol pointer, not a copy of its Kind, is kept: declaration
// actions mutate a Symbol's Kind in place after the occurrence is first
// seen (e.g. a header name is shifted before PROCDECL/FUNCDECL assigns its
// Kind), so the final classification can only be read once analysis ends.
type tokenOccurrence struct {
	span       diag.Span
	sym        *symtab.Symbol
	definition bool
}

// recordOccurrence records one resolved identifier occurrence. A nil sym
// (an undeclared or duplicate-declared identifier) is not a highlightable
// occurrence and is silently dropped.
func (a *Actions) recordOccurrence(span diag.Span, sym *symtab.Symbol, definition bool) {
	if sym == nil {
		return
	}
	a.occurrences = append(a.occurrences, tokenOccurrence{span: span, sym: sym, definition: definition})
}

// tokenTypeOf maps a Symbol's Kind to the semantic-token stream's
// two-valued tokenType; Unknown (never promoted, e.g. a symbol whose own
// declaration failed a later check) has no token type.
func tokenTypeOf(kind symtab.Kind) (TokenType, bool) {
	switch kind {
	case symtab.Variable, symtab.Parameter, symtab.Program:
		return TokenVariable, true
	case symtab.Function, symtab.Procedure:
		return TokenFunction, true
	default:
		return 0, false
	}
}

// SemanticTokens resolves every recorded occurrence against its symbol's
// final Kind and returns them in source order. Call only after the whole
// analysis has finished reducing.
func (a *Actions) SemanticTokens() []SemanticToken {
	out := make([]SemanticToken, 0, len(a.occurrences))
	for _, occ := range a.occurrences {
		tt, ok := tokenTypeOf(occ.sym.Kind)
		if !ok {
			continue
		}
		var mods Modifier
		if occ.definition {
			mods |= ModifierDefinition
		}
		out = append(out, SemanticToken{
			Line:      occ.span.Line,
			Column:    occ.span.Column,
			Length:    occ.span.Length,
			TokenType: tt,
			Modifiers: mods,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}
