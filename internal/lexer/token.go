package lexer

import (
	"fmt"

	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

// Kind identifies the class of a Token for this fixed, small terminal set:
// Human() feeds the parser's "expected token" error messages.
type Kind int

const (
	KEOF Kind = iota
	KIdent
	KKeyword // catch-all; Lexeme holds the exact reserved word, lower-cased
	KIntLit
	KStrLit

	// operators / punctuation
	KAssign // :=
	KLe     // <=
	KGe     // >=
	KNe     // <>
	KEq     // =
	KLt     // <
	KGt     // >
	KPlus
	KMinus
	KStar
	KSlash
	KPower // **
	KLParen
	KRParen
	KLBrace
	KRBrace
	KSemi
	KColon
	KComma
)

var humanNames = map[Kind]string{
	KEOF:    "end of input",
	KIdent:  "identifier",
	KIntLit: "integer literal",
	KStrLit: "string literal",
	KAssign: "':='",
	KLe:     "'<='",
	KGe:     "'>='",
	KNe:     "'<>'",
	KEq:     "'='",
	KLt:     "'<'",
	KGt:     "'>'",
	KPlus:   "'+'",
	KMinus:  "'-'",
	KStar:   "'*'",
	KSlash:  "'/'",
	KPower:  "'**'",
	KLParen: "'('",
	KRParen: "')'",
	KLBrace: "'{'",
	KRBrace: "'}'",
	KSemi:   "';'",
	KColon:  "':'",
	KComma:  "','",
}

// Human gives a human-readable name for the Kind, for use in diagnostics.
func (k Kind) Human() string {
	if k == KKeyword {
		return "keyword"
	}
	if n, ok := humanNames[k]; ok {
		return n
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is one lexed unit: kind, lexeme, 1-based line, 0-based column,
// absolute position, and length. Identifier tokens additionally
// carry the resolved Symbol, when one was attached during lexing.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   diag.Span

	// KeywordID is set when Kind == KKeyword, naming which reserved word
	// this is (lower-case), so the parser can distinguish "if" from "while"
	// without string-comparing Lexeme everywhere.
	KeywordID string

	// Symbol is populated for identifier tokens once they have been
	// resolved (declared or looked up) against the symbol table.
	Symbol *symtab.Symbol

	// IntValue is populated for KIntLit tokens.
	IntValue int
}

// TerminalID returns the grammar terminal name this token corresponds to,
// used to index the ACTION table: keywords and punctuation use their own
// literal spelling (lower-case), identifiers/literals use a fixed name.
func (t Token) TerminalID() string {
	switch t.Kind {
	case KEOF:
		return "$"
	case KIdent:
		return "id"
	case KIntLit:
		return "intlit"
	case KStrLit:
		return "strlit"
	case KKeyword:
		return t.KeywordID
	default:
		return t.Lexeme
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.TerminalID(), t.Lexeme, t.Span.Line, t.Span.Column)
}
