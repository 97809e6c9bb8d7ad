// Package lexer implements a table-driven DFA lexer: a lazy pull-based
// token stream coupled to the symbol table so that identifier tokens are
// either declared or resolved as they are produced, depending on a mode
// flag that the semantic actions toggle externally.
package lexer

import (
	"strings"

	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

const eofRune = rune(-1)

var opKind = map[actionTag]Kind{
	actOpPlus:   KPlus,
	actOpMinus:  KMinus,
	actOpStar:   KStar,
	actOpPower:  KPower,
	actOpSlash:  KSlash,
	actOpEq:     KEq,
	actOpLt:     KLt,
	actOpLe:     KLe,
	actOpNe:     KNe,
	actOpGt:     KGt,
	actOpGe:     KGe,
	actOpLParen: KLParen,
	actOpRParen: KRParen,
	actOpSemi:   KSemi,
	actOpColon:  KColon,
	actOpAssign: KAssign,
	actOpComma:  KComma,
}

// Lexer is a single-pass, single-threaded tokenizer over one source buffer.
// It is not safe for concurrent use and is discarded after one analysis.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int

	cfg   config.Config
	table *symtab.Table

	declMode bool

	Errors []diag.Diagnostic

	stopArmed bool
	stopLine  int
	stopCol   int
	stopped   bool

	lastToken    Token
	haveLastTok  bool
	done         bool
}

// New creates a Lexer over source, sharing table with the rest of the
// analysis. Declaration mode starts true, matching the state right before
// the program header is lexed.
func New(source string, table *symtab.Table, cfg config.Config) *Lexer {
	return &Lexer{
		src:      []rune(source),
		line:     1,
		col:      0,
		cfg:      cfg,
		table:    table,
		declMode: true,
	}
}

// SetDeclarationMode is called exclusively by Semantic Actions to toggle
// whether the next identifiers lexed are being declared or looked up.
func (l *Lexer) SetDeclarationMode(declaring bool) {
	l.declMode = declaring
}

// DeclarationMode reports the current mode.
func (l *Lexer) DeclarationMode() bool {
	return l.declMode
}

// ArmStopAt configures the "go to definition" stop-at protocol: once a
// token whose end position crosses (line, col) has been produced,
// subsequent calls to Next return end-of-stream.
func (l *Lexer) ArmStopAt(line, col int) {
	l.stopArmed = true
	l.stopLine = line
	l.stopCol = col
}

// LastToken returns the most recently produced token and whether one has
// been produced yet. Used after the parser halts on end-of-stream from a
// stop-at arming, to inspect the resolved Symbol at the cursor.
func (l *Lexer) LastToken() (Token, bool) {
	return l.lastToken, l.haveLastTok
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return eofRune
	}
	return l.src[l.pos]
}

// Next returns the next token in the stream, consuming it. It never returns
// a nil-like zero value: at end of stream it returns a KEOF token forever.
func (l *Lexer) Next() Token {
	for {
		tok, skip := l.scanOne()
		if skip {
			continue
		}
		if tok.Kind != KEOF {
			l.lastToken = tok
			l.haveLastTok = true
		}

		if l.stopArmed && !l.stopped && tok.Kind != KEOF {
			endLine, endCol := l.spanEnd(tok.Span)
			if crosses(endLine, endCol, l.stopLine, l.stopCol) {
				l.stopped = true
				l.done = true
				return Token{Kind: KEOF, Span: tok.Span}
			}
		}
		return tok
	}
}

func (l *Lexer) spanEnd(s diag.Span) (line, col int) {
	// single-line tokens are the overwhelming common case; comments and
	// (erroring) strings may span lines but never carry a resolved symbol,
	// so only single-line accuracy matters for the stop-at protocol.
	return s.Line, s.Column + s.Length
}

func crosses(line, col, stopLine, stopCol int) bool {
	if line > stopLine {
		return true
	}
	if line == stopLine && col >= stopCol {
		return true
	}
	return false
}

// HasNext reports whether the stream has not yet reached end-of-stream.
func (l *Lexer) HasNext() bool {
	return !l.done
}

// scanOne runs the DFA once. skip is true when no token should be surfaced
// to the parser (whitespace/comments consumed no token by construction;
// certain lexical and symbol-table errors explicitly produce none either).
func (l *Lexer) scanOne() (tok Token, skip bool) {
	if l.done {
		return Token{Kind: KEOF}, false
	}

	state := stStart
	startPos, startLine, startCol := l.pos, l.line, l.col

	for {
		r := l.peek()
		cc := classOf(r)
		tr := dfa[state].lookup(cc)

		if tr.consume {
			l.pos++
			if tr.eol {
				l.line++
				l.col = 0
			} else {
				l.col++
			}
		} else if tr.eol {
			l.line++
			l.col = 0
		}

		if tr.next == terminalSentinel {
			span := diag.Span{Position: startPos, Line: startLine, Column: startCol, Length: l.pos - startPos}
			return l.finalize(tr.action, string(l.src[startPos:l.pos]), span)
		}

		if tr.next == stStart {
			startPos, startLine, startCol = l.pos, l.line, l.col
		}
		state = tr.next
	}
}

func (l *Lexer) finalize(action actionTag, lexeme string, span diag.Span) (Token, bool) {
	switch action {
	case actProduceEOF:
		l.done = true
		return Token{Kind: KEOF, Span: span}, false

	case actProduceIdent:
		return l.finalizeIdent(lexeme, span)

	case actProduceInt:
		return l.finalizeInt(lexeme, span)

	case actProduceStr:
		return l.finalizeStr(lexeme, span)

	case actErrUnexpectedChar:
		l.err(span, "unexpected character %q", lexeme)
		return Token{}, true

	case actErrIllegalBrace:
		l.err(span, "'}' outside of a comment")
		return Token{}, true

	case actErrUnterminatedString:
		l.err(span, "string literal is not terminated before end of line")
		return Token{}, true

	case actErrUnterminatedStringEOF:
		l.err(span, "string literal is not terminated before end of file")
		l.done = true
		return Token{Kind: KEOF, Span: span}, false

	case actErrUnclosedComment:
		l.err(span, "comment is not closed before end of file")
		l.done = true
		return Token{Kind: KEOF, Span: span}, false

	default:
		if k, ok := opKind[action]; ok {
			return Token{Kind: k, Lexeme: lexeme, Span: span}, false
		}
		l.err(span, "internal lexer error: unhandled action")
		return Token{}, true
	}
}

func (l *Lexer) finalizeIdent(lexeme string, span diag.Span) (Token, bool) {
	if len([]rune(lexeme)) > l.cfg.MaxIdentifierLength {
		l.err(span, "identifier %q exceeds the maximum length of %d characters", lexeme, l.cfg.MaxIdentifierLength)
		return Token{}, true
	}

	lower := strings.ToLower(lexeme)
	if l.cfg.IsReserved(lower) {
		return Token{Kind: KKeyword, Lexeme: lexeme, KeywordID: lower, Span: span}, false
	}

	if l.declMode {
		sym := &symtab.Symbol{Lexeme: lexeme, Kind: symtab.Unknown, Def: span}
		if !l.table.Define(sym) {
			l.err(span, "identifier %q is already declared in the current scope", lexeme)
			// Still surface a token, with no Symbol attached, so the parser
			// can keep reducing the surrounding declaration instead of
			// choking on an unexpected lookahead.
			return Token{Kind: KIdent, Lexeme: lexeme, Span: span}, false
		}
		return Token{Kind: KIdent, Lexeme: lexeme, Span: span, Symbol: sym}, false
	}

	sym := l.table.Lookup(lexeme)
	if sym == nil {
		l.err(span, "identifier %q is not declared", lexeme)
		return Token{Kind: KIdent, Lexeme: lexeme, Span: span}, false
	}
	return Token{Kind: KIdent, Lexeme: lexeme, Span: span, Symbol: sym}, false
}

func (l *Lexer) finalizeInt(lexeme string, span diag.Span) (Token, bool) {
	value := 0
	for _, r := range lexeme {
		value = value*10 + int(r-'0')
		if value > l.cfg.MaxIntegerLiteral {
			l.err(span, "integer literal %s exceeds the maximum value of %d", lexeme, l.cfg.MaxIntegerLiteral)
			return Token{}, true
		}
	}
	return Token{Kind: KIntLit, Lexeme: lexeme, Span: span, IntValue: value}, false
}

func (l *Lexer) finalizeStr(lexeme string, span diag.Span) (Token, bool) {
	content := lexeme
	if len(content) >= 2 {
		content = content[1 : len(content)-1]
	}
	if n := len([]rune(content)); n > l.cfg.MaxStringLiteral {
		l.err(span, "string literal exceeds the maximum length of %d characters", l.cfg.MaxStringLiteral)
		return Token{}, true
	}
	return Token{Kind: KStrLit, Lexeme: content, Span: span}, false
}

func (l *Lexer) err(span diag.Span, format string, args ...interface{}) {
	l.Errors = append(l.Errors, diag.New(span, format, args...))
}
