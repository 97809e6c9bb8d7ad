package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

func allTokens(l *Lexer) []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == KEOF {
			return toks
		}
	}
}

func Test_Next_emitsKeywordsAndPunctuation(t *testing.T) {
	table := symtab.New()
	l := New("program P ;", table, config.Default())

	toks := allTokens(l)

	assert.Equal(t, KKeyword, toks[0].Kind)
	assert.Equal(t, "program", toks[0].KeywordID)
	assert.Equal(t, KIdent, toks[1].Kind)
	assert.Equal(t, KSemi, toks[2].Kind)
	assert.Equal(t, KEOF, toks[3].Kind)
}

func Test_Next_identifierAtMaxLengthAccepted(t *testing.T) {
	table := symtab.New()
	name := strings.Repeat("a", 32)
	l := New(name, table, config.Default())

	tok := l.Next()

	assert.Equal(t, KIdent, tok.Kind)
	assert.Empty(t, l.Errors)
}

func Test_Next_identifierOverMaxLengthRejected(t *testing.T) {
	table := symtab.New()
	name := strings.Repeat("a", 33)
	l := New(name, table, config.Default())

	l.Next()

	assert.NotEmpty(t, l.Errors)
}

func Test_Next_integerAtMaxValueAccepted(t *testing.T) {
	table := symtab.New()
	l := New("32767", table, config.Default())

	tok := l.Next()

	assert.Equal(t, KIntLit, tok.Kind)
	assert.Equal(t, 32767, tok.IntValue)
	assert.Empty(t, l.Errors)
}

func Test_Next_integerOverMaxValueRejected(t *testing.T) {
	table := symtab.New()
	l := New("32768", table, config.Default())

	l.Next()

	assert.NotEmpty(t, l.Errors)
}

func Test_Next_stringAtMaxLengthAccepted(t *testing.T) {
	table := symtab.New()
	content := strings.Repeat("a", 64)
	l := New(`"`+content+`"`, table, config.Default())

	tok := l.Next()

	assert.Equal(t, KStrLit, tok.Kind)
	assert.Empty(t, l.Errors)
}

func Test_Next_stringOverMaxLengthRejected(t *testing.T) {
	table := symtab.New()
	content := strings.Repeat("a", 65)
	l := New(`"`+content+`"`, table, config.Default())

	l.Next()

	assert.NotEmpty(t, l.Errors)
}

func Test_Next_crlfIncrementsLineOnce(t *testing.T) {
	table := symtab.New()
	l := New("a\r\nb", table, config.Default())
	l.SetDeclarationMode(true)

	l.Next() // "a"
	tok := l.Next() // "b"

	assert.Equal(t, 2, tok.Span.Line)
}

func Test_Next_declarationModeDefinesIdentifier(t *testing.T) {
	table := symtab.New()
	l := New("x", table, config.Default())
	l.SetDeclarationMode(true)

	tok := l.Next()

	assert.Equal(t, KIdent, tok.Kind)
	assert.NotNil(t, tok.Symbol)
	assert.Equal(t, symtab.Unknown, tok.Symbol.Kind)
}

func Test_Next_useModeLooksUpIdentifier(t *testing.T) {
	table := symtab.New()
	table.Define(&symtab.Symbol{Lexeme: "x", Kind: symtab.Variable, DataType: symtab.Integer})

	l := New("x", table, config.Default())
	l.SetDeclarationMode(false)

	tok := l.Next()

	assert.NotNil(t, tok.Symbol)
	assert.Equal(t, symtab.Variable, tok.Symbol.Kind)
}

func Test_Next_useModeUndeclaredIdentifierErrors(t *testing.T) {
	table := symtab.New()
	l := New("nosuchvar", table, config.Default())
	l.SetDeclarationMode(false)

	l.Next()

	assert.NotEmpty(t, l.Errors)
}

func Test_Next_useModeUndeclaredIdentifierStillProducesAToken(t *testing.T) {
	table := symtab.New()
	l := New("nosuchvar := 1", table, config.Default())
	l.SetDeclarationMode(false)

	toks := allTokens(l)

	assert.Equal(t, KIdent, toks[0].Kind)
	assert.Nil(t, toks[0].Symbol)
	assert.Equal(t, KAssign, toks[1].Kind)
}

func Test_Next_declModeDuplicateIdentifierStillProducesAToken(t *testing.T) {
	table := symtab.New()
	l := New("x, x : integer", table, config.Default())
	l.SetDeclarationMode(true)

	toks := allTokens(l)

	assert.Equal(t, KIdent, toks[0].Kind)
	assert.NotNil(t, toks[0].Symbol)
	assert.Equal(t, KComma, toks[1].Kind)
	assert.Equal(t, KIdent, toks[2].Kind)
	assert.Nil(t, toks[2].Symbol)
	assert.Len(t, l.Errors, 1)
}

func Test_HasNext_falseAfterEOF(t *testing.T) {
	table := symtab.New()
	l := New("", table, config.Default())

	assert.True(t, l.HasNext())
	l.Next()
	assert.False(t, l.HasNext())
}
