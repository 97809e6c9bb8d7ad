package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Define_rejectsDuplicateInSameScope(t *testing.T) {
	tab := New()

	ok1 := tab.Define(&Symbol{Lexeme: "x", Kind: Variable, DataType: Integer})
	ok2 := tab.Define(&Symbol{Lexeme: "X", Kind: Variable, DataType: Integer})

	assert.True(t, ok1)
	assert.False(t, ok2, "case-insensitive redefinition in the same scope must be rejected")
}

func Test_Define_allowsShadowingInChildScope(t *testing.T) {
	tab := New()
	tab.Define(&Symbol{Lexeme: "x", Kind: Variable, DataType: Integer})

	tab.EnterScope("inner")
	ok := tab.Define(&Symbol{Lexeme: "x", Kind: Variable, DataType: String})

	assert.True(t, ok, "shadowing an outer scope's symbol must be allowed")
}

func Test_Lookup_walksOutward(t *testing.T) {
	tab := New()
	tab.Define(&Symbol{Lexeme: "outer", Kind: Variable, DataType: Integer})

	tab.EnterScope("inner")
	sym := tab.Lookup("OUTER")

	assert.NotNil(t, sym)
	assert.Equal(t, "outer", sym.Lexeme)
}

func Test_Lookup_returnsNilWhenAbsent(t *testing.T) {
	tab := New()
	assert.Nil(t, tab.Lookup("nope"))
}

func Test_LookupInCurrentScope_doesNotSeeOuterScope(t *testing.T) {
	tab := New()
	tab.Define(&Symbol{Lexeme: "outer", Kind: Variable, DataType: Integer})
	tab.EnterScope("inner")

	assert.Nil(t, tab.LookupInCurrentScope("outer"))
}

func Test_ExitScope_neverPopsPastGlobal(t *testing.T) {
	tab := New()
	tab.ExitScope()
	assert.Equal(t, "global", tab.GetCurrentScopeName())
}

func Test_EnterExitScope_restoresParent(t *testing.T) {
	tab := New()
	tab.EnterScope("a")
	tab.EnterScope("b")
	assert.Equal(t, "b", tab.GetCurrentScopeName())

	tab.ExitScope()
	assert.Equal(t, "a", tab.GetCurrentScopeName())

	tab.ExitScope()
	assert.Equal(t, "global", tab.GetCurrentScopeName())
}

func Test_Reset_clearsAllScopes(t *testing.T) {
	tab := New()
	tab.Define(&Symbol{Lexeme: "x", Kind: Variable})
	tab.EnterScope("inner")

	tab.Reset()

	assert.Equal(t, "global", tab.GetCurrentScopeName())
	assert.Nil(t, tab.Lookup("x"))
}

func Test_Enumerate_collectsAllDescendantScopes(t *testing.T) {
	tab := New()
	tab.Define(&Symbol{Lexeme: "g", Kind: Variable})
	tab.EnterScope("inner")
	tab.Define(&Symbol{Lexeme: "i", Kind: Variable})

	syms := Enumerate(tab.Global())

	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Canonical
	}
	assert.ElementsMatch(t, []string{"G", "I"}, names)
}
