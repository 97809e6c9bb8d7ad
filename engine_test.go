package boreal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxixes/boreal-lang-ext/internal/sema"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

func Test_Analyze_acceptsWellTypedProgram(t *testing.T) {
	res := Analyze("program P; var x: integer; begin x := 2 + 3; end;")

	assert.True(t, res.Accepted)
	assert.True(t, res.OK())
	assert.Empty(t, res.SemanticErrors)

	x := res.SymbolTable.Global().Symbols["X"]
	assert.NotNil(t, x)
	assert.Equal(t, symtab.Variable, x.Kind)
	assert.Equal(t, symtab.Integer, x.DataType)
	assert.Equal(t, 0, x.Offset)
}

func Test_Analyze_typeMismatchOnAssignment(t *testing.T) {
	res := Analyze("program P; var x: integer; begin x := true; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
	assert.Contains(t, res.SemanticErrors[0].Message, "integer")
	assert.Contains(t, res.SemanticErrors[0].Message, "logical")
}

func Test_Analyze_functionDeclarationWithParameter(t *testing.T) {
	res := Analyze("program P; function f(a: integer): integer; begin return a + 1; end; begin end;")

	assert.True(t, res.Accepted)
	assert.Empty(t, res.SemanticErrors)

	f := res.SymbolTable.Global().Symbols["F"]
	assert.NotNil(t, f)
	assert.Equal(t, symtab.Function, f.Kind)
	assert.Equal(t, symtab.Integer, f.ReturnType)
	assert.Len(t, f.Params, 1)
	assert.False(t, f.Params[0].ByReference)
	assert.Equal(t, symtab.Integer, f.Params[0].DataType)
}

func Test_Analyze_ifConditionMustBeLogical(t *testing.T) {
	res := Analyze("program P; var x: integer; begin if 1 + 1 then x := 0; end; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
}

func Test_Analyze_runIDsAreUnique(t *testing.T) {
	a := Analyze("program P; begin end;")
	b := Analyze("program P; begin end;")

	assert.NotEqual(t, a.RunID, b.RunID)
}

func Test_FindDefinition_resolvesVariableUse(t *testing.T) {
	src := "program P; var x: integer; begin x := 2; end;"
	useCol := indexOfLast(src, "x :=")

	loc := FindDefinition(src, 1, useCol)

	assert.True(t, loc.Found)
}

func indexOfLast(s, substr string) int {
	idx := -1
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			idx = i
		}
	}
	return idx
}

func Test_FindDefinition_notFoundOnBlankSource(t *testing.T) {
	loc := FindDefinition("", 1, 0)
	assert.False(t, loc.Found)
}

func Test_Analyze_undeclaredVariableProducesExactlyOneError(t *testing.T) {
	res := Analyze("program P; begin y := 1; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.LexicalErrors, 1)
	assert.Empty(t, res.SemanticErrors)
	assert.Contains(t, res.LexicalErrors[0].Message, "y")
	assert.Contains(t, res.LexicalErrors[0].Message, "not declared")
}

func Test_Analyze_loopWithoutExitProducesExactlyTwoErrors(t *testing.T) {
	res := Analyze("program P; begin loop x := 1; end; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.LexicalErrors, 1)
	assert.Len(t, res.SemanticErrors, 1)
	assert.Contains(t, res.LexicalErrors[0].Message, "x")
	assert.Contains(t, res.SemanticErrors[0].Message, "Loop must contain at least one exit")
}

func Test_Analyze_loopWithExitIsAccepted(t *testing.T) {
	res := Analyze("program P; var x: integer; begin loop x := 1; exit when x = 1; end; end;")

	assert.True(t, res.OK())
	assert.Empty(t, res.SemanticErrors)
}

func Test_Analyze_exitWhenOutsideLoopIsRejected(t *testing.T) {
	res := Analyze("program P; var x: integer; begin x := 1; exit when x = 1; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
	assert.Contains(t, res.SemanticErrors[0].Message, "exit when")
	assert.Contains(t, res.SemanticErrors[0].Message, "outside of a loop")
}

func Test_Analyze_plusConcatenatesStrings(t *testing.T) {
	res := Analyze(`program P; var s: string; begin s := "a" + "b"; end;`)

	assert.True(t, res.OK())
	assert.Empty(t, res.SemanticErrors)
}

func Test_Analyze_plusRejectsMixedStringAndInteger(t *testing.T) {
	res := Analyze(`program P; begin write("a" + 1); end;`)

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
}

func Test_Analyze_writeRejectsBoolean(t *testing.T) {
	res := Analyze("program P; begin write(true); end;")

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
	assert.Contains(t, res.SemanticErrors[0].Message, "write")
}

func Test_Analyze_writeAcceptsIntegerAndString(t *testing.T) {
	res := Analyze(`program P; begin write(1, "a"); end;`)

	assert.True(t, res.OK())
	assert.Empty(t, res.SemanticErrors)
}

func Test_Analyze_readRejectsBooleanVariable(t *testing.T) {
	res := Analyze("program P; var b: boolean; begin read(b); end;")

	assert.False(t, res.OK())
	assert.Len(t, res.SemanticErrors, 1)
	assert.Contains(t, res.SemanticErrors[0].Message, "integer or string")
}

func Test_Analyze_readAcceptsIntegerAndStringVariables(t *testing.T) {
	res := Analyze("program P; var x: integer; var s: string; begin read(x, s); end;")

	assert.True(t, res.OK())
	assert.Empty(t, res.SemanticErrors)
}

func Test_Analyze_undeclaredIdentifierSuppressesCascadingTypeError(t *testing.T) {
	res := Analyze("program P; var x: integer; begin if y then x := 0; end; end;")

	assert.False(t, res.OK())
	assert.Len(t, res.LexicalErrors, 1)
	assert.Empty(t, res.SemanticErrors)
}

func Test_Analyze_semanticTokensCoverDeclarationAndUse(t *testing.T) {
	res := Analyze("program P; var x: integer; begin x := 2 + 3; end;")

	assert.True(t, res.OK())

	var defs, uses int
	for _, tok := range res.SemanticTokens {
		assert.Equal(t, sema.TokenVariable, tok.TokenType)
		if tok.Modifiers&sema.ModifierDefinition != 0 {
			defs++
		} else {
			uses++
		}
	}
	assert.Equal(t, 2, defs)
	assert.Equal(t, 1, uses)
}
