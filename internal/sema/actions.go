package sema

import (
	"strings"

	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/grammar"
	"github.com/oxixes/boreal-lang-ext/internal/lexer"
	"github.com/oxixes/boreal-lang-ext/internal/symtab"
)

// firstLabel is the first codegen label handed out to a procedure or
// function; 0 and 1 are reserved for entry/exit of the main program.
const firstLabel = 2

// Actions is the stateful semantic-action evaluator bound to the Boreal
// grammar. One Actions belongs to exactly one analysis: it is not safe for
// concurrent or repeated use across source texts.
type Actions struct {
	Table *symtab.Table
	Cfg   config.Config

	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic

	nextLabel int

	// offsets is a stack of running memory displacements, one per active
	// scope, pushed by EnterScope and popped alongside it.
	offsets []int

	// returnTypes is a stack of expected return types, one per active
	// procedure/function header, consulted by RETURNSTMT.
	returnTypes []symtab.DataType

	// awaitingHeaderName is true from the moment "procedure"/"function" is
	// shifted until the header's own name identifier is shifted; it tells
	// OnShift that the very next "id" terminal is the header name, not an
	// ordinary expression reference.
	awaitingHeaderName bool
	awaitingReturnType bool

	// occurrences records every resolved identifier occurrence for the
	// semantic-token stream, in shift/reduce order. Resolved to a final
	// TokenType only at the end, by SemanticTokens, since a Symbol's Kind
	// keeps changing as its own declaration completes.
	occurrences []tokenOccurrence
}

// NewActions creates a fresh Actions sharing table (already holding at least
// the global scope) and cfg.
func NewActions(table *symtab.Table, cfg config.Config) *Actions {
	return &Actions{
		Table:     table,
		Cfg:       cfg,
		nextLabel: firstLabel,
		offsets:   []int{0},
	}
}

func (a *Actions) err(span diag.Span, format string, args ...interface{}) {
	a.Errors = append(a.Errors, diag.New(span, format, args...))
}

// ModeSetter is satisfied by *lexer.Lexer; internal/parse calls OnShift with
// the lexer, so Actions can flip declaration mode and manage scope entry at
// the earliest possible moment — before the tokens that mode change affects
// have been lexed. This is the one place semantic actions run ahead of a
// reduction rather than on one, since declaration/use discipline and nested
// scope visibility are properties of what comes *next* in the token stream,
// which a purely bottom-up, post-reduction evaluator cannot see in time.
type ModeSetter interface {
	SetDeclarationMode(bool)
}

// OnShift is called by internal/parse immediately after shifting tok, before
// the next token is pulled from lex. It owns every piece of state that must
// change before the following identifiers are lexed: declaration-vs-use
// mode, and nested scope entry for a procedure/function body.
func (a *Actions) OnShift(lex ModeSetter, tok lexer.Token) {
	if tok.Kind != lexer.KKeyword {
		if a.awaitingHeaderName && tok.Kind == lexer.KIdent {
			a.awaitingHeaderName = false
			if tok.Symbol != nil {
				a.Table.EnterScope(tok.Symbol.Lexeme)
				a.offsets = append(a.offsets, 0)
			}
		}
		return
	}

	switch tok.KeywordID {
	case "var", "program":
		lex.SetDeclarationMode(true)
	case "procedure":
		lex.SetDeclarationMode(true)
		a.awaitingHeaderName = true
		a.returnTypes = append(a.returnTypes, symtab.Void)
	case "function":
		lex.SetDeclarationMode(true)
		a.awaitingHeaderName = true
		a.returnTypes = append(a.returnTypes, symtab.Void)
		a.awaitingReturnType = true
	case "begin":
		lex.SetDeclarationMode(false)
	}
}

func sig(p grammar.Production) string {
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Reduce is internal/parse's single entry point into the evaluator: given a
// production and the already-computed attributes of its RHS (left to right),
// compute and return the synthesized attribute for its LHS.
func (a *Actions) Reduce(p grammar.Production, rhs []Attributes) (Attributes, error) {
	out := a.reduce(p, rhs)
	if out.Span == (diag.Span{}) && len(rhs) > 0 {
		out.Span = spanOf(rhs)
	}
	return out, nil
}

func (a *Actions) reduce(p grammar.Production, rhs []Attributes) Attributes {
	switch sig(p) {

	// ---- program -------------------------------------------------------
	case "PROGRAM -> program id ; GLOBALS begin STMTS end":
		if sym := rhs[1].Symbol; sym != nil {
			sym.Kind = symtab.Program
			sym.DataType = symtab.Void
			a.recordOccurrence(sym.Def, sym, true)
		}
		a.checkNoEscapedExit(rhs[5].ExitCount, rhs[5].ExitSite)
		return Attributes{}

	// ---- declarations ---------------------------------------------------
	case "GLOBALS -> GDECL GLOBALS", "GLOBALS -> ", "GDECL -> VARDECL", "GDECL -> PROCDECL", "GDECL -> FUNCDECL",
		"LOCALS -> VARDECL LOCALS", "LOCALS -> ":
		return Attributes{}

	case "VARDECL -> var IDLIST : TYPE ;":
		a.declareVars(rhs[1].Symbols, rhs[3].DataType)
		return Attributes{}

	case "IDLIST -> id , IDLIST":
		return Attributes{
			Symbols:    append([]*symtab.Symbol{rhs[0].Symbol}, rhs[2].Symbols...),
			IdentSpans: append([]diag.Span{rhs[0].Span}, rhs[2].IdentSpans...),
		}
	case "IDLIST -> id":
		return Attributes{Symbols: []*symtab.Symbol{rhs[0].Symbol}, IdentSpans: []diag.Span{rhs[0].Span}}

	case "TYPE -> integer":
		return a.typeProduced(symtab.Integer)
	case "TYPE -> boolean":
		return a.typeProduced(symtab.Boolean)
	case "TYPE -> string":
		return a.typeProduced(symtab.String)

	// ---- subprograms ------------------------------------------------------
	case "PROCDECL -> procedure id ( PARAMS ) ; LOCALS begin STMTS end ;":
		a.checkNoEscapedExit(rhs[8].ExitCount, rhs[8].ExitSite)
		return a.finishHeader(rhs[1].Symbol, symtab.Procedure, rhs[3].Params, symtab.Void)
	case "FUNCDECL -> function id ( PARAMS ) : TYPE ; LOCALS begin STMTS end ;":
		a.checkNoEscapedExit(rhs[10].ExitCount, rhs[10].ExitSite)
		return a.finishHeader(rhs[1].Symbol, symtab.Function, rhs[3].Params, rhs[6].DataType)

	case "PARAMS -> PARAMLIST":
		return rhs[0]
	case "PARAMS -> ":
		return Attributes{}

	case "PARAMLIST -> PARAM ; PARAMLIST":
		return Attributes{Params: append(append([]symtab.Param{}, rhs[0].Params...), rhs[2].Params...)}
	case "PARAMLIST -> PARAM":
		return rhs[0]

	case "PARAM -> MODE IDLIST : TYPE":
		return a.declareParams(rhs[1].Symbols, rhs[3].DataType, rhs[0].ByRef)

	case "MODE -> var":
		return Attributes{ByRef: true}
	case "MODE -> ":
		return Attributes{ByRef: false}

	// ---- statements ---------------------------------------------------
	case "STMTS -> STMT STMTS":
		return combineExit(rhs[0], rhs[1])
	case "STMTS -> ":
		return Attributes{}

	case "STMT -> ASSIGN ;", "STMT -> CALLSTMT ;", "STMT -> RETURNSTMT ;",
		"STMT -> WRITESTMT ;", "STMT -> WRITELNSTMT ;", "STMT -> READSTMT ;":
		return Attributes{}

	case "STMT -> IFSTMT ;", "STMT -> WHILESTMT ;", "STMT -> REPEATSTMT ;", "STMT -> FORSTMT ;",
		"STMT -> CASESTMT ;", "STMT -> LOOPSTMT ;", "STMT -> EXITWHEN ;":
		return Attributes{ExitCount: rhs[0].ExitCount, ExitSite: rhs[0].ExitSite}

	case "ASSIGN -> id := EXPR":
		a.checkAssign(rhs[0].Symbol, rhs[0].Span, rhs[2].DataType)
		a.recordOccurrence(rhs[0].Span, rhs[0].Symbol, false)
		return Attributes{}

	case "CALLSTMT -> id ( ARGS )":
		a.checkCall(rhs[0].Symbol, rhs[0].Span, rhs[2].ArgTypes, symtab.Procedure)
		a.recordOccurrence(rhs[0].Span, rhs[0].Symbol, false)
		return Attributes{}

	case "ARGS -> ARGLIST":
		return rhs[0]
	case "ARGS -> ":
		return Attributes{}

	case "ARGLIST -> EXPR , ARGLIST":
		return Attributes{ArgTypes: append([]symtab.DataType{rhs[0].DataType}, rhs[2].ArgTypes...)}
	case "ARGLIST -> EXPR":
		return Attributes{ArgTypes: []symtab.DataType{rhs[0].DataType}}

	case "IFSTMT -> if EXPR then STMTS end":
		a.requireType(rhs[1].DataType, symtab.Boolean, rhs[1].Span, "if condition")
		return Attributes{ExitCount: rhs[3].ExitCount, ExitSite: rhs[3].ExitSite}

	case "WHILESTMT -> while EXPR do STMTS end":
		a.requireType(rhs[1].DataType, symtab.Boolean, rhs[1].Span, "while condition")
		return Attributes{ExitCount: rhs[3].ExitCount, ExitSite: rhs[3].ExitSite}

	case "REPEATSTMT -> repeat STMTS until EXPR":
		a.requireType(rhs[3].DataType, symtab.Boolean, rhs[3].Span, "until condition")
		return Attributes{ExitCount: rhs[1].ExitCount, ExitSite: rhs[1].ExitSite}

	case "FORSTMT -> for id := EXPR to EXPR do STMTS end":
		a.checkAssign(rhs[1].Symbol, rhs[1].Span, symtab.Integer)
		a.recordOccurrence(rhs[1].Span, rhs[1].Symbol, false)
		a.requireType(rhs[3].DataType, symtab.Integer, rhs[3].Span, "for bound")
		a.requireType(rhs[5].DataType, symtab.Integer, rhs[5].Span, "for bound")
		return Attributes{ExitCount: rhs[7].ExitCount, ExitSite: rhs[7].ExitSite}

	case "CASESTMT -> case EXPR of CASEARMS end":
		a.requireType(rhs[1].DataType, symtab.Integer, rhs[1].Span, "case selector")
		return Attributes{ExitCount: rhs[3].ExitCount, ExitSite: rhs[3].ExitSite}
	case "CASESTMT -> case EXPR of CASEARMS otherwise STMTS end":
		a.requireType(rhs[1].DataType, symtab.Integer, rhs[1].Span, "case selector")
		return combineExit(rhs[3], rhs[5])

	case "CASEARMS -> CASEARM CASEARMS":
		return combineExit(rhs[0], rhs[1])
	case "CASEARMS -> ":
		return Attributes{}
	case "CASEARM -> intlit : STMTS":
		return Attributes{ExitCount: rhs[2].ExitCount, ExitSite: rhs[2].ExitSite}

	case "LOOPSTMT -> loop STMTS end":
		if rhs[1].ExitCount == 0 {
			a.err(rhs[0].Span, "Loop must contain at least one exit")
		}
		return Attributes{}

	case "EXITWHEN -> exit when EXPR":
		a.requireType(rhs[2].DataType, symtab.Boolean, rhs[2].Span, "exit when condition")
		return Attributes{ExitCount: 1, ExitSite: rhs[0].Span}

	case "RETURNSTMT -> return EXPR":
		a.checkReturn(rhs[0].Span, &rhs[1].DataType)
		return Attributes{}
	case "RETURNSTMT -> return":
		a.checkReturn(rhs[0].Span, nil)
		return Attributes{}

	case "WRITESTMT -> write ( ARGLIST )":
		a.checkOutputArgs(rhs[2].ArgTypes, rhs[0].Span)
		return Attributes{}
	case "WRITELNSTMT -> writeln ( ARGLIST )":
		a.checkOutputArgs(rhs[2].ArgTypes, rhs[0].Span)
		return Attributes{}
	case "READSTMT -> read ( IDLIST )":
		a.checkReadArgs(rhs[2].Symbols, rhs[0].Span)
		for i, sym := range rhs[2].Symbols {
			span := rhs[0].Span
			if i < len(rhs[2].IdentSpans) {
				span = rhs[2].IdentSpans[i]
			}
			a.recordOccurrence(span, sym, false)
		}
		return Attributes{}

	// ---- expressions: one case per precedence level --------------------
	case "EXPR -> EXPR or TERM1", "EXPR -> EXPR xor TERM1":
		return a.binaryBoolOp(rhs[0], rhs[2])
	case "EXPR -> TERM1":
		return rhs[0]

	case "TERM1 -> TERM1 and EQUALITY":
		return a.binaryBoolOp(rhs[0], rhs[2])
	case "TERM1 -> EQUALITY":
		return rhs[0]

	case "EQUALITY -> EQUALITY = REL", "EQUALITY -> EQUALITY <> REL":
		return a.binaryComparison(rhs[0], rhs[2], true)
	case "EQUALITY -> REL":
		return rhs[0]

	case "REL -> REL < SUM", "REL -> REL > SUM", "REL -> REL <= SUM", "REL -> REL >= SUM", "REL -> REL in SUM":
		return a.binaryComparison(rhs[0], rhs[2], false)
	case "REL -> SUM":
		return rhs[0]

	case "SUM -> SUM + TERM":
		return a.binaryPlus(rhs[0], rhs[2])
	case "SUM -> SUM - TERM":
		return a.binaryArith(rhs[0], rhs[2])
	case "SUM -> TERM":
		return rhs[0]

	case "TERM -> TERM * FACTOR", "TERM -> TERM / FACTOR", "TERM -> TERM mod FACTOR":
		return a.binaryArith(rhs[0], rhs[2])
	case "TERM -> FACTOR":
		return rhs[0]

	case "FACTOR -> FACTOR ** UNARY":
		return a.binaryArith(rhs[0], rhs[2])
	case "FACTOR -> UNARY":
		return rhs[0]

	case "UNARY -> not UNARY":
		if rhs[1].DataType == symtab.NoType {
			return Attributes{DataType: symtab.NoType}
		}
		a.requireType(rhs[1].DataType, symtab.Boolean, rhs[1].Span, "'not' operand")
		return Attributes{DataType: symtab.Boolean}
	case "UNARY -> - UNARY":
		if rhs[1].DataType == symtab.NoType {
			return Attributes{DataType: symtab.NoType}
		}
		a.requireType(rhs[1].DataType, symtab.Integer, rhs[1].Span, "unary '-' operand")
		return Attributes{DataType: symtab.Integer}
	case "UNARY -> PRIMARY":
		return rhs[0]

	case "PRIMARY -> id":
		return a.primaryID(rhs[0].Symbol, rhs[0].Span)
	case "PRIMARY -> id ( ARGS )":
		return a.primaryCall(rhs[0].Symbol, rhs[0].Span, rhs[2].ArgTypes)
	case "PRIMARY -> intlit":
		return Attributes{DataType: symtab.Integer, IntValue: rhs[0].IntValue}
	case "PRIMARY -> strlit":
		return Attributes{DataType: symtab.String, Lexeme: rhs[0].Lexeme}
	case "PRIMARY -> true", "PRIMARY -> false":
		return Attributes{DataType: symtab.Boolean}
	case "PRIMARY -> ( EXPR )":
		return rhs[1]
	case "PRIMARY -> max ( ARGLIST )", "PRIMARY -> min ( ARGLIST )":
		poisoned := false
		for _, t := range rhs[2].ArgTypes {
			if t == symtab.NoType {
				poisoned = true
				continue
			}
			a.requireType(t, symtab.Integer, rhs[2].Span, "max/min argument")
		}
		if poisoned {
			return Attributes{DataType: symtab.NoType}
		}
		return Attributes{DataType: symtab.Integer}
	}

	a.err(spanOf(rhs), "internal error: no semantic action registered for production %q", sig(p))
	return Attributes{}
}

// combineExit sums two sibling subtrees' exit counts, preferring the
// earlier (leftmost) exit site when both contribute one.
func combineExit(l, r Attributes) Attributes {
	site := l.ExitSite
	if l.ExitCount == 0 {
		site = r.ExitSite
	}
	return Attributes{ExitCount: l.ExitCount + r.ExitCount, ExitSite: site}
}

// checkNoEscapedExit is the end-of-subprogram-body check: any exit count
// propagated this far was never consumed by an enclosing LOOPSTMT.
func (a *Actions) checkNoEscapedExit(count int, site diag.Span) {
	if count > 0 {
		a.err(site, "'exit when' used outside of a loop")
	}
}

func (a *Actions) typeProduced(t symtab.DataType) Attributes {
	if a.awaitingReturnType {
		a.awaitingReturnType = false
		if n := len(a.returnTypes); n > 0 {
			a.returnTypes[n-1] = t
		}
	}
	return Attributes{DataType: t}
}

// sizeOfKey maps a DataType to the key config.Config.SizeOf is indexed
// under; DataType.String() can't be reused directly since it renders
// Boolean as "logical" to match the diagnostic vocabulary, not the config
// file's "boolean" key.
func sizeOfKey(dt symtab.DataType) string {
	switch dt {
	case symtab.Integer:
		return "integer"
	case symtab.Boolean:
		return "boolean"
	case symtab.String:
		return "string"
	default:
		return ""
	}
}

func (a *Actions) declareVars(syms []*symtab.Symbol, dt symtab.DataType) {
	top := len(a.offsets) - 1
	for _, sym := range syms {
		if sym == nil {
			continue
		}
		sym.Kind = symtab.Variable
		sym.DataType = dt
		sym.Offset = a.offsets[top]
		a.offsets[top] += a.Cfg.SizeOf[sizeOfKey(dt)]
		a.recordOccurrence(sym.Def, sym, true)
	}
}

func (a *Actions) declareParams(syms []*symtab.Symbol, dt symtab.DataType, byRef bool) Attributes {
	top := len(a.offsets) - 1
	params := make([]symtab.Param, 0, len(syms))
	for _, sym := range syms {
		if sym == nil {
			continue
		}
		sym.Kind = symtab.Parameter
		sym.DataType = dt
		sym.ByRef = byRef
		sym.Offset = a.offsets[top]
		a.offsets[top] += a.Cfg.SizeOf[sizeOfKey(dt)]
		params = append(params, symtab.Param{Name: sym.Lexeme, DataType: dt, ByReference: byRef})
		a.recordOccurrence(sym.Def, sym, true)
	}
	return Attributes{Params: params}
}

func (a *Actions) finishHeader(sym *symtab.Symbol, kind symtab.Kind, params []symtab.Param, ret symtab.DataType) Attributes {
	if sym != nil {
		sym.Kind = kind
		sym.Params = params
		sym.ReturnType = ret
		sym.Label = a.nextLabel
		a.nextLabel++
		a.recordOccurrence(sym.Def, sym, true)
	}
	a.Table.ExitScope()
	if n := len(a.offsets); n > 1 {
		a.offsets = a.offsets[:n-1]
	}
	if n := len(a.returnTypes); n > 0 {
		a.returnTypes = a.returnTypes[:n-1]
	}
	return Attributes{}
}

// requireType checks got against want, returning false and emitting a
// diagnostic on mismatch. got == NoType means an earlier error already
// explains why this operand has no real type — silently accepted, so one
// bad identifier doesn't cascade into a second, redundant diagnostic for
// every expression it's used in.
func (a *Actions) requireType(got, want symtab.DataType, span diag.Span, what string) bool {
	if got == want {
		return true
	}
	if got == symtab.NoType {
		return false
	}
	a.err(span, "%s must be of type %s, found %s", what, want, got)
	return false
}

func (a *Actions) binaryBoolOp(l, r Attributes) Attributes {
	if l.DataType == symtab.NoType || r.DataType == symtab.NoType {
		return Attributes{DataType: symtab.NoType}
	}
	a.requireType(l.DataType, symtab.Boolean, l.Span, "operand")
	a.requireType(r.DataType, symtab.Boolean, r.Span, "operand")
	return Attributes{DataType: symtab.Boolean}
}

func (a *Actions) binaryArith(l, r Attributes) Attributes {
	if l.DataType == symtab.NoType || r.DataType == symtab.NoType {
		return Attributes{DataType: symtab.NoType}
	}
	a.requireType(l.DataType, symtab.Integer, l.Span, "operand")
	a.requireType(r.DataType, symtab.Integer, r.Span, "operand")
	return Attributes{DataType: symtab.Integer}
}

// binaryPlus is SUM's "+" alternative: unlike the other arithmetic
// operators it also accepts string ∨ string, per the operator matrix.
func (a *Actions) binaryPlus(l, r Attributes) Attributes {
	if l.DataType == symtab.NoType || r.DataType == symtab.NoType {
		return Attributes{DataType: symtab.NoType}
	}
	if l.DataType == symtab.String && r.DataType == symtab.String {
		return Attributes{DataType: symtab.String}
	}
	return a.binaryArith(l, r)
}

func (a *Actions) binaryComparison(l, r Attributes, allowAnyMatchingType bool) Attributes {
	if l.DataType == symtab.NoType || r.DataType == symtab.NoType {
		return Attributes{DataType: symtab.NoType}
	}
	if allowAnyMatchingType {
		if l.DataType != r.DataType {
			a.err(l.Span, "cannot compare %s with %s", l.DataType, r.DataType)
		}
		return Attributes{DataType: symtab.Boolean}
	}
	a.requireType(l.DataType, symtab.Integer, l.Span, "operand")
	a.requireType(r.DataType, symtab.Integer, r.Span, "operand")
	return Attributes{DataType: symtab.Boolean}
}

func (a *Actions) primaryID(sym *symtab.Symbol, span diag.Span) Attributes {
	a.recordOccurrence(span, sym, false)
	if sym == nil {
		return Attributes{DataType: symtab.NoType}
	}
	switch sym.Kind {
	case symtab.Procedure:
		a.err(span, "'%s' is a procedure and cannot be used as a value", sym.Lexeme)
		return Attributes{DataType: symtab.NoType, Symbol: sym}
	case symtab.Function:
		return Attributes{DataType: sym.ReturnType, Symbol: sym}
	default:
		return Attributes{DataType: sym.DataType, Symbol: sym}
	}
}

func (a *Actions) primaryCall(sym *symtab.Symbol, span diag.Span, args []symtab.DataType) Attributes {
	a.recordOccurrence(span, sym, false)
	if sym == nil {
		return Attributes{DataType: symtab.NoType}
	}
	if sym.Kind != symtab.Function {
		a.err(span, "'%s' is not a function", sym.Lexeme)
		return Attributes{DataType: symtab.NoType}
	}
	a.checkArgs(sym, args, span)
	return Attributes{DataType: sym.ReturnType}
}

func (a *Actions) checkCall(sym *symtab.Symbol, span diag.Span, args []symtab.DataType, want symtab.Kind) {
	if sym == nil {
		return
	}
	if sym.Kind != want {
		a.err(span, "'%s' is not a %s", sym.Lexeme, want)
		return
	}
	a.checkArgs(sym, args, span)
}

func (a *Actions) checkArgs(sym *symtab.Symbol, args []symtab.DataType, span diag.Span) {
	if len(args) != len(sym.Params) {
		a.err(span, "'%s' expects %d argument(s), got %d", sym.Lexeme, len(sym.Params), len(args))
		return
	}
	for i, got := range args {
		if got == symtab.NoType {
			continue
		}
		want := sym.Params[i].DataType
		if got != want {
			a.err(span, "argument %d of '%s' must be %s, found %s", i+1, sym.Lexeme, want, got)
		}
	}
}

func (a *Actions) checkAssign(sym *symtab.Symbol, span diag.Span, rhsType symtab.DataType) {
	if sym == nil {
		return
	}
	switch sym.Kind {
	case symtab.Procedure:
		a.err(span, "cannot assign to procedure '%s'", sym.Lexeme)
		return
	case symtab.Function:
		a.requireType(rhsType, sym.ReturnType, span, "return value assignment")
		return
	default:
		a.requireType(rhsType, sym.DataType, span, "assignment")
	}
}

func (a *Actions) checkReturn(span diag.Span, got *symtab.DataType) {
	if len(a.returnTypes) == 0 {
		a.err(span, "'return' used outside of a procedure or function")
		return
	}
	want := a.returnTypes[len(a.returnTypes)-1]
	if want == symtab.Void {
		if got != nil {
			a.err(span, "procedure cannot return a value")
		}
		return
	}
	if got == nil {
		a.err(span, "function must return a value of type %s", want)
		return
	}
	a.requireType(*got, want, span, "return value")
}

func (a *Actions) checkOutputArgs(args []symtab.DataType, span diag.Span) {
	for _, t := range args {
		if t == symtab.NoType {
			continue
		}
		if t != symtab.Integer && t != symtab.String {
			a.err(span, "cannot write a value of type %s", t)
		}
	}
}

func (a *Actions) checkReadArgs(syms []*symtab.Symbol, span diag.Span) {
	for _, sym := range syms {
		if sym == nil {
			continue
		}
		if sym.Kind != symtab.Variable && sym.Kind != symtab.Parameter {
			a.err(span, "'%s' is not a variable and cannot be read into", sym.Lexeme)
			continue
		}
		if sym.DataType != symtab.Integer && sym.DataType != symtab.String {
			a.err(span, "'%s' must be of type integer or string to be read into, found %s", sym.Lexeme, sym.DataType)
		}
	}
}
