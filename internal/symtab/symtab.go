// Package symtab implements the nested lexical-scope symbol table shared by
// the Lexer and the Semantic Actions: a stack of case-insensitive scopes,
// with declaration/use discipline enforced entirely by its callers (only
// the Lexer calls Define/Lookup; only Semantic Actions call
// EnterScope/ExitScope).
package symtab

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oxixes/boreal-lang-ext/internal/diag"
)

var canon = cases.Upper(language.Und)

// Kind is the role a Symbol plays. It may only transition UNKNOWN -> one
// of the others, and never backwards; Define creates symbols as Unknown
// and a semantic action later promotes them exactly once.
type Kind int

const (
	Unknown Kind = iota
	Variable
	Parameter
	Function
	Procedure
	Program
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Parameter:
		return "parameter"
	case Function:
		return "function"
	case Procedure:
		return "procedure"
	case Program:
		return "program"
	default:
		return "unknown"
	}
}

// DataType is one of Boreal's three scalar types, or Void for procedures and
// the main program.
type DataType int

const (
	NoType DataType = iota
	Integer
	Boolean
	String
	Void
)

func (t DataType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Boolean:
		return "logical"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return ""
	}
}

// Param describes one formal parameter of a procedure or function.
type Param struct {
	Name        string
	DataType    DataType
	ByReference bool
}

// Symbol is a declared name: a variable, parameter, procedure, function, or
// the program itself. Symbols never reference other symbols, only their
// own definition site.
type Symbol struct {
	// Canonical is the case-normalised key under which this Symbol is stored.
	Canonical string

	// Lexeme is the identifier exactly as it was spelled at its declaration.
	Lexeme string

	Kind     Kind
	DataType DataType

	// Scope is the name of the scope that owns this Symbol.
	Scope string

	// Offset is the memory displacement assigned by the variable/parameter
	// declaration action.
	Offset int

	// Params is populated for Kind == Procedure or Kind == Function.
	Params []Param

	// ReturnType is populated for Kind == Function.
	ReturnType DataType

	// ByRef is populated for Kind == Parameter: whether the parameter was
	// declared with a leading "var" (pass by reference).
	ByRef bool

	// Label is a monotonically increasing codegen label,
	// assigned to procedures and functions (>= 2; 0 and 1 are reserved).
	Label int

	// Def is the source span of this Symbol's declaration site.
	Def diag.Span
}

// Scope is one lexical scope: a case-insensitive name -> Symbol mapping, a
// parent link (nil for the global scope), and the children created and
// exited during analysis (kept for enumeration/go-to-definition tooling that
// wants the whole tree after analysis completes).
type Scope struct {
	Name     string
	Parent   *Scope
	Symbols  map[string]*Symbol
	Children []*Scope
}

func newScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent, Symbols: make(map[string]*Symbol)}
}

// Table is the stack of lexical scopes used cooperatively by the Lexer and
// the Semantic Actions. It is not safe for concurrent use; a single
// analysis uses one Table single-threaded.
type Table struct {
	global  *Scope
	current *Scope
}

// New returns a Table with just the global scope active.
func New() *Table {
	g := newScope("global", nil)
	return &Table{global: g, current: g}
}

// Reset discards all scopes and symbols and returns the Table to a fresh
// global-only state, for reuse across analyses.
func (t *Table) Reset() {
	g := newScope("global", nil)
	t.global = g
	t.current = g
}

// Global returns the outermost scope.
func (t *Table) Global() *Scope {
	return t.global
}

// EnterScope pushes a new child scope of the current scope and makes it
// current. Only Semantic Actions call this.
func (t *Table) EnterScope(name string) {
	child := newScope(name, t.current)
	t.current.Children = append(t.current.Children, child)
	t.current = child
}

// ExitScope pops the current scope, never popping past the global scope.
func (t *Table) ExitScope() {
	if t.current.Parent != nil {
		t.current = t.current.Parent
	}
}

// GetCurrentScopeName returns the name of the innermost active scope.
func (t *Table) GetCurrentScopeName() string {
	return t.current.Name
}

func key(name string) string {
	return canon.String(name)
}

// Define adds a fresh Symbol to the current scope. It returns false (and
// does not modify the table) if a symbol with the same case-insensitive name
// already exists in the current scope — shadowing an outer scope is fine,
// redefining within the same scope is not. Only the Lexer calls this, in
// declaration mode.
func (t *Table) Define(sym *Symbol) bool {
	k := key(sym.Lexeme)
	if _, exists := t.current.Symbols[k]; exists {
		return false
	}
	sym.Canonical = k
	sym.Scope = t.current.Name
	t.current.Symbols[k] = sym
	return true
}

// Lookup walks the scope stack from innermost to outermost looking for name,
// case-insensitively, returning nil if not found anywhere. Only the Lexer
// calls this, in use mode.
func (t *Table) Lookup(name string) *Symbol {
	k := key(name)
	for s := t.current; s != nil; s = s.Parent {
		if sym, ok := s.Symbols[k]; ok {
			return sym
		}
	}
	return nil
}

// LookupInCurrentScope looks only in the innermost scope, without walking
// outward. Used by declaration-adjacent checks that must not be fooled by
// shadowing (e.g. parameter lists checking against their own header scope).
func (t *Table) LookupInCurrentScope(name string) *Symbol {
	k := key(name)
	return t.current.Symbols[k]
}

// Enumerate returns every Symbol defined in scope and all of its descendant
// scopes, depth-first. Used for tooling (e.g. workspace symbol listings)
// that wants the full resolved table after an analysis completes.
func Enumerate(scope *Scope) []*Symbol {
	var out []*Symbol
	for _, sym := range scope.Symbols {
		out = append(out, sym)
	}
	for _, child := range scope.Children {
		out = append(out, Enumerate(child)...)
	}
	return out
}
