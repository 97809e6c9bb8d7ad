package ptable

import (
	"fmt"

	"github.com/oxixes/boreal-lang-ext/internal/grammar"
)

// defaultGrammarText is the bundled Boreal grammar: a classic
// precedence-stratified expression grammar (or/xor, and, equality,
// relational, sum, term, power, unary, primary) sitting under a
// semicolon-terminated statement and declaration grammar, chosen because
// that shape is the textbook case known to be conflict-free under SLR(1)
// closure/goto construction. Non-terminals are written in upper case by
// convention; everything else is a terminal, spelled exactly as
// lexer.Token.TerminalID produces it.
const defaultGrammarText = `
PROGRAM -> program id ; GLOBALS begin STMTS end

GLOBALS -> GDECL GLOBALS
GLOBALS -> LAMBDA

GDECL -> VARDECL
GDECL -> PROCDECL
GDECL -> FUNCDECL

VARDECL -> var IDLIST : TYPE ;

IDLIST -> id , IDLIST
IDLIST -> id

TYPE -> integer
TYPE -> boolean
TYPE -> string

PROCDECL -> procedure id ( PARAMS ) ; LOCALS begin STMTS end ;
FUNCDECL -> function id ( PARAMS ) : TYPE ; LOCALS begin STMTS end ;

LOCALS -> VARDECL LOCALS
LOCALS -> LAMBDA

PARAMS -> PARAMLIST
PARAMS -> LAMBDA

PARAMLIST -> PARAM ; PARAMLIST
PARAMLIST -> PARAM

PARAM -> MODE IDLIST : TYPE

MODE -> var
MODE -> LAMBDA

STMTS -> STMT STMTS
STMTS -> LAMBDA

STMT -> ASSIGN ;
STMT -> CALLSTMT ;
STMT -> IFSTMT ;
STMT -> WHILESTMT ;
STMT -> REPEATSTMT ;
STMT -> FORSTMT ;
STMT -> CASESTMT ;
STMT -> LOOPSTMT ;
STMT -> EXITWHEN ;
STMT -> RETURNSTMT ;
STMT -> WRITESTMT ;
STMT -> WRITELNSTMT ;
STMT -> READSTMT ;

ASSIGN -> id := EXPR

CALLSTMT -> id ( ARGS )

ARGS -> ARGLIST
ARGS -> LAMBDA

ARGLIST -> EXPR , ARGLIST
ARGLIST -> EXPR

IFSTMT -> if EXPR then STMTS end

WHILESTMT -> while EXPR do STMTS end

REPEATSTMT -> repeat STMTS until EXPR

FORSTMT -> for id := EXPR to EXPR do STMTS end

CASESTMT -> case EXPR of CASEARMS end
CASESTMT -> case EXPR of CASEARMS otherwise STMTS end

CASEARMS -> CASEARM CASEARMS
CASEARMS -> LAMBDA

CASEARM -> intlit : STMTS

LOOPSTMT -> loop STMTS end

EXITWHEN -> exit when EXPR

RETURNSTMT -> return EXPR
RETURNSTMT -> return

WRITESTMT -> write ( ARGLIST )
WRITELNSTMT -> writeln ( ARGLIST )
READSTMT -> read ( IDLIST )

EXPR -> EXPR or TERM1
EXPR -> EXPR xor TERM1
EXPR -> TERM1

TERM1 -> TERM1 and EQUALITY
TERM1 -> EQUALITY

EQUALITY -> EQUALITY = REL
EQUALITY -> EQUALITY <> REL
EQUALITY -> REL

REL -> REL < SUM
REL -> REL > SUM
REL -> REL <= SUM
REL -> REL >= SUM
REL -> REL in SUM
REL -> SUM

SUM -> SUM + TERM
SUM -> SUM - TERM
SUM -> TERM

TERM -> TERM * FACTOR
TERM -> TERM / FACTOR
TERM -> TERM mod FACTOR
TERM -> FACTOR

FACTOR -> FACTOR ** UNARY
FACTOR -> UNARY

UNARY -> not UNARY
UNARY -> - UNARY
UNARY -> PRIMARY

PRIMARY -> id
PRIMARY -> id ( ARGS )
PRIMARY -> intlit
PRIMARY -> strlit
PRIMARY -> true
PRIMARY -> false
PRIMARY -> ( EXPR )
PRIMARY -> max ( ARGLIST )
PRIMARY -> min ( ARGLIST )
`

// Grammar is the parsed, pre-classification Boreal grammar; exported so
// tooling and tests can inspect FIRST/FOLLOW sets or regenerate Default
// after a local edit to defaultGrammarText.
var Grammar *grammar.Grammar

// Default is the SLR(1) ACTION/GOTO table for Grammar, built once at package
// init. internal/parse uses this unless a caller supplies its own Table
// loaded via LoadText (e.g. for a retargeted grammar).
var Default *Table

func init() {
	g, err := grammar.Parse(defaultGrammarText)
	if err != nil {
		panic(fmt.Sprintf("ptable: bundled grammar failed to parse: %v", err))
	}
	Grammar = g

	t, err := BuildSLR(g)
	if err != nil {
		panic(fmt.Sprintf("ptable: bundled grammar is not SLR(1): %v", err))
	}
	Default = t
}
