// Package grammar is a small, purpose-built context-free grammar
// representation (productions, terminal/non-terminal classification,
// FIRST/FOLLOW) used to drive the SLR(1) table builder in internal/ptable.
// Convention: a symbol spelled in all upper-case is a non-terminal,
// anything else is a terminal.
package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Epsilon is the empty-string pseudo-terminal used in RHS slices and FIRST
// sets. It never appears in a token stream.
const Epsilon = ""

// EndOfInput is the lookahead symbol that always follows the start symbol.
const EndOfInput = "$"

// Production is one grammar rule, LHS -> RHS (RHS empty means LHS -> ε).
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.LHS + " -> ε"
	}
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Grammar is a context-free grammar: an ordered production list (index 0 is
// always the augmented start production after Augment is called), plus the
// symbol alphabet split into terminals and non-terminals.
type Grammar struct {
	Start        string
	Productions  []Production
	Terminals    []string
	NonTerminals []string

	nt map[string]bool
}

// IsNonTerminal reports whether sym is classified as a non-terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nt[sym]
}

// IsTerminal reports whether sym is classified as a terminal (including "$").
func (g *Grammar) IsTerminal(sym string) bool {
	return !g.nt[sym] && sym != Epsilon
}

// ProductionsFor returns every production whose LHS is sym, in source order.
func (g *Grammar) ProductionsFor(sym string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == sym {
			out = append(out, p)
		}
	}
	return out
}

// Parse reads a grammar from the line-oriented textual format used by the
// bundled default Boreal grammar (and acceptable as a hand-authored input
// more generally): one production per line, "LHS -> SYM SYM SYM", alternates
// for the same LHS introduced with a leading "|", and the literal RHS token
// "LAMBDA" standing for the empty production. Blank lines and lines whose
// first non-space character is "#" are ignored. The LHS of the first
// production line encountered becomes the start symbol.
func Parse(text string) (*Grammar, error) {
	g := &Grammar{nt: map[string]bool{}}

	ntSeen := map[string]bool{}
	tSeen := map[string]bool{}

	var lastLHS string

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var lhs string
		var rest string

		if strings.HasPrefix(line, "|") {
			if lastLHS == "" {
				return nil, fmt.Errorf("grammar.Parse: line %d: leading '|' with no prior production", lineNo+1)
			}
			lhs = lastLHS
			rest = strings.TrimSpace(strings.TrimPrefix(line, "|"))
		} else {
			parts := strings.SplitN(line, "->", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("grammar.Parse: line %d: missing '->': %q", lineNo+1, raw)
			}
			lhs = strings.TrimSpace(parts[0])
			rest = strings.TrimSpace(parts[1])
		}

		if lhs == "" {
			return nil, fmt.Errorf("grammar.Parse: line %d: empty LHS", lineNo+1)
		}
		lastLHS = lhs

		if g.Start == "" {
			g.Start = lhs
		}

		ntSeen[lhs] = true
		g.nt[lhs] = true

		var rhs []string
		if rest != "LAMBDA" {
			fields := strings.Fields(rest)
			rhs = fields
		}

		g.Productions = append(g.Productions, Production{LHS: lhs, RHS: rhs})

		for _, sym := range rhs {
			if isUpperSymbol(sym) {
				ntSeen[sym] = true
				g.nt[sym] = true
			} else {
				tSeen[sym] = true
			}
		}
	}

	if len(g.Productions) == 0 {
		return nil, fmt.Errorf("grammar.Parse: no productions found")
	}

	for t := range tSeen {
		if !ntSeen[t] {
			g.Terminals = append(g.Terminals, t)
		}
	}
	for nt := range ntSeen {
		g.NonTerminals = append(g.NonTerminals, nt)
	}
	sort.Strings(g.Terminals)
	sort.Strings(g.NonTerminals)

	return g, nil
}

func isUpperSymbol(sym string) bool {
	return sym == strings.ToUpper(sym) && strings.ToLower(sym) != strings.ToUpper(sym)
}

// Augmented returns a copy of g with a fresh start production S' -> S
// prepended at index 0 and S' installed as the new start symbol, as required
// by Algorithm 4.46's item-set construction. Calling Augmented on an
// already-augmented grammar is a no-op beyond copying.
func (g *Grammar) Augmented() *Grammar {
	primed := g.Start + "'"
	for g.nt[primed] {
		primed += "'"
	}

	ag := &Grammar{
		Start:        primed,
		Terminals:    append([]string{}, g.Terminals...),
		NonTerminals: append([]string{primed}, g.NonTerminals...),
		nt:           map[string]bool{primed: true},
	}
	for k := range g.nt {
		ag.nt[k] = true
	}
	ag.Productions = append([]Production{{LHS: primed, RHS: []string{g.Start}}}, g.Productions...)
	return ag
}

// symSet is a small ordered-insertion string set, used for FIRST/FOLLOW.
type symSet struct {
	m  map[string]bool
	ks []string
}

func newSymSet() *symSet { return &symSet{m: map[string]bool{}} }

func (s *symSet) add(sym string) bool {
	if s.m[sym] {
		return false
	}
	s.m[sym] = true
	s.ks = append(s.ks, sym)
	return true
}

func (s *symSet) has(sym string) bool { return s.m[sym] }

func (s *symSet) slice() []string {
	out := append([]string{}, s.ks...)
	sort.Strings(out)
	return out
}

// First computes FIRST(sym) for a single grammar symbol (terminal,
// non-terminal, or Epsilon).
func (g *Grammar) First(sym string) []string {
	return g.first(sym, map[string]bool{}).slice()
}

func (g *Grammar) first(sym string, visiting map[string]bool) *symSet {
	out := newSymSet()
	if sym == Epsilon {
		out.add(Epsilon)
		return out
	}
	if !g.nt[sym] {
		out.add(sym)
		return out
	}
	if visiting[sym] {
		return out
	}
	visiting[sym] = true

	for _, p := range g.ProductionsFor(sym) {
		if len(p.RHS) == 0 {
			out.add(Epsilon)
			continue
		}
		allNullable := true
		for _, s := range p.RHS {
			sub := g.first(s, visiting)
			for _, f := range sub.slice() {
				if f != Epsilon {
					out.add(f)
				}
			}
			if !sub.has(Epsilon) {
				allNullable = false
				break
			}
		}
		if allNullable {
			out.add(Epsilon)
		}
	}
	return out
}

// FirstOfSequence computes FIRST of a sequence of symbols, the form needed
// when computing closures of items with lookahead.
func (g *Grammar) FirstOfSequence(seq []string) []string {
	out := newSymSet()
	allNullable := true
	for _, s := range seq {
		sub := g.first(s, map[string]bool{})
		for _, f := range sub.slice() {
			if f != Epsilon {
				out.add(f)
			}
		}
		if !sub.has(Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		out.add(Epsilon)
	}
	return out.slice()
}

// Follow computes FOLLOW(nt) for every non-terminal in the grammar, which is
// always needed as a whole set (reduce actions consult it production by
// production), so it is computed once and cached by the caller.
func (g *Grammar) Follow() map[string][]string {
	sets := map[string]*symSet{}
	for _, n := range g.NonTerminals {
		sets[n] = newSymSet()
	}
	sets[g.Start].add(EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			for i, b := range p.RHS {
				if !g.nt[b] {
					continue
				}
				rest := p.RHS[i+1:]
				firstRest := g.FirstOfSequence(rest)

				for _, f := range firstRest {
					if f == Epsilon {
						continue
					}
					if sets[b].add(f) {
						changed = true
					}
				}

				nullable := len(rest) == 0
				for _, f := range firstRest {
					if f == Epsilon {
						nullable = true
					}
				}
				if nullable {
					for _, f := range sets[p.LHS].slice() {
						if sets[b].add(f) {
							changed = true
						}
					}
				}
			}
		}
	}

	out := map[string][]string{}
	for n, s := range sets {
		out[n] = s.slice()
	}
	return out
}
