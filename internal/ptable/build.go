package ptable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oxixes/boreal-lang-ext/internal/grammar"
)

// lr0Item is [production -> RHS with a dot before RHS[dot]].
type lr0Item struct {
	prod int
	dot  int
}

type itemSet map[lr0Item]bool

func (s itemSet) key() string {
	items := make([]lr0Item, 0, len(s))
	for it := range s {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].prod != items[j].prod {
			return items[i].prod < items[j].prod
		}
		return items[i].dot < items[j].dot
	})
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%d.%d|", it.prod, it.dot)
	}
	return b.String()
}

func closure(g *grammar.Grammar, start itemSet) itemSet {
	items := itemSet{}
	for k := range start {
		items[k] = true
	}

	changed := true
	for changed {
		changed = false
		for it := range items {
			p := g.Productions[it.prod]
			if it.dot >= len(p.RHS) {
				continue
			}
			sym := p.RHS[it.dot]
			if !g.IsNonTerminal(sym) {
				continue
			}
			for pi, prod := range g.Productions {
				if prod.LHS != sym {
					continue
				}
				ni := lr0Item{prod: pi, dot: 0}
				if !items[ni] {
					items[ni] = true
					changed = true
				}
			}
		}
	}
	return items
}

func gotoSet(g *grammar.Grammar, items itemSet, sym string) itemSet {
	moved := itemSet{}
	for it := range items {
		p := g.Productions[it.prod]
		if it.dot < len(p.RHS) && p.RHS[it.dot] == sym {
			moved[lr0Item{prod: it.prod, dot: it.dot + 1}] = true
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return closure(g, moved)
}

// BuildSLR constructs the SLR(1) ACTION/GOTO table for g via the canonical
// collection of LR(0) item sets plus FOLLOW-set reduce placement (dragon
// book Algorithm 4.46). g must not already be augmented; BuildSLR augments
// it internally. Returns an error identifying the offending state and
// symbol on the first shift/reduce or reduce/reduce conflict found, since an
// SLR(1) table by definition has none and a conflict means the source
// grammar is not SLR(1).
func BuildSLR(g *grammar.Grammar) (*Table, error) {
	ag := g.Augmented()
	follow := ag.Follow()

	startItems := closure(ag, itemSet{{prod: 0, dot: 0}: true})

	var states []itemSet
	index := map[string]int{}
	index[startItems.key()] = 0
	states = append(states, startItems)

	type edge struct {
		from int
		sym  string
		to   int
	}
	var edges []edge

	allSymbols := append(append([]string{}, ag.Terminals...), ag.NonTerminals...)
	sort.Strings(allSymbols)

	for i := 0; i < len(states); i++ {
		for _, sym := range allSymbols {
			next := gotoSet(ag, states[i], sym)
			if next == nil {
				continue
			}
			k := next.key()
			j, ok := index[k]
			if !ok {
				j = len(states)
				index[k] = j
				states = append(states, next)
			}
			edges = append(edges, edge{from: i, sym: sym, to: j})
		}
	}

	t := &Table{
		NumStates:    len(states),
		Start:        0,
		Terminals:    append(append([]string{}, g.Terminals...), grammar.EndOfInput),
		NonTerminals: append([]string{}, g.NonTerminals...),
		Productions:  g.Productions,
	}
	sort.Strings(t.Terminals)

	for _, e := range edges {
		if ag.IsNonTerminal(e.sym) {
			t.setGoto(e.from, e.sym, e.to)
			continue
		}
		if err := t.setAction(e.from, e.sym, Action{Kind: ActShift, State: e.to}); err != nil {
			return nil, err
		}
	}

	for i, items := range states {
		for it := range items {
			p := ag.Productions[it.prod]
			if it.dot != len(p.RHS) {
				continue
			}
			if p.LHS == ag.Start {
				if err := t.setAction(i, grammar.EndOfInput, Action{Kind: ActAccept}); err != nil {
					return nil, err
				}
				continue
			}
			// it.prod indexes ag.Productions, which is g.Productions shifted
			// by one (index 0 is the synthetic augmenting production); the
			// stored production index must refer back into g.Productions so
			// that internal/parse and internal/sema, which only know about
			// the original grammar, can look up LHS/RHS/semantic actions.
			origIdx := it.prod - 1
			for _, a := range follow[p.LHS] {
				if err := t.setAction(i, a, Action{Kind: ActReduce, Production: origIdx}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}
