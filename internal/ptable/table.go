// Package ptable is the SLR(1) ACTION/GOTO table used by internal/parse: a
// bundled default table for the shipped Boreal grammar, built once at
// package init by a compact from-scratch implementation of Algorithm 4.46
// (closure/goto over the grammar's LR(0) item sets, dragon-book style), plus
// a loader for an external, hand-editable text format, for anyone deploying
// a retargeted or regenerated table without rebuilding the binary.
package ptable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oxixes/boreal-lang-ext/internal/grammar"
)

// ActionKind classifies one ACTION table cell.
type ActionKind int

const (
	// ActError means "no entry": the state/terminal pair is a syntax error.
	ActError ActionKind = iota
	ActShift
	ActReduce
	ActAccept
)

// Action is one ACTION table cell.
type Action struct {
	Kind       ActionKind
	State      int // target state, when Kind == ActShift
	Production int // production index, when Kind == ActReduce
}

func (a Action) String() string {
	switch a.Kind {
	case ActShift:
		return fmt.Sprintf("s%d", a.State)
	case ActReduce:
		return fmt.Sprintf("r%d", a.Production)
	case ActAccept:
		return "accept"
	default:
		return "%"
	}
}

// Table is a complete SLR(1) parse table: the ACTION and GOTO matrices plus
// the production list reduce actions index into. It carries no pointer back
// to the grammar.Grammar it was built from, so it round-trips cleanly
// through rezi's binary caching (only exported, reflectable fields).
type Table struct {
	NumStates    int
	Start        int
	Terminals    []string
	NonTerminals []string
	Productions  []grammar.Production

	// Action[state][terminal] and Goto[state][nonterminal] are sparse;
	// absent entries behave as ActError / "no goto" respectively.
	Action map[int]map[string]Action
	Goto   map[int]map[string]int
}

// ActionOf returns the ACTION table entry for (state, terminal), defaulting
// to ActError when absent.
func (t *Table) ActionOf(state int, terminal string) Action {
	if row, ok := t.Action[state]; ok {
		if a, ok := row[terminal]; ok {
			return a
		}
	}
	return Action{Kind: ActError}
}

// GotoOf returns the GOTO table entry for (state, nonTerminal).
func (t *Table) GotoOf(state int, nonTerminal string) (int, bool) {
	row, ok := t.Goto[state]
	if !ok {
		return 0, false
	}
	s, ok := row[nonTerminal]
	return s, ok
}

func (t *Table) setAction(state int, terminal string, a Action) error {
	if t.Action == nil {
		t.Action = map[int]map[string]Action{}
	}
	row, ok := t.Action[state]
	if !ok {
		row = map[string]Action{}
		t.Action[state] = row
	}
	if existing, ok := row[terminal]; ok && existing != a {
		return fmt.Errorf("ptable: conflict at state %d on %q: %s vs %s", state, terminal, existing, a)
	}
	row[terminal] = a
	return nil
}

func (t *Table) setGoto(state int, nt string, target int) {
	if t.Goto == nil {
		t.Goto = map[int]map[string]int{}
	}
	row, ok := t.Goto[state]
	if !ok {
		row = map[string]int{}
		t.Goto[state] = row
	}
	row[nt] = target
}

// finSentinel is the column header that separates the ACTION block
// (terminal columns) from the GOTO block (non-terminal columns) in the
// external text format.
const finSentinel = "FIN"

// LoadText parses the header-row text format: a first line listing every
// terminal, then the literal token FIN, then every non-terminal; and one
// body line per state, starting with the state number, then one ACTION cell
// per terminal column ("%" for no entry, "accept", "sN", "rN"), then the
// FIN column (ignored, kept only for visual alignment), then one GOTO cell
// per non-terminal column ("%" for no entry, or a bare state number).
// Productions are not recoverable from this format alone; callers loading an
// externally supplied table must set Table.Productions themselves before
// handing it to internal/parse, since reduce actions need RHS lengths and
// LHS names.
func LoadText(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	var header []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if header == nil {
		return nil, fmt.Errorf("ptable.LoadText: empty input, no header row")
	}

	finIdx := -1
	for i, h := range header {
		if h == finSentinel {
			finIdx = i
			break
		}
	}
	if finIdx < 0 {
		return nil, fmt.Errorf("ptable.LoadText: header row missing %q sentinel", finSentinel)
	}

	t := &Table{
		Terminals:    header[:finIdx],
		NonTerminals: header[finIdx+1:],
	}

	maxState := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		wantLen := 1 + len(t.Terminals) + 1 + len(t.NonTerminals)
		if len(fields) != wantLen {
			return nil, fmt.Errorf("ptable.LoadText: row %q: want %d fields, got %d", line, wantLen, len(fields))
		}

		state, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ptable.LoadText: row %q: bad state number: %w", line, err)
		}
		if state > maxState {
			maxState = state
		}

		for i, term := range t.Terminals {
			cell := fields[1+i]
			a, err := parseActionCell(cell)
			if err != nil {
				return nil, fmt.Errorf("ptable.LoadText: state %d, terminal %q: %w", state, term, err)
			}
			if a.Kind != ActError {
				if err := t.setAction(state, term, a); err != nil {
					return nil, err
				}
			}
		}

		gotoBase := 1 + len(t.Terminals) + 1
		for i, nt := range t.NonTerminals {
			cell := fields[gotoBase+i]
			if cell == "%" {
				continue
			}
			target, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("ptable.LoadText: state %d, nonterminal %q: bad goto cell %q: %w", state, nt, cell, err)
			}
			t.setGoto(state, nt, target)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	t.NumStates = maxState + 1
	t.Start = 0
	return t, nil
}

func parseActionCell(cell string) (Action, error) {
	switch {
	case cell == "%":
		return Action{Kind: ActError}, nil
	case cell == "accept" || cell == "acc":
		return Action{Kind: ActAccept}, nil
	case strings.HasPrefix(cell, "s"):
		n, err := strconv.Atoi(cell[1:])
		if err != nil {
			return Action{}, fmt.Errorf("bad shift cell %q: %w", cell, err)
		}
		return Action{Kind: ActShift, State: n}, nil
	case strings.HasPrefix(cell, "r"):
		n, err := strconv.Atoi(cell[1:])
		if err != nil {
			return Action{}, fmt.Errorf("bad reduce cell %q: %w", cell, err)
		}
		return Action{Kind: ActReduce, Production: n}, nil
	default:
		return Action{}, fmt.Errorf("unrecognized action cell %q", cell)
	}
}

// WriteText serialises t back to the external text format, e.g. for an
// embedder regenerating a checked-in table file after editing the grammar.
func WriteText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s %s\n", strings.Join(t.Terminals, " "), finSentinel, strings.Join(t.NonTerminals, " "))
	for s := 0; s < t.NumStates; s++ {
		fmt.Fprintf(bw, "%d", s)
		for _, term := range t.Terminals {
			fmt.Fprintf(bw, " %s", t.ActionOf(s, term))
		}
		fmt.Fprintf(bw, " %s", finSentinel)
		for _, nt := range t.NonTerminals {
			if target, ok := t.GotoOf(s, nt); ok {
				fmt.Fprintf(bw, " %d", target)
			} else {
				fmt.Fprintf(bw, " %%")
			}
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
