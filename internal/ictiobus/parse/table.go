package parse

import (
	"sort"

	"github.com/dekarrin/lr1gen/internal/ictiobus/automaton"
	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/icterrors"
)

// Tables holds the synthesized ACTION and GOTO tables over a grammar's
// canonical LR(1) family. Sync is nil until the panic module's
// recover.Augment has run against it; until then Tables.Sync returns nil
// for every state.
type Tables struct {
	Grammar *grammar.Grammar
	Family  *automaton.Family

	action map[int]map[string]Action
	goTo   map[int]map[string]int

	sync map[int][]string
}

// Build synthesizes ACTION and GOTO from g's canonical LR(1) family per
// dragon-book Algorithm 4.56 steps 2 and 3. Every shift/reduce and
// reduce/reduce conflict found is collected (not just the first) and, if
// any were found, returned together as a single *icterrors.ConflictError
// — this project's resolution of spec.md §9's open question in favor of
// complete diagnostic batches over abort-on-first, matching the teacher's
// internal/tqerrors wrap-and-describe preference for reporting everything
// at once.
func Build(g *grammar.Grammar) (*Tables, error) {
	fam := automaton.Build(g)

	t := &Tables{
		Grammar: g,
		Family:  fam,
		action:  make(map[int]map[string]Action, len(fam.States)),
		goTo:    make(map[int]map[string]int, len(fam.States)),
	}

	var conflicts []icterrors.Conflict

	for i, state := range fam.States {
		t.action[i] = map[string]Action{}
		t.goTo[i] = map[string]int{}

		for _, nt := range g.NonTerminals() {
			if j, ok := fam.Goto(i, nt); ok {
				t.goTo[i][nt.Name] = j
			}
		}

		for _, item := range state.Items() {
			prod := g.Productions[item.Production]

			if !item.AtEnd(g) {
				next, _ := item.NextSymbol(g)
				if !next.IsTerminal() {
					continue
				}
				j, ok := fam.Goto(i, next)
				if !ok {
					continue
				}
				t.set(i, next.Name, Action{Kind: Shift, State: j}, &conflicts)
				continue
			}

			if prod.LHS.Equal(g.AugmentedStart) {
				if item.Lookahead.IsEof() {
					t.set(i, item.Lookahead.Name, Action{Kind: Accept}, &conflicts)
				}
				continue
			}

			t.set(i, item.Lookahead.Name, Action{Kind: Reduce, Production: item.Production}, &conflicts)
		}
	}

	if err := icterrors.NewConflictError(conflicts); err != nil {
		return nil, err
	}

	return t, nil
}

// set installs act into ACTION[state, terminal], recording a conflict
// (rather than failing immediately) if a different action is already
// present there.
func (t *Tables) set(state int, terminal string, act Action, conflicts *[]icterrors.Conflict) {
	existing, ok := t.action[state][terminal]
	if ok && !existing.Equal(act) {
		*conflicts = append(*conflicts, icterrors.Conflict{
			State:    state,
			Terminal: terminal,
			First:    existing.String(),
			Second:   act.String(),
		})
		return
	}
	t.action[state][terminal] = act
}

// Action returns ACTION[state, terminal]. The zero Action (Kind Error) is
// returned for undefined cells.
func (t *Tables) Action(state int, terminal string) Action {
	return t.action[state][terminal]
}

// Goto returns GOTO[state, nonTerminal] and whether it is defined.
func (t *Tables) Goto(state int, nonTerminal string) (int, bool) {
	j, ok := t.goTo[state][nonTerminal]
	return j, ok
}

// Sync returns the sorted synchronizing terminal set computed for state by
// the panic module, or nil if recover.Augment has not yet run against t.
func (t *Tables) Sync(state int) []string {
	return t.sync[state]
}

// ApplySync is called by the panic module to install SYNC(state). Per
// spec.md §4.5, every terminal in the grammar (not only those in sync)
// whose ACTION[state, terminal] is currently Error is rewritten to
// Recover(t'), where t' is the single canonical synchronizing terminal for
// the whole state — the lexicographically smallest member of sync. If
// sync is empty, every Error cell in state is left untouched.
func (t *Tables) ApplySync(state int, sync []string) {
	sorted := append([]string(nil), sync...)
	sort.Strings(sorted)
	if t.sync == nil {
		t.sync = map[int][]string{}
	}
	t.sync[state] = sorted

	if len(sorted) == 0 {
		return
	}
	canonical := sorted[0]

	for _, term := range t.Grammar.Terminals() {
		if t.action[state][term.Name].Kind == Error {
			t.action[state][term.Name] = Action{Kind: Recover, RecoverTo: canonical}
		}
	}
}
