package automaton

import (
	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// Family is the canonical collection of sets of LR(1) items for an
// augmented grammar: a deterministic finite automaton whose states are
// item sets and whose transitions are the GOTO function, built by the
// worklist procedure of dragon-book Algorithm 4.56 step 1.
type Family struct {
	// States holds every item set discovered, in discovery order. State 0
	// is always the closure of the single item [S' -> .S, eof].
	States []*ItemSet

	// Transitions[i] maps a grammar symbol to the state GOTO(States[i], X)
	// reaches. Entries are only present where the transition is defined;
	// a missing entry is the table's error cell.
	Transitions []map[symbol.Symbol]int
}

// Build constructs the canonical collection for g. Symbols are tried, at
// each state, in the fixed order terminals-then-non-terminals (see
// enumerationOrder) so that state discovery order — and
// therefore the numeric state indices themselves — is reproducible across
// runs of the same grammar, as spec.md §4.3/§9 requires.
func Build(g *grammar.Grammar) *Family {
	start := Closure(g, []Item{{
		Production: 0,
		Dot:        0,
		Lookahead:  symbol.EofSymbol,
	}})

	f := &Family{}
	indexOf := map[string]int{start.key(): 0}
	f.States = append(f.States, start)
	f.Transitions = append(f.Transitions, map[symbol.Symbol]int{})

	symbols := enumerationOrder(g)

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		for _, x := range symbols {
			j := Goto(g, f.States[i], x)
			if j.Len() == 0 {
				continue
			}

			key := j.key()
			jIdx, seen := indexOf[key]
			if !seen {
				jIdx = len(f.States)
				indexOf[key] = jIdx
				f.States = append(f.States, j)
				f.Transitions = append(f.Transitions, map[symbol.Symbol]int{})
				worklist = append(worklist, jIdx)
			}
			f.Transitions[i][x] = jIdx
		}
	}

	return f
}

// enumerationOrder returns every grammar symbol in the fixed discovery
// order: terminals (sorted by name, then eof last, as g.Terminals()
// returns them) then non-terminals (sorted by name, including the
// augmented start). Because eof is kept last rather than at its sorted
// position, this order is not exactly symbol.Less, but it is fixed for a
// given grammar.
func enumerationOrder(g *grammar.Grammar) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(g.Terminals())+len(g.NonTerminals()))
	out = append(out, g.Terminals()...)
	out = append(out, g.NonTerminals()...)
	return out
}

// Goto exposes the family's GOTO transition for external callers (e.g. the
// Table module) that only have state indices, not ItemSets, in hand.
func (f *Family) Goto(state int, x symbol.Symbol) (int, bool) {
	j, ok := f.Transitions[state][x]
	return j, ok
}
