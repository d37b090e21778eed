// Package recover implements panic-mode recovery table augmentation: for
// every state in a canonical LR(1) family, computes the synchronizing
// terminal set SYNC(i) and rewrites eligible Error cells in a Tables
// value's ACTION table to Recover entries.
package recover

import (
	"sort"

	"github.com/dekarrin/lr1gen/internal/ictiobus/automaton"
	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/parse"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// Sync computes SYNC(state): the union, over every item [A -> α.γ, a] in
// the family's state'th item set, of FIRST(γ·a) — γ being the entire
// unconsumed suffix of the production after the dot, not merely its first
// symbol. Returned sorted by name, both because the tie-break in Augment
// needs the smallest element and so two runs over the same grammar print
// the same set.
func Sync(g *grammar.Grammar, fam *automaton.Family, state int) []string {
	set := map[string]struct{}{}

	for _, item := range fam.States[state].Items() {
		prod := g.Productions[item.Production]

		seq := make([]symbol.Symbol, 0, len(prod.RHS)-item.Dot+1)
		seq = append(seq, prod.RHS[item.Dot:]...)
		seq = append(seq, item.Lookahead)

		for _, t := range g.FIRST(seq).Elements() {
			if t.IsEpsilon() {
				continue
			}
			set[t.Name] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Augment computes SYNC(i) for every state of t's family and installs it
// into t via Tables.ApplySync, turning eligible Error cells into Recover
// entries. Calling it twice recomputes and reapplies the same
// synchronizing sets, which is idempotent since ApplySync only ever
// touches cells currently holding Error.
func Augment(t *parse.Tables) {
	for i := range t.Family.States {
		t.ApplySync(i, Sync(t.Grammar, t.Family, i))
	}
}
