package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// ItemSet is a deduplicated collection of LR(1) items, closed under the
// closure operation (dragon-book Algorithm 4.53).
type ItemSet struct {
	items map[Item]struct{}
}

// NewItemSet returns the set containing exactly the given items, before any
// closure is taken.
func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{items: make(map[Item]struct{}, len(items))}
	for _, it := range items {
		s.items[it] = struct{}{}
	}
	return s
}

// add inserts it into the set and reports whether it was not already
// present (i.e. whether the set actually grew).
func (s *ItemSet) add(it Item) bool {
	if _, ok := s.items[it]; ok {
		return false
	}
	s.items[it] = struct{}{}
	return true
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int {
	return len(s.items)
}

// Has reports whether it is a member of the set.
func (s *ItemSet) Has(it Item) bool {
	_, ok := s.items[it]
	return ok
}

// Items returns the set's members sorted by (Production, Dot, Lookahead),
// the order spec.md §4.3 fixes for reproducible enumeration and rendering.
func (s *ItemSet) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Production != b.Production {
			return a.Production < b.Production
		}
		if a.Dot != b.Dot {
			return a.Dot < b.Dot
		}
		return a.Lookahead.Name < b.Lookahead.Name
	})
	return out
}

// key returns a stable, order-independent identity string for the set's
// contents. Item itself is a plain comparable struct so two ItemSets with
// identical members are trivially the same set in Go's eyes; Family needs a
// hashable string form of that identity to index already-discovered states
// by content while building the canonical collection.
func (s *ItemSet) key() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d.%d.%s", it.Production, it.Dot, it.Lookahead.Name)
	}
	return strings.Join(parts, "|")
}

// Closure computes the closure of the given items under dragon-book
// Algorithm 4.53: for every item [A -> α.Bβ, a] already in the set, and
// every production B -> γ, every item [B -> .γ, b] is added for each
// terminal b in FIRST(βa). Repeats until no more items can be added.
func Closure(g *grammar.Grammar, items []Item) *ItemSet {
	set := NewItemSet(items...)

	worklist := append([]Item(nil), items...)
	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		next, ok := it.NextSymbol(g)
		if !ok || next.IsTerminal() {
			continue
		}

		rest := it.RestAfterNext(g)
		seq := make([]symbol.Symbol, 0, len(rest)+1)
		seq = append(seq, rest...)
		seq = append(seq, it.Lookahead)
		lookaheads := g.FIRST(seq)

		for _, prod := range g.ProductionsFor(next) {
			for _, b := range lookaheads.Elements() {
				if b.IsEpsilon() {
					continue
				}
				newItem := Item{Production: prod.Index, Dot: 0, Lookahead: b}
				if set.add(newItem) {
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return set
}

// Goto computes GOTO(I, X) per dragon-book Algorithm 4.54: the closure of
// every item [A -> α.Xβ, a] in I advanced one position past X.
func Goto(g *grammar.Grammar, I *ItemSet, x symbol.Symbol) *ItemSet {
	var moved []Item
	for _, it := range I.Items() {
		next, ok := it.NextSymbol(g)
		if !ok || !next.Equal(x) {
			continue
		}
		moved = append(moved, it.Advance())
	}
	if len(moved) == 0 {
		return NewItemSet()
	}
	return Closure(g, moved)
}
