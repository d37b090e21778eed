package grammar

import (
	"sort"
	"strings"

	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// SymbolSet is the set type returned by FIRST: a set of symbols (in
// practice, terminals, possibly including the reserved ε marker).
type SymbolSet map[symbol.Symbol]struct{}

func newSymbolSet(syms ...symbol.Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

// Add adds sym to the set. No-op if already present.
func (s SymbolSet) Add(sym symbol.Symbol) {
	s[sym] = struct{}{}
}

// Has reports whether sym is in the set.
func (s SymbolSet) Has(sym symbol.Symbol) bool {
	_, ok := s[sym]
	return ok
}

// Len returns the number of elements in the set.
func (s SymbolSet) Len() int {
	return len(s)
}

// AddAll adds every element of o to s.
func (s SymbolSet) AddAll(o SymbolSet) {
	for sym := range o {
		s.Add(sym)
	}
}

// Elements returns the set's members, sorted by symbol.Less for
// reproducible output.
func (s SymbolSet) Elements() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return symbol.Less(out[i], out[j]) })
	return out
}

// String renders the set's contents in sorted, reproducible order.
func (s SymbolSet) String() string {
	elems := s.Elements()
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.Name
	}
	return "{" + strings.Join(names, ", ") + "}"
}
