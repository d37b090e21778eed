package grammar

import "github.com/dekarrin/lr1gen/internal/ictiobus/symbol"

// FIRST computes FIRST(seq): the set of terminals (possibly including ε)
// that can begin some derivation of the symbol sequence seq. ε is present
// in the result iff every symbol in seq is nullable.
//
// The per-non-terminal FIRST table is computed once, lazily, on the first
// call to FIRST or FIRSTOf, and memoized for the lifetime of the Grammar.
func (g *Grammar) FIRST(seq []symbol.Symbol) SymbolSet {
	g.ensureFirstComputed()
	return g.firstOfSequence(seq)
}

// FIRSTOf returns the memoized FIRST set of a single non-terminal.
func (g *Grammar) FIRSTOf(nt symbol.Symbol) SymbolSet {
	g.ensureFirstComputed()
	return g.first[nt.Name]
}

// ensureFirstComputed fills in g.first for every non-terminal, using
// memoized recursion in spirit: every non-terminal starts Unvisited, is
// marked InProgress for the duration of the fixed-point computation (a
// cyclic reference to an InProgress non-terminal simply reads its
// currently-accumulated, possibly-incomplete set rather than recursing
// further), and is marked Done once the whole table has reached a fixed
// point — no non-terminal's FIRST set gained a new terminal in a full
// pass over every production. This is the discipline spec.md §4.2/§9
// documents as avoiding both non-termination and loss of contributions
// across left-recursive cycles: per-non-terminal freezing the moment its
// own productions stop changing is unsound whenever two non-terminals
// feed each other across a cycle (one can lock in a stale, too-small set
// before its partner's new terminals arrive), so convergence is checked
// across the whole table, not node-by-node.
func (g *Grammar) ensureFirstComputed() {
	if g.firstComputed {
		return
	}

	nts := g.NonTerminals()
	for _, nt := range nts {
		g.firstState[nt.Name] = inProgress
		g.first[nt.Name] = newSymbolSet()
	}

	for {
		changed := false
		for _, nt := range nts {
			acc := g.first[nt.Name]
			for _, p := range g.ProductionsFor(nt) {
				before := acc.Len()
				acc.AddAll(g.firstOfSequence(p.RHS))
				if acc.Len() != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for _, nt := range nts {
		g.firstState[nt.Name] = done
	}
	g.firstComputed = true
}

// firstOfSequence computes FIRST(seq) by reading whatever is currently in
// g.first for each non-terminal encountered — during ensureFirstComputed's
// fixed-point loop that is a possibly-incomplete approximation that only
// grows; once firstComputed is true it is exact.
func (g *Grammar) firstOfSequence(seq []symbol.Symbol) SymbolSet {
	result := newSymbolSet()
	if len(seq) == 0 {
		result.Add(symbol.Epsilon)
		return result
	}

	for i, s := range seq {
		var symFirst SymbolSet
		if s.IsTerminal() {
			symFirst = newSymbolSet()
			symFirst.Add(s)
		} else {
			symFirst = g.first[s.Name]
			if symFirst == nil {
				symFirst = newSymbolSet()
			}
		}

		for t := range symFirst {
			if !t.IsEpsilon() {
				result.Add(t)
			}
		}

		if !symFirst.Has(symbol.Epsilon) {
			return result
		}

		if i == len(seq)-1 {
			result.Add(symbol.Epsilon)
		}
	}
	return result
}
