// Package automaton builds the canonical collection of LR(1) item sets for
// an augmented grammar: the closure and GOTO operations of dragon-book
// Algorithm 4.53/4.54, and the worklist construction of Algorithm 4.56
// step 1 that turns those into a deterministic finite automaton over
// grammar symbols.
package automaton

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// Item is an LR(1) item: a production, identified by its stable index into
// the owning Grammar's Productions, a dot position marking how much of the
// production's RHS has been recognized, and a lookahead terminal that must
// follow once the production is reduced.
//
// Item is a plain comparable struct (no pointers, no slices) so it can be
// used directly as a map key; ItemSet relies on that for deduplication.
type Item struct {
	Production int
	Dot        int
	Lookahead  symbol.Symbol
}

// AtEnd reports whether the dot has reached the end of the production's
// RHS, i.e. the item calls for a reduction rather than a shift.
func (it Item) AtEnd(g *grammar.Grammar) bool {
	return it.Dot >= len(g.Productions[it.Production].RHS)
}

// NextSymbol returns the RHS symbol immediately following the dot and true,
// or the zero Symbol and false if the dot is already at the end.
func (it Item) NextSymbol(g *grammar.Grammar) (symbol.Symbol, bool) {
	rhs := g.Productions[it.Production].RHS
	if it.Dot >= len(rhs) {
		return symbol.Symbol{}, false
	}
	return rhs[it.Dot], true
}

// RestAfterNext returns the RHS symbols strictly after the one NextSymbol
// would return; used to compute FIRST(βa) when closing [A -> α.Bβ, a].
func (it Item) RestAfterNext(g *grammar.Grammar) []symbol.Symbol {
	rhs := g.Productions[it.Production].RHS
	if it.Dot+1 >= len(rhs) {
		return nil
	}
	return rhs[it.Dot+1:]
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Production: it.Production, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// String renders the item in dragon-book "A -> α.β, a" form.
func (it Item) String(g *grammar.Grammar) string {
	p := g.Productions[it.Production]

	var left, right []string
	for i, s := range p.RHS {
		if i < it.Dot {
			left = append(left, s.Name)
		} else {
			right = append(right, s.Name)
		}
	}

	leftStr := strings.Join(left, " ")
	rightStr := strings.Join(right, " ")
	if leftStr != "" {
		leftStr += " "
	}
	if rightStr != "" {
		rightStr = " " + rightStr
	}

	return fmt.Sprintf("%s -> %s.%s, %s", p.LHS.Name, leftStr, rightStr, it.Lookahead.Name)
}
