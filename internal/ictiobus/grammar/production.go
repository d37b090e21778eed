package grammar

import (
	"strings"

	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// Production is a left-hand-side non-terminal and an ordered sequence of
// right-hand-side symbols. Productions are identified by a stable integer
// index assigned in source order; index 0 is reserved for the augmented
// production S' -> S.
//
// A production whose textual RHS was exactly the single token E (ε) has
// RHS normalized to the empty slice for all downstream algorithms; Display
// retains the original form ("E") for printing.
type Production struct {
	Index   int
	LHS     symbol.Symbol
	RHS     []symbol.Symbol
	Display []string
}

// IsEpsilon reports whether p is an ε-production, i.e. derives the empty
// string.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Equal reports whether p and o have the same LHS and RHS. Display is not
// compared; it exists purely for rendering.
func (p Production) Equal(o any) bool {
	other, ok := o.(Production)
	if !ok {
		otherPtr, ok := o.(*Production)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}
	if !p.LHS.Equal(other.LHS) || len(p.RHS) != len(other.RHS) {
		return false
	}
	for i := range p.RHS {
		if !p.RHS[i].Equal(other.RHS[i]) {
			return false
		}
	}
	return true
}

// String renders the production in "LHS -> RHS" form, using the original
// (pre-normalization) display symbols so ε-productions print as "A -> E".
func (p Production) String() string {
	rhs := p.Display
	if rhs == nil {
		rhs = make([]string, len(p.RHS))
		for i, s := range p.RHS {
			rhs[i] = s.Name
		}
	}
	if len(rhs) == 0 {
		return p.LHS.Name + " -> " + symbol.E
	}
	return p.LHS.Name + " -> " + strings.Join(rhs, " ")
}
