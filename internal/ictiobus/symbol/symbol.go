// Package symbol defines the tagged-variant grammar symbol type that every
// other ictiobus package is polymorphic over.
package symbol

import "fmt"

// Kind distinguishes the two variants of Symbol.
type Kind int

const (
	// NonTerminal marks a Symbol as standing for some production's
	// left-hand side.
	NonTerminal Kind = iota

	// Terminal marks a Symbol as a leaf of the grammar, produced by no
	// rule.
	Terminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// Reserved terminal names. E denotes the empty string ε: in the grammar's
// textual notation it marks an ε-production, and as the Epsilon symbol it
// appears in FIRST sets of nullable sequences. Eof is the synthetic
// end-of-input terminal introduced during augmentation.
const (
	E   = "E"
	Eof = "eof"
)

// Symbol is a grammar symbol: a Terminal or a NonTerminal, identified by
// name. Symbols compare by (Kind, Name); names are opaque strings, shared
// by value here rather than duplicated into a string-interning table,
// since grammar inputs are small.
type Symbol struct {
	Kind Kind
	Name string
}

// NewTerminal returns the Terminal symbol with the given name.
func NewTerminal(name string) Symbol {
	return Symbol{Kind: Terminal, Name: name}
}

// NewNonTerminal returns the NonTerminal symbol with the given name.
func NewNonTerminal(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// EofSymbol is the reserved end-of-input terminal.
var EofSymbol = NewTerminal(Eof)

// Epsilon is the reserved empty-string terminal. It is only meaningful as
// a member of a FIRST set computation; it is never a parser lookahead.
var Epsilon = NewTerminal(E)

// IsTerminal reports whether s is a Terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsNonTerminal reports whether s is a NonTerminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminal
}

// IsEof reports whether s is the reserved end-of-input terminal.
func (s Symbol) IsEof() bool {
	return s.Kind == Terminal && s.Name == Eof
}

// IsEpsilon reports whether s is the reserved ε marker.
func (s Symbol) IsEpsilon() bool {
	return s.Kind == Terminal && s.Name == E
}

// Equal reports whether s and o denote the same symbol.
func (s Symbol) Equal(o any) bool {
	other, ok := o.(Symbol)
	if !ok {
		otherPtr, ok := o.(*Symbol)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}
	return s.Kind == other.Kind && s.Name == other.Name
}

// String renders the symbol for diagnostics. Terminals print as their bare
// name; non-terminals print the same way, since the two are distinguished
// structurally rather than lexically in this package.
func (s Symbol) String() string {
	return s.Name
}

// Less gives the total order used to make every enumeration over symbols
// in this module reproducible: terminals sort before non-terminals (the
// order spec.md §4.3 requires be fixed for GOTO discovery), then by name.
func Less(a, b Symbol) bool {
	if a.Kind != b.Kind {
		return a.Kind == Terminal
	}
	return a.Name < b.Name
}

// GoString supports %#v for debugging.
func (s Symbol) GoString() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Name)
}
