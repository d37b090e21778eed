// Package grammar parses a context-free grammar from its textual notation,
// augments it with a fresh start production, and computes FIRST sets over
// its symbols, lazily and with memoization.
package grammar

import (
	"sort"
	"strings"

	"github.com/dekarrin/lr1gen/internal/ictiobus/icterrors"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

// Grammar holds the augmented set of productions, the sets of terminals
// and non-terminals discovered while parsing, and a lazily populated,
// memoized FIRST-set cache. Once built, a Grammar is immutable except for
// that FIRST cache, which is filled in as queries are made.
type Grammar struct {
	// Productions is the full, augmented production list. Index 0 is
	// always S' -> S.
	Productions []Production

	// Start is the caller-supplied start symbol S.
	Start symbol.Symbol

	// AugmentedStart is the fresh non-terminal S' introduced during
	// augmentation.
	AugmentedStart symbol.Symbol

	terminals    map[string]symbol.Symbol
	nonTerminals map[string]symbol.Symbol

	byLHS map[string][]int // non-terminal name -> indices into Productions

	first         map[string]SymbolSet
	firstState    map[string]visitState
	firstComputed bool
}

type visitState int

const (
	unvisited visitState = iota
	inProgress
	done
)

// rawAlt is one alternative RHS of a production as parsed from text,
// before terminal/non-terminal classification.
type rawAlt struct {
	tokens []string
	line   int
}

type rawRule struct {
	lhs  string
	line int
	alts []rawAlt
}

// Parse reads grammar text in the notation documented in the project's
// external interfaces: lines of "LHS -> RHS_1 | RHS_2 | ...", blank lines
// skipped, alternatives whitespace-separated, the bare token E standing
// for ε. It augments the result with a fresh start production and returns
// the immutable Grammar, or a typed error (GrammarSyntaxError,
// UndefinedNonTerminal, UnknownStartSymbol).
func Parse(text string, start string) (*Grammar, error) {
	rules, err := scan(text)
	if err != nil {
		return nil, err
	}

	g := &Grammar{
		terminals:    map[string]symbol.Symbol{},
		nonTerminals: map[string]symbol.Symbol{},
		byLHS:        map[string][]int{},
		first:        map[string]SymbolSet{},
		firstState:   map[string]visitState{},
	}

	for _, r := range rules {
		g.nonTerminals[r.lhs] = symbol.NewNonTerminal(r.lhs)
	}

	// index 0 reserved for the augmented production; real productions
	// start at 1, in source order.
	var prods []Production
	prods = append(prods, Production{}) // placeholder, filled in below

	for _, r := range rules {
		for _, alt := range r.alts {
			p := Production{
				Index:   len(prods),
				LHS:     g.nonTerminals[r.lhs],
				Display: alt.tokens,
			}
			if len(alt.tokens) == 1 && alt.tokens[0] == symbol.E {
				// ε-production: RHS normalizes to empty.
			} else {
				for _, tok := range alt.tokens {
					p.RHS = append(p.RHS, g.classify(tok))
				}
			}
			prods = append(prods, p)
		}
	}

	startSym, ok := g.nonTerminals[start]
	if !ok {
		return nil, icterrors.NewUnknownStartSymbol(start)
	}
	g.Start = startSym

	augName := start
	for {
		augName = augName + "'"
		if _, taken := g.nonTerminals[augName]; !taken {
			if _, taken := g.terminals[augName]; !taken {
				break
			}
		}
	}
	g.AugmentedStart = symbol.NewNonTerminal(augName)
	g.nonTerminals[augName] = g.AugmentedStart

	prods[0] = Production{
		Index:   0,
		LHS:     g.AugmentedStart,
		RHS:     []symbol.Symbol{g.Start},
		Display: []string{start},
	}
	g.Productions = prods

	for i, p := range g.Productions {
		g.byLHS[p.LHS.Name] = append(g.byLHS[p.LHS.Name], i)
	}

	if err := g.validate(rules); err != nil {
		return nil, err
	}

	return g, nil
}

// classify returns the Symbol for tok, consulting (and if necessary
// populating) the terminal table: a symbol is a Terminal iff it never
// appears on any LHS.
func (g *Grammar) classify(tok string) symbol.Symbol {
	if nt, ok := g.nonTerminals[tok]; ok {
		return nt
	}
	if t, ok := g.terminals[tok]; ok {
		return t
	}
	t := symbol.NewTerminal(tok)
	g.terminals[tok] = t
	return t
}

// validate looks for RHS tokens that were clearly meant to be non-terminals
// but were never given a production. Classification itself (classify's
// "Terminal iff never on any LHS") is total and can't detect this on its
// own: an undefined symbol is, by that rule, simply a terminal. Every
// grammar in this project's own documentation and test suite follows the
// convention of naming non-terminals with an initial capital letter and
// terminals in lowercase (S, A, T, F vs. a, b, id, +); a capitalized token
// that was classified as a terminal is therefore almost certainly a typo
// for an intended non-terminal rather than a deliberately-named terminal,
// and is reported as UndefinedNonTerminal rather than silently accepted.
func (g *Grammar) validate(rules []rawRule) error {
	for _, r := range rules {
		for _, alt := range r.alts {
			if len(alt.tokens) == 1 && alt.tokens[0] == symbol.E {
				continue
			}
			for _, tok := range alt.tokens {
				if _, isNonTerm := g.nonTerminals[tok]; isNonTerm {
					continue
				}
				if looksLikeNonTerminal(tok) {
					return icterrors.NewUndefinedNonTerminal(alt.line, tok)
				}
			}
		}
	}
	return nil
}

// looksLikeNonTerminal reports whether tok follows this project's
// non-terminal naming convention (an initial capital letter).
func looksLikeNonTerminal(tok string) bool {
	r := []rune(tok)
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}

// scan tokenizes grammar text into rawRules, classifying nothing yet.
func scan(text string) ([]rawRule, error) {
	var rules []rawRule
	byLHS := map[string]int{} // lhs name -> index into rules, preserves one rawRule per LHS with multiple lines appending alts

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "missing '->'")
		}

		lhs := strings.TrimSpace(parts[0])
		if lhs == "" {
			return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "empty left-hand side")
		}
		if len(strings.Fields(lhs)) != 1 {
			return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "left-hand side must be a single non-terminal name")
		}
		if lhs == symbol.Eof {
			return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "reserved name 'eof' may not be used as a non-terminal")
		}
		// E stands for ε only when it is the sole symbol of an alternative;
		// as an LHS or beside other symbols it is an ordinary name, so a
		// grammar may declare a non-terminal E (as in E -> E + T | T).
		altStrs := strings.Split(parts[1], "|")
		var alts []rawAlt
		for _, altStr := range altStrs {
			toks := strings.Fields(altStr)
			if len(toks) == 0 {
				return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "empty alternative")
			}
			for _, tok := range toks {
				if tok == symbol.Eof {
					return nil, icterrors.NewGrammarSyntaxError(lineNum, raw, "reserved name 'eof' may not appear in a production")
				}
			}
			alts = append(alts, rawAlt{tokens: toks, line: lineNum})
		}

		if idx, ok := byLHS[lhs]; ok {
			rules[idx].alts = append(rules[idx].alts, alts...)
			continue
		}
		byLHS[lhs] = len(rules)
		rules = append(rules, rawRule{lhs: lhs, line: lineNum, alts: alts})
	}

	return rules, nil
}

// Terminals returns the set of terminal names discovered while parsing,
// sorted by name for reproducible enumeration, followed by eof. eof is
// always included, and always last (not at its sorted position), since no
// production may mention it and it is the augmented grammar's accept
// lookahead.
func (g *Grammar) Terminals() []symbol.Symbol {
	names := make([]string, 0, len(g.terminals))
	for n := range g.terminals {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]symbol.Symbol, 0, len(names)+1)
	for _, n := range names {
		out = append(out, g.terminals[n])
	}
	out = append(out, symbol.EofSymbol)
	return out
}

// NonTerminals returns the set of non-terminal names (including the
// augmented start) discovered while parsing, sorted for reproducible
// enumeration.
func (g *Grammar) NonTerminals() []symbol.Symbol {
	names := make([]string, 0, len(g.nonTerminals))
	for n := range g.nonTerminals {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]symbol.Symbol, 0, len(names))
	for _, n := range names {
		out = append(out, g.nonTerminals[n])
	}
	return out
}

// ProductionsFor returns the productions (in source order, by index) whose
// LHS is nt.
func (g *Grammar) ProductionsFor(nt symbol.Symbol) []Production {
	idxs := g.byLHS[nt.Name]
	out := make([]Production, len(idxs))
	for i, idx := range idxs {
		out[i] = g.Productions[idx]
	}
	return out
}
