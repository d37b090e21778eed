package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders ACTION and GOTO as two aligned text tables, one row per
// state, columns for every terminal (ACTION) and non-terminal (GOTO) in
// the grammar's fixed enumeration order. Mirrors the teacher's
// canonicalLR1Table.String layout: a leading state-index column, a "|"
// separator, then one column per symbol.
func (t *Tables) String() string {
	terms := t.Grammar.Terminals()
	nonTerms := t.Grammar.NonTerminals()

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term.Name)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt.Name)
	}

	data := [][]string{headers}

	for i := range t.Family.States {
		row := []string{fmt.Sprintf("%d", i), "|"}

		for _, term := range terms {
			act := t.Action(i, term.Name)
			cell := ""
			if act.Kind != Error {
				cell = act.String()
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if j, ok := t.Goto(i, nt.Name); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
