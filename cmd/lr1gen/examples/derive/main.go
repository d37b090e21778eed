/*
Derive is a small, separately-buildable example that drives a freshly
built ACTION/GOTO table against a hand-supplied sentence of terminal names
and prints the shift/reduce/goto steps taken, ending in "accept" or a
syntax error.

It contributes no construction algorithm of its own: it exists only to
show the core's public artifacts (Grammar, Tables) being consumed, the way
a real parser driver would, following the shift-reduce loop of dragon-book
Algorithm 4.44. It reads the same grammar-text notation as lr1gen from
stdin, takes the start symbol and the sentence to derive as arguments, and
does not attempt panic-mode recovery; a consumer that wants recovery would
drive Tables.Action/Goto the same way but branch on Recover cells too.

Usage:

	derive START SENTENCE... < grammar.txt

SENTENCE is a space-separated (via program arguments) list of terminal
names; "eof" is appended automatically.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/parse"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive START SENTENCE... < grammar.txt")
		os.Exit(1)
	}

	start := os.Args[1]
	sentence := append([]string(nil), os.Args[2:]...)
	sentence = append(sentence, symbol.Eof)

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading stdin: %s\n", err)
		os.Exit(1)
	}

	g, err := grammar.Parse(string(text), start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	tables, err := parse.Build(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(2)
	}

	if err := derive(g, tables, sentence); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

// derive runs the classic shift-reduce driving loop (dragon-book Algorithm
// 4.44): a stack of states, starting at 0, consuming terminals from input
// one at a time, shifting on a Shift cell, popping |RHS| states and
// pushing GOTO[top, LHS] on a Reduce cell, stopping on Accept or an
// unrecoverable Error.
func derive(g *grammar.Grammar, t *parse.Tables, input []string) error {
	stack := []int{0}
	pos := 0

	for {
		state := stack[len(stack)-1]
		lookahead := input[pos]

		act := t.Action(state, lookahead)
		switch act.Kind {
		case parse.Shift:
			fmt.Printf("shift %s, goto state %d\n", lookahead, act.State)
			stack = append(stack, act.State)
			pos++

		case parse.Reduce:
			prod := g.Productions[act.Production]
			fmt.Printf("reduce by %s\n", prod.String())
			stack = stack[:len(stack)-len(prod.RHS)]
			top := stack[len(stack)-1]
			next, ok := t.Goto(top, prod.LHS.Name)
			if !ok {
				return fmt.Errorf("no GOTO[%d, %s] after reducing", top, prod.LHS.Name)
			}
			stack = append(stack, next)

		case parse.Accept:
			fmt.Println("accept")
			return nil

		default:
			return fmt.Errorf("syntax error: unexpected %q in state %d", lookahead, state)
		}
	}
}
