/*
Lr1gen reads a context-free grammar from standard input and prints its
canonical LR(1) parser-construction artifacts.

It reads the grammar's textual notation (lines of "LHS -> RHS_1 | RHS_2 |
...", the bare token E standing for ε) from stdin, augments it with a fresh
start production, and writes to stdout, in order: the augmented
productions, each non-terminal's FIRST set, the canonical family of LR(1)
item sets, the ACTION and GOTO tables, and — unless --recover=false — the
panic-mode recovery-augmented ACTION table.

Usage:

	lr1gen -s START [flags] < grammar.txt

The flags are:

	-s, --symbol-start NAME
		The grammar's start non-terminal. Required.

	--recover
		Also print the panic-mode recovery-augmented ACTION table.
		Defaults to true.

	-V, --verbose
		Tag this run's family with a UUID and report it, along with basic
		grammar stats, on standard error.

Exit code 0 on success, 1 if the grammar could not be parsed, 2 if the
grammar is not LR(1) (a shift/reduce or reduce/reduce conflict was found).
Diagnostics are written to standard error.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/parse"
	lr1recover "github.com/dekarrin/lr1gen/internal/ictiobus/recover"
	"github.com/dekarrin/lr1gen/internal/util"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGrammarError indicates the input could not be read or parsed as
	// a well-formed grammar.
	ExitGrammarError

	// ExitConflictError indicates the grammar was parsed but is not LR(1).
	ExitConflictError
)

var (
	returnCode int = ExitSuccess

	startSymbol  *string = pflag.StringP("symbol-start", "s", "", "The grammar's start non-terminal (required)")
	withRecovery *bool   = pflag.Bool("recover", true, "Also print the panic-mode recovery-augmented ACTION table")
	verbose      *bool   = pflag.BoolP("verbose", "V", false, "Tag this run's family with a UUID on stderr")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *startSymbol == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --symbol-start/-s is required")
		returnCode = ExitGrammarError
		return
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading stdin: %s\n", err)
		returnCode = ExitGrammarError
		return
	}

	g, err := grammar.Parse(string(text), *startSymbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitGrammarError
		return
	}

	tables, err := parse.Build(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitConflictError
		return
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "run %s: %d productions, %d states, start %s\n",
			uuid.NewString(), len(g.Productions), len(tables.Family.States), g.Start)
	}

	printProductions(g)
	printFirstSets(g)
	printFamily(g, tables)

	fmt.Println("ACTION/GOTO:")
	fmt.Println(tables.String())

	if *withRecovery {
		lr1recover.Augment(tables)
		fmt.Println()
		fmt.Println("ACTION/GOTO (recovery-augmented):")
		fmt.Println(tables.String())
		fmt.Println()
		printSync(tables)
	}
}

// printSync reports each state's synchronizing terminal set in prose,
// since the table rendering above only shows that a cell became Recover,
// not what the rest of SYNC(i) contained.
func printSync(t *parse.Tables) {
	fmt.Println("Synchronizing sets:")
	for i := range t.Family.States {
		sync := t.Sync(i)
		if len(sync) == 0 {
			continue
		}
		fmt.Printf("  I%d syncs on %s\n", i, util.MakeTextList(sync))
	}
}

func printProductions(g *grammar.Grammar) {
	fmt.Println("Productions:")
	for _, p := range g.Productions {
		fmt.Printf("  %d: %s\n", p.Index, p.String())
	}
	fmt.Println()
}

func printFirstSets(g *grammar.Grammar) {
	fmt.Println("FIRST sets:")
	for _, nt := range g.NonTerminals() {
		fmt.Printf("  FIRST(%s) = %s\n", nt.Name, g.FIRSTOf(nt).String())
	}
	fmt.Println()
}

func printFamily(g *grammar.Grammar, t *parse.Tables) {
	fmt.Println("Family:")
	for i, state := range t.Family.States {
		fmt.Printf("  I%d:\n", i)
		for _, item := range state.Items() {
			fmt.Printf("    %s\n", item.String(g))
		}
	}
	fmt.Println()
}
