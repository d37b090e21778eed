package parse

import (
	"testing"

	"github.com/dekarrin/lr1gen/internal/ictiobus/grammar"
	"github.com/dekarrin/lr1gen/internal/ictiobus/symbol"
	"github.com/stretchr/testify/assert"
)

func Test_Build_minimal(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Parse("S -> a", "S")
	assert.NoError(err)
	if g == nil {
		return
	}

	tables, err := Build(g)
	assert.NoError(err)
	if tables == nil {
		return
	}

	shiftAct := tables.Action(0, "a")
	assert.Equal(Shift, shiftAct.Kind)

	j := shiftAct.State
	reduceAct := tables.Action(j, symbol.Eof)
	assert.Equal(Reduce, reduceAct.Kind)
	assert.Equal("S -> a", g.Productions[reduceAct.Production].String())

	// after goto S from 0, the item set should offer Accept on eof.
	accState, ok := tables.Goto(0, "S")
	assert.True(ok)
	acceptAct := tables.Action(accState, symbol.Eof)
	assert.Equal(Accept, acceptAct.Kind)
}

func Test_Build_epsilonReduction(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Parse("S -> A b\nA -> E", "S")
	assert.NoError(err)
	if g == nil {
		return
	}

	tables, err := Build(g)
	assert.NoError(err)
	if tables == nil {
		return
	}

	act := tables.Action(0, "b")
	assert.Equal(Reduce, act.Kind)
	assert.Equal("A -> E", g.Productions[act.Production].String())
}

func Test_Build_classicExpressionGrammar_noConflicts(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Parse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id", "E")
	assert.NoError(err)
	if g == nil {
		return
	}

	tables, err := Build(g)
	assert.NoError(err)
	assert.NotNil(tables)
}

func Test_Build_ambiguousGrammar_detectsConflict(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Parse("S -> S S | a", "S")
	assert.NoError(err)
	if g == nil {
		return
	}

	_, err = Build(g)
	assert.Error(err)
	assert.Contains(err.Error(), "not LR(1)")
}

func Test_Action_String(t *testing.T) {
	testCases := []struct {
		name   string
		act    Action
		expect string
	}{
		{name: "shift", act: Action{Kind: Shift, State: 4}, expect: "s4"},
		{name: "reduce", act: Action{Kind: Reduce, Production: 2}, expect: "r2"},
		{name: "accept", act: Action{Kind: Accept}, expect: "acc"},
		{name: "recover", act: Action{Kind: Recover, RecoverTo: "+"}, expect: "rec(+)"},
		{name: "error", act: Action{Kind: Error}, expect: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.act.String())
		})
	}
}

func Test_ApplySync_onlyFillsErrorCells(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Parse("S -> a", "S")
	assert.NoError(err)
	if g == nil {
		return
	}

	tables, err := Build(g)
	assert.NoError(err)
	if tables == nil {
		return
	}

	before := tables.Action(0, "a")
	tables.ApplySync(0, []string{"a", "eof"})
	after := tables.Action(0, "a")

	assert.Equal(before, after, "a Shift cell must survive ApplySync untouched")
}
