package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Symbol_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		a      Symbol
		b      any
		expect bool
	}{
		{name: "equal terminals", a: NewTerminal("a"), b: NewTerminal("a"), expect: true},
		{name: "equal non-terminals", a: NewNonTerminal("A"), b: NewNonTerminal("A"), expect: true},
		{name: "same name, different kind", a: NewTerminal("a"), b: NewNonTerminal("a"), expect: false},
		{name: "different name", a: NewTerminal("a"), b: NewTerminal("b"), expect: false},
		{name: "pointer to equal value", a: NewTerminal("a"), b: func() *Symbol { s := NewTerminal("a"); return &s }(), expect: true},
		{name: "nil pointer", a: NewTerminal("a"), b: (*Symbol)(nil), expect: false},
		{name: "wrong type", a: NewTerminal("a"), b: "a", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.a.Equal(tc.b))
		})
	}
}

func Test_Symbol_predicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewTerminal("a").IsTerminal())
	assert.False(NewTerminal("a").IsNonTerminal())
	assert.True(NewNonTerminal("A").IsNonTerminal())
	assert.False(NewNonTerminal("A").IsTerminal())
	assert.True(EofSymbol.IsEof())
	assert.False(NewTerminal("a").IsEof())
	assert.True(Epsilon.IsEpsilon())
	assert.False(NewTerminal("a").IsEpsilon())
}

func Test_Less(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Symbol
		expect bool
	}{
		{name: "terminal before non-terminal regardless of name", a: NewTerminal("z"), b: NewNonTerminal("A"), expect: true},
		{name: "non-terminal never before terminal", a: NewNonTerminal("A"), b: NewTerminal("z"), expect: false},
		{name: "terminals sorted by name", a: NewTerminal("a"), b: NewTerminal("b"), expect: true},
		{name: "non-terminals sorted by name", a: NewNonTerminal("A"), b: NewNonTerminal("B"), expect: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, Less(tc.a, tc.b))
		})
	}
}
