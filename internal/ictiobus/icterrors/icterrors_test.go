package icterrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewConflictError_nilWhenEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(NewConflictError(nil))
}

func Test_ConflictError_Error(t *testing.T) {
	assert := assert.New(t)

	err := NewConflictError([]Conflict{
		{State: 3, Terminal: "+", First: "shift 4", Second: "reduce 2"},
	})
	if !assert.Error(err) {
		return
	}
	assert.Contains(err.Error(), "1 conflict")
	assert.Contains(err.Error(), `state 3, terminal "+": shift 4 vs reduce 2`)
}

func Test_ConflictError_Error_plural(t *testing.T) {
	assert := assert.New(t)

	err := NewConflictError([]Conflict{
		{State: 0, Terminal: "a", First: "s1", Second: "r1"},
		{State: 1, Terminal: "b", First: "s2", Second: "r2"},
	})
	if !assert.Error(err) {
		return
	}
	assert.Contains(err.Error(), "2 conflicts")
}

func Test_errorMessages(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect string
	}{
		{
			name:   "grammar syntax",
			err:    NewGrammarSyntaxError(4, "S a", "missing '->'"),
			expect: `line 4: missing '->': "S a"`,
		},
		{
			name:   "undefined non-terminal",
			err:    NewUndefinedNonTerminal(2, "Trem"),
			expect: `line 2: non-terminal "Trem" is used but never defined`,
		},
		{
			name:   "unknown start symbol",
			err:    NewUnknownStartSymbol("T"),
			expect: `start symbol "T" is not a defined non-terminal`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.err.Error())
		})
	}
}
