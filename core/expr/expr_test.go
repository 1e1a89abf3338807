package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLex tests tokenization of well-formed input.
func TestLex(t *testing.T) {
	tokens, err := lex("grade_multiple([100, 90.5], 100, use_best=2)")
	require.NoError(t, err)

	var texts []string
	for _, tok := range tokens[:len(tokens)-1] { // drop EOF
		texts = append(texts, tok.text)
	}
	assert.Equal(t, []string{
		"grade_multiple", "(", "[", "100", ",", "90.5", "]", ",", "100", ",", "use_best", "=", "2", ")",
	}, texts)
}

// TestLexErrors tests rejection of characters outside the grammar.
func TestLexErrors(t *testing.T) {
	inputs := []string{"a & b", "1..2", "x.y", "`cmd`", "a;b"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := lex(input)
			if err == nil {
				// Characters may lex fine but must then fail to parse.
				_, err = parse(input)
			}
			assert.Error(t, err)
		})
	}
}

// TestParseGroupingVersusTuple verifies that "(x)" groups while "(x, y)"
// and "(x,)" build tuples.
func TestParseGroupingVersusTuple(t *testing.T) {
	n, err := parse("(5)")
	require.NoError(t, err)
	assert.IsType(t, numberNode{}, n)

	n, err = parse("(5, 6)")
	require.NoError(t, err)
	require.IsType(t, tupleNode{}, n)
	assert.Len(t, n.(tupleNode).items, 2)

	n, err = parse("(5,)")
	require.NoError(t, err)
	require.IsType(t, tupleNode{}, n)
	assert.Len(t, n.(tupleNode).items, 1)
}

// TestParsePrecedence verifies that multiplication binds tighter than
// addition and that evaluation respects grouping.
func TestParsePrecedence(t *testing.T) {
	n, err := parse("1 + 2 * 3")
	require.NoError(t, err)

	root, ok := n.(binaryNode)
	require.True(t, ok)
	assert.Equal(t, byte('+'), root.op)

	right, ok := root.right.(binaryNode)
	require.True(t, ok)
	assert.Equal(t, byte('*'), right.op)
}

// TestParseCallArguments verifies positional/keyword argument parsing.
func TestParseCallArguments(t *testing.T) {
	n, err := parse("grade_multiple([1], 10, use_best=2, drop_worst=1)")
	require.NoError(t, err)

	call, ok := n.(callNode)
	require.True(t, ok)
	assert.Equal(t, "grade_multiple", call.fn)
	assert.Len(t, call.args, 2)
	assert.Equal(t, []string{"use_best", "drop_worst"}, call.kwNames)

	_, err = parse("grade_multiple([1], 10, use_best=2, use_best=3)")
	assert.Error(t, err, "duplicate keyword argument")
}

// TestParseTrailingInput verifies the whole input must be consumed.
func TestParseTrailingInput(t *testing.T) {
	_, err := parse("1 2")
	assert.Error(t, err)

	_, err = parse("percent(85))")
	assert.Error(t, err)
}
