package expr

import (
	"math"
	"testing"

	"github.com/huangsam/whatsmygrade/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluatePercentLiterals tests the percent literal fast path.
func TestEvaluatePercentLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "five percent", input: "5%", expected: 0.05},
		{name: "fifty percent", input: "50%", expected: 0.5},
		{name: "decimal percent", input: "72.5%", expected: 0.725},
		{name: "surrounding whitespace", input: "  80%  ", expected: 0.8},
		{name: "over hundred", input: "150%", expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.False(t, value.IsUnknown())
			assert.InDelta(t, tt.expected, value.Score(), 1e-9)
		})
	}
}

// TestEvaluateArithmetic tests plain arithmetic over numeric literals.
func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "bare number", input: "0.6", expected: 0.6},
		{name: "addition", input: "0.25 + 0.25", expected: 0.5},
		{name: "precedence", input: "1 - 2 * 0.25", expected: 0.5},
		{name: "grouping", input: "(1 - 2) * 0.25", expected: -0.25},
		{name: "division", input: "45 / 50", expected: 0.9},
		{name: "unary minus", input: "-0.5 + 1", expected: 0.5},
		{name: "percent builtin", input: "percent(85)", expected: 0.85},
		{name: "percent in larger expression", input: "percent(80) + percent(10)", expected: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value.Score(), 1e-9)
		})
	}
}

// TestEvaluateGradeParts tests the grade_parts builtin.
func TestEvaluateGradeParts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "single pair", input: "grade_parts((18, 20))", expected: 0.9},
		{name: "multiple pairs", input: "grade_parts((18, 20), (45, 50), (9, 10))", expected: 0.9},
		{name: "uneven pairs", input: "grade_parts((10, 20), (30, 30))", expected: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value.Score(), 1e-9)
		})
	}
}

// TestEvaluateGradePartsZeroDenominator verifies division by zero is not
// specially guarded and propagates as a non-finite number.
func TestEvaluateGradePartsZeroDenominator(t *testing.T) {
	value, err := Evaluate("grade_parts((10, 0))")
	require.NoError(t, err)
	assert.True(t, math.IsInf(value.Score(), 1))
}

// TestEvaluateGradeMultiple tests the grade_multiple builtin, including the
// use_best and drop_worst trimming behaviors.
func TestEvaluateGradeMultiple(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "plain average",
			input:    "grade_multiple([100, 90, 80, 70], 100)",
			expected: 0.85,
		},
		{
			name:     "use best two",
			input:    "grade_multiple([100, 90, 80, 70], 100, use_best=2)",
			expected: 0.95,
		},
		{
			name:     "drop worst one",
			input:    "grade_multiple([100, 90, 80, 70], 100, drop_worst=1)",
			expected: 270.0 / 300.0,
		},
		{
			name:     "best then drop",
			input:    "grade_multiple([100, 90, 80, 70], 100, use_best=3, drop_worst=1)",
			expected: 0.95,
		},
		{
			name:     "positional counts",
			input:    "grade_multiple([100, 90, 80, 70], 100, 2)",
			expected: 0.95,
		},
		{
			name:     "zero counts behave as unset",
			input:    "grade_multiple([100, 90], 100, use_best=0, drop_worst=0)",
			expected: 0.95,
		},
		{
			name:     "unsorted input is sorted descending first",
			input:    "grade_multiple([70, 100, 80, 90], 100, use_best=2)",
			expected: 0.95,
		},
		{
			name:     "empty remainder scores zero",
			input:    "grade_multiple([100, 90], 100, drop_worst=2)",
			expected: 0.0,
		},
		{
			name:     "empty list scores zero",
			input:    "grade_multiple([], 100)",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value.Score(), 1e-9)
		})
	}
}

// TestEvaluateUnknown tests the symbolic unknown marker.
func TestEvaluateUnknown(t *testing.T) {
	value, err := Evaluate("unknown")
	require.NoError(t, err)
	assert.True(t, value.IsUnknown())

	value, err = Evaluate("  unknown  ")
	require.NoError(t, err)
	assert.True(t, value.IsUnknown())
}

// TestEvaluateRejections verifies the allow-list: anything outside the
// restricted grammar fails with a UserError carrying the expression text.
func TestEvaluateRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "undefined identifier", input: "final_exam"},
		{name: "undefined function", input: "exec(1)"},
		{name: "attribute access", input: "grade_parts.__doc__"},
		{name: "import statement", input: "import os"},
		{name: "string literal", input: "\"hello\""},
		{name: "arithmetic on unknown", input: "unknown + 0.5"},
		{name: "unknown scaled", input: "unknown * 2"},
		{name: "bare list result", input: "[1, 2, 3]"},
		{name: "bare tuple result", input: "(1, 2)"},
		{name: "dangling operator", input: "1 +"},
		{name: "unbalanced parens", input: "percent(85"},
		{name: "empty expression", input: ""},
		{name: "malformed percent literal", input: "85%%"},
		{name: "keyword before positional", input: "grade_multiple(use_best=2, [100], 100)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)

			var userErr *schema.UserError
			require.ErrorAs(t, err, &userErr)
			assert.Contains(t, userErr.Message, "Invalid expression")
		})
	}
}
