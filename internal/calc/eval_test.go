package calc

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2×3", 6},
		{"8÷2", 4},
		{"10−4", 6},
		{"7%3", 1},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"√9", 3},
		{"√(16)+1", 5},
		{"√2^2", 2},
		{".5+5.", 5.5},
		{"--3", 3},
		{"sin(0)", 0},
		{"cos0", 1},
		{"1 + 2", 3},
		{"1/(1/4)", 4},
		{"1e+21+1", 1e21},
		{"1e-7*10", 1e-6},
		{"2.5E3", 2500},
		{"-1e2", -100},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	inputs := []string{
		"",
		"5+",
		"(1+2",
		"1+2)",
		"()",
		"1/0",
		"5%0",
		"√-4",
		"1..2",
		".",
		"abc",
		"2$3",
		"Error",
		"3 4",
		"1e",
		"1e+",
		"1e400",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEvaluation), "expected ErrEvaluation, got %v", err)

			var evalErr *EvaluationError
			assert.True(t, errors.As(err, &evalErr))
		})
	}
}

func TestSubstituteReplacesEveryGlyph(t *testing.T) {
	assert.Equal(t, "1*2*3/4-5-sqrt9", Substitute("1×2×3÷4−5−√9"))
}

func TestApplyUnary(t *testing.T) {
	v, err := ApplyUnary("sin", "0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = ApplyUnary("cos", "0")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = ApplyUnary("tan", "−0.5")
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(-0.5), v, 1e-15)

	v, err = ApplyUnary("sin", "1e-7")
	require.NoError(t, err)
	assert.InDelta(t, 1e-7, v, 1e-20)

	for _, tc := range []struct{ name, input string }{
		{"sin", ""},
		{"sin", "1+2"},
		{"cos", "Error"},
		{"log", "10"},
		{"tan", "(1)"},
	} {
		_, err := ApplyUnary(tc.name, tc.input)
		assert.ErrorIs(t, err, ErrEvaluation, "%s(%q)", tc.name, tc.input)
	}
}

// A result left in the buffer must stay usable as an operand.
func TestFormattedResultsReadBack(t *testing.T) {
	for _, input := range []string{"10^21", "10^-7", "2^80", "1/3"} {
		t.Run(input, func(t *testing.T) {
			v, err := Evaluate(input)
			require.NoError(t, err)

			text := FormatResult(v)
			again, err := Evaluate(text + "+0")
			require.NoError(t, err, "re-evaluating %q", text)
			assert.Equal(t, v, again)

			_, err = ApplyUnary("cos", text)
			assert.NoError(t, err, "cos(%s)", text)
		})
	}
}

func TestEvaluateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication binds tighter than addition", prop.ForAll(
		func(a, b, c int) bool {
			got, err := Evaluate(fmt.Sprintf("%d+%d×%d", a, b, c))
			return err == nil && got == float64(a+b*c)
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
	))

	properties.Property("division matches float division", prop.ForAll(
		func(a, b int) bool {
			got, err := Evaluate(fmt.Sprintf("%d÷%d", a, b))
			return err == nil && got == float64(a)/float64(b)
		},
		gen.IntRange(-10000, 10000),
		gen.IntRange(1, 500),
	))

	properties.Property("parentheses around a whole expression are neutral", prop.ForAll(
		func(a, b int) bool {
			plain, err1 := Evaluate(fmt.Sprintf("%d−%d", a, b))
			wrapped, err2 := Evaluate(fmt.Sprintf("(%d−%d)", a, b))
			return err1 == nil && err2 == nil && plain == wrapped
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
	))

	properties.Property("a trailing operator never evaluates", prop.ForAll(
		func(a int, op string) bool {
			_, err := Evaluate(fmt.Sprintf("%d%s", a, op))
			return errors.Is(err, ErrEvaluation)
		},
		gen.IntRange(0, 1000),
		gen.OneConstOf("+", "−", "×", "÷", "%", "^"),
	))

	properties.TestingRun(t)
}
