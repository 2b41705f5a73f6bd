package generator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionOperandsAndOperator(t *testing.T) {
	g := NewWithSeed(1)

	for i := 0; i < 1000; i++ {
		expr, answer := g.Question()

		// Single-digit operands and a single operator: always 3 characters.
		require.Len(t, expr, 3, "expr %q", expr)

		left, err := strconv.Atoi(expr[:1])
		require.NoError(t, err)
		right, err := strconv.Atoi(expr[2:])
		require.NoError(t, err)
		op := expr[1:2]

		assert.GreaterOrEqual(t, left, 1)
		assert.LessOrEqual(t, left, 9)
		assert.GreaterOrEqual(t, right, 1)
		assert.LessOrEqual(t, right, 9)
		assert.Contains(t, []string{"+", "*", "-"}, op)

		// Re-evaluating the rendered expression must give the stored answer.
		expected, err := Eval(left, op, right)
		require.NoError(t, err)
		assert.Equal(t, expected, answer, "expr %q", expr)
	}
}

func TestQuestionReproducibleUnderSeed(t *testing.T) {
	g1 := NewWithSeed(42)
	g2 := NewWithSeed(42)

	for i := 0; i < 50; i++ {
		expr1, ans1 := g1.Question()
		expr2, ans2 := g2.Question()
		require.Equal(t, expr1, expr2)
		require.Equal(t, ans1, ans2)
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		left  int
		op    string
		right int
		want  int
	}{
		{2, "+", 3, 5},
		{4, "*", 9, 36},
		{2, "-", 9, -7},
		{9, "-", 9, 0},
	}
	for _, tt := range tests {
		got, err := Eval(tt.left, tt.op, tt.right)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Eval(1, "/", 2)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
