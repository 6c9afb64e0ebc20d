package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"d%", "d100"},
		{"3d%kh1", "3d100k1"},
		{"2d%kl1", "2d100q1"},
		{"4a9k8", "4a9k8"},
		{"d20", "d20"},
		{"3d6+2", "3d6+2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestEvaluatePercentile(t *testing.T) {
	e := NewDiceScriptEvaluator()

	for i := 0; i < 20; i++ {
		got, err := e.Evaluate("d%")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Total, 1)
		assert.LessOrEqual(t, got.Total, 100)
		assert.NotEmpty(t, got.Dice)
	}
}

func TestEvaluateArithmetic(t *testing.T) {
	e := NewDiceScriptEvaluator()

	got, err := e.Evaluate("1d1+5")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Total)
}

func TestEvaluateRejectsGarbage(t *testing.T) {
	e := NewDiceScriptEvaluator()

	_, err := e.Evaluate("")
	assert.Error(t, err)

	_, err = e.Evaluate("不是骰子表达式")
	assert.Error(t, err)
}
