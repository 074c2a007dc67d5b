package sequence_test

import (
	"testing"

	"github.com/katalvlaran/seqcheck/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate dispatches every kind and compares with the direct generator.
func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		params sequence.Params
		want   []float64
	}{
		{sequence.Params{Kind: sequence.KindArithmetic, Start: 2, Step: 2, Count: 5}, []float64{2, 4, 6, 8, 10}},
		{sequence.Params{Kind: sequence.KindGeometric, Start: 1, Step: 2, Count: 9}, []float64{1, 2, 4, 8, 16, 32, 64, 128, 256}},
		{sequence.Params{Kind: sequence.KindGeometric, Start: 8, Step: 0.5, Count: 3}, []float64{8, 4, 2}},
		{sequence.Params{Kind: sequence.KindModulo, Start: 1, Count: 4}, []float64{0, 1, 0, 1}},
		{sequence.Params{Kind: sequence.KindFibonacci, Start: 1, Step: 1, Count: 5}, []float64{1, 1, 2, 3, 5}},
		{sequence.Params{Kind: sequence.KindSquares, Start: 1, Count: 4}, []float64{1, 4, 9, 16}},
		{sequence.Params{Kind: sequence.KindFactorial, Start: 1, Count: 5}, []float64{1, 2, 6, 24, 120}},
		{sequence.Params{Kind: "Arithmetic", Start: 0, Step: 1, Count: 3}, []float64{0, 1, 2}},
		{sequence.Params{Kind: sequence.KindArithmetic, Count: 0}, []float64{}},
	}
	for _, tc := range tests {
		got, err := sequence.Generate(tc.params)
		require.NoError(t, err, "kind %q", tc.params.Kind)
		assert.Equal(t, tc.want, got, "kind %q", tc.params.Kind)
	}
}

// TestGenerate_Errors ensures invalid params surface the right sentinel.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := sequence.Generate(sequence.Params{Kind: "triangular", Count: 3})
	assert.ErrorIs(t, err, sequence.ErrUnknownKind)
	assert.Contains(t, err.Error(), "Generate:")

	_, err = sequence.Generate(sequence.Params{Kind: sequence.KindArithmetic, Count: -1})
	assert.ErrorIs(t, err, sequence.ErrBadCount)
}

// TestKinds verifies every listed kind is accepted by Generate.
func TestKinds(t *testing.T) {
	t.Parallel()

	for _, k := range sequence.Kinds() {
		_, err := sequence.Generate(sequence.Params{Kind: k, Start: 1, Step: 1, Count: 2})
		assert.NoError(t, err, "kind %q", k)
	}
}
