package classify_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/seqcheck/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFamily_RoundTrip checks String/ParseFamily/Text marshaling for every family.
func TestFamily_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range classify.Families() {
		got, err := classify.ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)

		text, err := f.MarshalText()
		require.NoError(t, err)
		var back classify.Family
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, f, back)
	}
}

// TestParseFamily_Aliases accepts the historical and spelled-out labels.
func TestParseFamily_Aliases(t *testing.T) {
	t.Parallel()

	f, err := classify.ParseFamily("Factorial")
	require.NoError(t, err)
	assert.Equal(t, classify.MonotonicIncreasing, f)

	f, err = classify.ParseFamily(" perfect-squares ")
	require.NoError(t, err)
	assert.Equal(t, classify.PerfectSquares, f)

	_, err = classify.ParseFamily("triangular")
	assert.ErrorIs(t, err, classify.ErrUnknownFamily)

	assert.Equal(t, "Family(42)", classify.Family(42).String())
	_, err = classify.Family(-1).MarshalText()
	assert.ErrorIs(t, err, classify.ErrUnknownFamily)
}

// TestDetect lists every satisfied family in enumeration order.
func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []classify.Family
	}{
		{"squares", []string{"1", "4", "9", "16"}, []classify.Family{classify.MonotonicIncreasing, classify.PerfectSquares}},
		{"fibonacci", []string{"1", "1", "2", "3", "5"}, []classify.Family{classify.Fibonacci}},
		{"powers of two", []string{"1", "2", "4", "8"}, []classify.Family{classify.Geometric, classify.MonotonicIncreasing}},
		{"alternating", []string{"0", "1", "0", "1"}, []classify.Family{classify.ModuloAlternating, classify.PerfectSquares}},
		{"odd numbers", []string{"1", "3", "5"}, []classify.Family{classify.Arithmetic, classify.MonotonicIncreasing}},
		{"unparsable", []string{"a", "b", "c"}, nil},
		{"nothing", []string{"3", "1", "2"}, nil},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, classify.Detect(tc.in)); diff != "" {
			t.Errorf("%s: Detect mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

// TestMatchesAndFor agree with the individual classifiers.
func TestMatchesAndFor(t *testing.T) {
	t.Parallel()

	in := []string{"1", "1", "2", "3", "5"}
	assert.True(t, classify.Matches(classify.Fibonacci, in))
	assert.False(t, classify.Matches(classify.PerfectSquares, in))
	assert.False(t, classify.Matches(classify.Family(99), in), "unknown family never matches")

	fn := classify.For(classify.Fibonacci)
	require.NotNil(t, fn)
	assert.True(t, fn(in))
	assert.Nil(t, classify.For(classify.Family(-1)))
}
