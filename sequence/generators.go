// SPDX-License-Identifier: MIT
// Package: seqcheck/sequence
//
// generators.go — closed-form reference generators.
//
// Contract:
//   • Every generator returns a freshly allocated slice of exactly count
//     elements (empty, non-nil, when count ≤ 0). Never panics.
//   • Integer generators use int64; Geometric uses float64 so that fractional
//     ratios and fast growth stay representable without silent truncation.
//   • O(count) time and memory.

package sequence

import (
	"math"
	"math/big"
)

// modBase is the divisor of the modulo-alternating pattern.
const modBase = 2

// Arithmetic returns start + i*diff for i = 0..count-1.
//
// Example: Arithmetic(1, 2, 5) → [1 3 5 7 9].
func Arithmetic(start, diff int64, count int) []int64 {
	out := make([]int64, clampCount(count))
	for i := range out {
		out[i] = start + int64(i)*diff
	}

	return out
}

// Geometric returns start * ratio^i for i = 0..count-1.
// ratio may be fractional (e.g. 0.5 halves each step).
//
// Example: Geometric(1, 2, 4) → [1 2 4 8].
func Geometric(start, ratio float64, count int) []float64 {
	out := make([]float64, clampCount(count))
	for i := range out {
		// math.Pow keeps every term exact for integral ratios within 2^53.
		out[i] = start * math.Pow(ratio, float64(i))
	}

	return out
}

// ModuloAlternating returns (start + i) mod 2 for i = 1..count.
// The offset is 1-indexed, so the first element is (start+1) mod 2.
// Results are always in {0, 1}, also for negative start values.
//
// Example: ModuloAlternating(1, 4) → [0 1 0 1].
func ModuloAlternating(start int64, count int) []int64 {
	out := make([]int64, clampCount(count))
	for i := range out {
		v := (start + int64(i) + 1) % modBase
		if v < 0 {
			v += modBase // floor modulo: -1 mod 2 == 1
		}
		out[i] = v
	}

	return out
}

// Fibonacci returns count terms seeded with a and b, each following term being
// the sum of the two before it.
//
// Example: Fibonacci(1, 1, 6) → [1 1 2 3 5 8].
func Fibonacci(a, b int64, count int) []int64 {
	out := make([]int64, clampCount(count))
	for i := range out {
		out[i] = a
		a, b = b, a+b
	}

	return out
}

// Squares returns from², (from+1)², … with count terms.
func Squares(from int64, count int) []int64 {
	out := make([]int64, clampCount(count))
	for i := range out {
		v := from + int64(i)
		out[i] = v * v
	}

	return out
}

// Factorial returns n! computed iteratively; 1 for n ≤ 1.
// Values beyond 20! overflow int64; use FactorialBig for those.
func Factorial(n int) int64 {
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}

	return result
}

// FactorialBig returns n! as an exact big integer; 1 for n ≤ 1.
func FactorialBig(n int) *big.Int {
	result := big.NewInt(1)
	if n <= 1 {
		return result
	}

	return result.MulRange(2, int64(n))
}

// SeriesSum returns the sum of all integers in [start, end].
// An empty range (start > end) sums to 0.
// Computed in closed form: n·(start+end)/2 with n = end-start+1.
func SeriesSum(start, end int64) int64 {
	if start > end {
		return 0
	}
	n := end - start + 1
	// One of n and (start+end) is always even; halve that one first.
	if n%2 == 0 {
		return (n / 2) * (start + end)
	}

	return n * ((start + end) / 2)
}

// clampCount maps negative counts to zero.
func clampCount(count int) int {
	if count < 0 {
		return 0
	}

	return count
}
