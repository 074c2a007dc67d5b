// SPDX-License-Identifier: MIT
// Package: seqcheck/classify
//
// classifiers.go — fail-closed family predicates over token sequences.
//
// Contract (every public Is* function):
//   1. Minimum-length precondition → false if unmet.
//   2. Parse every token (Parse) → false on the first failure.
//   3. Structural predicate over the parsed values.
//   Never panics, never mutates its input, always returns a bool.

package classify

import "math/big"

// Minimum lengths per family; shorter sequences are rejected, not errors.
const (
	MinFibonacciLen  = 3 // two free seeds + at least one checked term
	MinMonotonicLen  = 2
	MinArithmeticLen = 2
	MinGeometricLen  = 2
	MinModuloLen     = 2
	MinSquaresLen    = 0 // vacuously true for an empty sequence
)

// Classifier is the common shape of every Is* function.
type Classifier func(tokens []string) bool

// rule is a family's minimum length plus its predicate over parsed values.
type rule struct {
	minLen int
	check  func(Parsed) bool
}

// rules is indexed by Family.
var rules = [...]rule{
	Arithmetic:          {MinArithmeticLen, arithmetic},
	Geometric:           {MinGeometricLen, geometric},
	ModuloAlternating:   {MinModuloLen, moduloAlternating},
	Fibonacci:           {MinFibonacciLen, fibonacci},
	MonotonicIncreasing: {MinMonotonicLen, monotonicIncreasing},
	PerfectSquares:      {MinSquaresLen, perfectSquares},
}

// classifyAs runs the three-step contract for one family.
func classifyAs(f Family, tokens []string) bool {
	r := rules[f]
	if len(tokens) < r.minLen {
		return false
	}
	nums, err := Parse(tokens)
	if err != nil {
		return false
	}

	return r.check(nums)
}

// IsFibonacci reports whether tokens[i] == tokens[i-1] + tokens[i-2] for every
// i ≥ 2. The first two elements are unconstrained seeds; len ≥ 3 is required.
func IsFibonacci(tokens []string) bool { return classifyAs(Fibonacci, tokens) }

// IsMonotonicIncreasing reports whether the values strictly increase; len ≥ 2.
func IsMonotonicIncreasing(tokens []string) bool { return classifyAs(MonotonicIncreasing, tokens) }

// IsFactorial is the historical name of IsMonotonicIncreasing. It checks only
// strict growth, not factorial ratios, so [1 2 3 4] is accepted.
func IsFactorial(tokens []string) bool { return IsMonotonicIncreasing(tokens) }

// IsPerfectSquares reports whether every value is the square of an integer.
// Negative values are rejected. An empty sequence is vacuously true.
func IsPerfectSquares(tokens []string) bool { return classifyAs(PerfectSquares, tokens) }

// IsArithmetic reports whether neighbors differ by a constant; len ≥ 2.
func IsArithmetic(tokens []string) bool { return classifyAs(Arithmetic, tokens) }

// IsGeometric reports whether neighbors share a constant ratio; len ≥ 2.
// A leading zero only admits the all-zero sequence.
func IsGeometric(tokens []string) bool { return classifyAs(Geometric, tokens) }

// IsModuloAlternating reports whether every value is 0 or 1 and neighbors
// differ; len ≥ 2.
func IsModuloAlternating(tokens []string) bool { return classifyAs(ModuloAlternating, tokens) }

// --- predicates over parsed values -------------------------------------------
//
// All arithmetic is exact (math/big): no overflow, no float rounding.

func fibonacci(p Parsed) bool {
	var sum big.Int
	for i := 2; i < len(p); i++ {
		if sum.Add(p[i-1], p[i-2]).Cmp(p[i]) != 0 {
			return false
		}
	}

	return true
}

func monotonicIncreasing(p Parsed) bool {
	for i := 1; i < len(p); i++ {
		if p[i].Cmp(p[i-1]) <= 0 {
			return false
		}
	}

	return true
}

func perfectSquares(p Parsed) bool {
	var root, sq big.Int
	for _, n := range p {
		if n.Sign() < 0 {
			return false
		}
		root.Sqrt(n) // ⌊√n⌋, exact
		if sq.Mul(&root, &root).Cmp(n) != 0 {
			return false
		}
	}

	return true
}

func arithmetic(p Parsed) bool {
	var d, next big.Int
	d.Sub(p[1], p[0])
	for i := 2; i < len(p); i++ {
		if next.Sub(p[i], p[i-1]).Cmp(&d) != 0 {
			return false
		}
	}

	return true
}

func geometric(p Parsed) bool {
	if p[0].Sign() == 0 {
		for _, v := range p {
			if v.Sign() != 0 {
				return false
			}
		}

		return true
	}
	// p[i]/p[i-1] == p[1]/p[0]  ⇔  p[i]·p[0] == p[i-1]·p[1]  (p[0] ≠ 0)
	var left, right big.Int
	for i := 2; i < len(p); i++ {
		left.Mul(p[i], p[0])
		right.Mul(p[i-1], p[1])
		if left.Cmp(&right) != 0 {
			return false
		}
	}

	return true
}

func moduloAlternating(p Parsed) bool {
	for i, v := range p {
		if !v.IsInt64() || (v.Int64() != 0 && v.Int64() != 1) {
			return false
		}
		if i > 0 && v.Cmp(p[i-1]) == 0 {
			return false
		}
	}

	return true
}
