// SPDX-License-Identifier: MIT
// Package: seqcheck/sequence
//
// params.go — data-driven generator dispatch.
//
// Purpose:
//   • Let manifests and the CLI describe a reference sequence as plain data
//     (kind + start + step + count) instead of a Go call.
//   • Keep a single mapping Kind → generator; every generator stays callable
//     on its own.

package sequence

import "strings"

// Kind names a reference generator.
type Kind string

const (
	// KindArithmetic selects Arithmetic(Start, Step, Count).
	KindArithmetic Kind = "arithmetic"
	// KindGeometric selects Geometric(Start, Step, Count); Step is the ratio.
	KindGeometric Kind = "geometric"
	// KindModulo selects ModuloAlternating(Start, Count).
	KindModulo Kind = "modulo"
	// KindFibonacci selects Fibonacci(Start, Step, Count); Step is the second seed.
	KindFibonacci Kind = "fibonacci"
	// KindSquares selects Squares(Start, Count).
	KindSquares Kind = "squares"
	// KindFactorial yields Factorial(Start+i) for i = 0..Count-1.
	KindFactorial Kind = "factorial"
)

// Method name used to prefix Generate errors.
const methodGenerate = "Generate"

// Params describes one reference sequence.
//
// Fields:
//   - Kind  — which generator to run.
//   - Start — first value (or first seed / first base / first n).
//   - Step  — difference, ratio, or second Fibonacci seed; ignored otherwise.
//   - Count — number of elements (≥ 0).
//
// Integer generators truncate Start and Step toward zero.
type Params struct {
	Kind  Kind    `yaml:"kind"`
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
	Count int     `yaml:"count"`
}

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindArithmetic, KindGeometric, KindModulo, KindFibonacci, KindSquares, KindFactorial}
}

// Generate runs the generator selected by p.Kind and returns its values as
// float64, the common representation of every generator output.
//
// Errors:
//   - ErrBadCount    — p.Count < 0.
//   - ErrUnknownKind — p.Kind is not one of Kinds().
func Generate(p Params) ([]float64, error) {
	if p.Count < 0 {
		return nil, sequenceErrorf(methodGenerate, ErrBadCount, "count=%d", p.Count)
	}

	start, step := int64(p.Start), int64(p.Step)
	switch Kind(strings.ToLower(string(p.Kind))) {
	case KindArithmetic:
		return toFloat(Arithmetic(start, step, p.Count)), nil
	case KindGeometric:
		return Geometric(p.Start, p.Step, p.Count), nil
	case KindModulo:
		return toFloat(ModuloAlternating(start, p.Count)), nil
	case KindFibonacci:
		return toFloat(Fibonacci(start, step, p.Count)), nil
	case KindSquares:
		return toFloat(Squares(start, p.Count)), nil
	case KindFactorial:
		out := make([]float64, p.Count)
		for i := range out {
			out[i] = float64(Factorial(int(start) + i))
		}

		return out, nil
	default:
		return nil, sequenceErrorf(methodGenerate, ErrUnknownKind, "kind=%q", p.Kind)
	}
}

// toFloat widens an integer sequence.
func toFloat(xs []int64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}
