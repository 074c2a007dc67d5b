// Package sequence computes reference numeric sequences from closed-form rules.
//
// 🚀 What is it for?
//
//	A pattern compiler emits sequences such as 1, 2, 4, 8… or 0, 1, 0, 1….
//	To check that output we need an independent, exact reference:
//	  • Arithmetic:        start + i·diff
//	  • Geometric:         start · ratio^i (fractional ratios allowed)
//	  • Modulo-alternating: (start + i) mod 2, i = 1..count
//	  • Fibonacci:         seeded by two values, each next = sum of previous two
//	  • Squares:           from², (from+1)², …
//	  • Factorial value and inclusive series sum as scalar helpers
//
// ✨ Guarantees:
//   - Pure functions: deterministic, no global state, no I/O.
//   - Total: generators never panic; a negative count yields an empty sequence.
//   - Params + Generate give a single data-driven entry point (used by manifests).
//   - Distance quantifies how far an observed sequence drifted from a reference
//     (two-row Dynamic Time Warping, O(min(N,M)) memory).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcheck/sequence"
//
//	evens := sequence.Arithmetic(2, 2, 5)        // [2 4 6 8 10]
//	pow2 := sequence.Geometric(1, 2, 4)          // [1 2 4 8]
//	ref, err := sequence.Generate(sequence.Params{
//	  Kind: sequence.KindGeometric, Start: 3, Step: 3, Count: 8,
//	})
//
// Performance:
//
//   - Generators: O(count) time and memory.
//   - Distance:   O(N·M) time, O(min(N,M)) memory.
package sequence
