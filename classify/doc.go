// Package classify decides whether a sequence of numeric tokens belongs to a
// known pattern family.
//
// 🚀 What does it classify?
//
//	Compiler output arrives as text tokens ("1", "1", "2", "3", "5"…). Each
//	classifier parses the tokens once and applies a structural rule:
//	  • Fibonacci:            len ≥ 3, every term is the sum of the previous two
//	  • MonotonicIncreasing:  len ≥ 2, strictly increasing (the "factorial" label)
//	  • PerfectSquares:       every value is n² for some integer n (empty → true)
//	  • Arithmetic:           len ≥ 2, constant difference
//	  • Geometric:            len ≥ 2, constant ratio
//	  • ModuloAlternating:    len ≥ 2, values in {0,1} that alternate
//
// ✨ Guarantees:
//   - Fail-closed: a short sequence or a token that is not an integer yields
//     false. Classifiers never panic and never return errors.
//   - Exact: integers have no size limit and every check uses math/big, so
//     F(93), 21! or 10^40 classify like small values.
//   - Pure: inputs are never mutated; repeated calls give identical answers.
//   - Parse exposes the explicit parse step as a (Parsed, error) result for
//     callers that want the reason a sequence was rejected.
//
// Note on IsFactorial: it is an alias of IsMonotonicIncreasing and does NOT
// check factorial ratios; [1 2 3 4] is accepted. The behavior is kept as-is
// until a product decision says otherwise.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcheck/classify"
//
//	classify.IsFibonacci([]string{"1", "1", "2", "3", "5"}) // true
//	classify.Detect([]string{"1", "4", "9", "16"})          // [MonotonicIncreasing PerfectSquares]
//	classify.Matches(classify.Geometric, tokens)
package classify
