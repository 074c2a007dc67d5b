package harness

import (
	"github.com/katalvlaran/seqcheck/classify"
	"github.com/katalvlaran/seqcheck/sequence"
)

const doublingSource = `
pattern doubling(val) {
    if (n == 1) {
        print val;
    } else {
        result = val * 2;
        print result;
    }
}
generate doubling(1): 9;
`

const evensSource = `
pattern evens(start) {
    if (n == 1) {
        result = start;
        print result;
    } else {
        result = start + 2;
        print result;
    }
}
generate evens(2): 10;
`

const triplingSource = `
pattern tripling(val) {
    if (n == 1) {
        print val;
    } else {
        result = val * 3;
        print result;
    }
}
generate tripling(3): 8;
`

// DemoCases returns the built-in demonstration patterns: doubling (1, 2, 4, 8…),
// even numbers (2, 4, 6, 8…) and tripling (3, 9, 27, 81…), each checked
// against its family and an exact reference sequence.
func DemoCases() []Case {
	geometric, arithmetic := classify.Geometric, classify.Arithmetic

	return []Case{
		{
			Name:      "doubling",
			Title:     "Doubling Sequence (1, 2, 4, 8...)",
			Source:    doublingSource,
			Family:    &geometric,
			Reference: &sequence.Params{Kind: sequence.KindGeometric, Start: 1, Step: 2, Count: 9},
		},
		{
			Name:      "evens",
			Title:     "Even Numbers (2, 4, 6, 8...)",
			Source:    evensSource,
			Family:    &arithmetic,
			Reference: &sequence.Params{Kind: sequence.KindArithmetic, Start: 2, Step: 2, Count: 10},
		},
		{
			Name:      "tripling",
			Title:     "Tripling Sequence (3, 9, 27, 81...)",
			Source:    triplingSource,
			Family:    &geometric,
			Reference: &sequence.Params{Kind: sequence.KindGeometric, Start: 3, Step: 3, Count: 8},
		},
	}
}
