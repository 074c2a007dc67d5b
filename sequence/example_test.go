package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/seqcheck/sequence"
)

// ExampleArithmetic prints the first five odd numbers.
func ExampleArithmetic() {
	fmt.Println(sequence.Arithmetic(1, 2, 5))
	// Output: [1 3 5 7 9]
}

// ExampleModuloAlternating shows the 1-indexed offset: start=1 begins at (1+1) mod 2.
func ExampleModuloAlternating() {
	fmt.Println(sequence.ModuloAlternating(1, 4))
	// Output: [0 1 0 1]
}

// ExampleGenerate builds the tripling reference used by the demo harness.
func ExampleGenerate() {
	ref, err := sequence.Generate(sequence.Params{Kind: sequence.KindGeometric, Start: 3, Step: 3, Count: 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ref)
	// Output: [3 9 27 81 243]
}

// ExampleSeriesSum contrasts a regular and an empty range.
func ExampleSeriesSum() {
	fmt.Println(sequence.SeriesSum(1, 5), sequence.SeriesSum(5, 1))
	// Output: 15 0
}
