package classify_test

import (
	"fmt"

	"github.com/katalvlaran/seqcheck/classify"
)

// ExampleIsFibonacci shows the seed rule and the minimum length.
func ExampleIsFibonacci() {
	fmt.Println(classify.IsFibonacci([]string{"1", "1", "2", "3", "5"}))
	fmt.Println(classify.IsFibonacci([]string{"1", "2", "4"}))
	fmt.Println(classify.IsFibonacci([]string{"1", "1"}))
	// Output:
	// true
	// false
	// false
}

// ExampleIsPerfectSquares includes the vacuous empty case.
func ExampleIsPerfectSquares() {
	fmt.Println(classify.IsPerfectSquares([]string{"1", "4", "9", "16"}))
	fmt.Println(classify.IsPerfectSquares([]string{}))
	// Output:
	// true
	// true
}

// ExampleDetect lists every family a compiler output satisfies.
func ExampleDetect() {
	fmt.Println(classify.Detect([]string{"1", "2", "4", "8", "16"}))
	// Output: [geometric monotonic]
}
