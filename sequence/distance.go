package sequence

import "math"

const methodDistance = "Distance"

// Distance returns the Dynamic Time Warping distance between a and b using
// absolute difference as the local cost and no window constraint.
//
// Identical sequences have distance 0; a sequence that repeats or skips a
// reference value costs only the value gaps it introduces, which makes the
// result a useful "how far off" figure for mismatching compiler output.
//
// Only two DP rows are kept, indexed by the shorter input.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(min(n,m))
//
// Errors:
//   - ErrEmptySequence — if either input is empty.
func Distance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, sequenceErrorf(methodDistance, ErrEmptySequence, "len(a)=%d len(b)=%d", len(a), len(b))
	}
	// Keep the shorter sequence along the row so memory is O(min(n,m)).
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
