package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs.
//
// Errors:
//   - ErrEmptyInput — len(xs) == 0 (the mean would divide by zero).
//
// Complexity: O(n) time, O(1) space.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}

	return stat.Mean(xs, nil), nil
}

// PopStdDev returns the population standard deviation of xs:
// the square root of the mean squared deviation from Mean(xs).
// Note the divisor is n, not n−1; window indicators depend on this form.
//
// Errors:
//   - ErrEmptyInput — len(xs) == 0.
//
// Complexity: O(n) time, O(1) space.
func PopStdDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}

	return stat.PopStdDev(xs, nil), nil
}

// Percentile returns the p-th percentile of xs (p in [0,1]) using linear
// interpolation on the fractional rank pos = (n−1)·p over an ascending
// sorted copy. xs itself is never reordered.
//
// Boundary identities: Percentile(xs, 0) == min(xs) and
// Percentile(xs, 1) == max(xs) for any non-empty xs.
//
// Errors:
//   - ErrEmptyInput        — len(xs) == 0.
//   - ErrInvalidPercentile — p < 0 or p > 1.
//
// Complexity: O(n log n) time, O(n) space (sorted copy).
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, ErrInvalidPercentile
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	// Fractional rank between two bracketing sorted values.
	pos := float64(len(sorted)-1) * p
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower], nil
	}
	frac := pos - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// Median returns the 50th percentile of xs.
//
// Errors: ErrEmptyInput — len(xs) == 0.
func Median(xs []float64) (float64, error) {
	return Percentile(xs, 0.5)
}
