package inequality

import (
	"errors"
	"sort"
)

var (
	// ErrNegativeWealth indicates a wealth entry below zero; the
	// coefficient is only defined over non-negative holdings.
	ErrNegativeWealth = errors.New("inequality: wealth entries must be non-negative")
	// ErrZeroTotal indicates an all-zero population where share curves
	// are undefined (Gini itself defines this case as 0 instead).
	ErrZeroTotal = errors.New("inequality: total wealth must be positive")
)

// Gini computes the Gini coefficient of the given wealth distribution
// using the sorted closed form with 1-based ranks i over ascending w:
//
//	G = (n + 1 − 2·Σ((n+1−i)·wᵢ)/Σwᵢ) / n
//
// Defined outcomes (not errors):
//   - n < 2        — no inequality measurable; returns 0.
//   - Σwᵢ == 0     — all-zero population; returns 0 (never NaN).
//
// Errors:
//   - ErrNegativeWealth — any entry < 0.
//
// The result lies in [0,1]; maximal concentration over n holders yields
// (n−1)/n. The input slice is not modified.
//
// Complexity: O(n log n) time, O(n) space.
func Gini(wealth []float64) (float64, error) {
	for _, w := range wealth {
		if w < 0 {
			return 0, ErrNegativeWealth
		}
	}

	n := len(wealth)
	if n < 2 {
		return 0, nil
	}

	sorted := make([]float64, n)
	copy(sorted, wealth)
	sort.Float64s(sorted)

	var total, weighted float64
	for i, w := range sorted {
		total += w
		// 1-based rank: position i holds rank i+1, weight n+1-(i+1) = n-i.
		weighted += float64(n-i) * w
	}
	if total == 0 {
		return 0, nil // zero-weight-sum guard: defined as perfect equality
	}

	nf := float64(n)

	return (nf + 1 - 2*weighted/total) / nf, nil
}
