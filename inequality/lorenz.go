package inequality

import "sort"

// Point is one Lorenz curve vertex: after including the poorest
// Population share of holders, they jointly own the Wealth share.
// Both coordinates lie in [0,1].
type Point struct {
	Population float64
	Wealth     float64
}

// Lorenz computes the Lorenz curve of the wealth distribution: n+1
// points from (0,0) to (1,1), walking holders in ascending wealth order.
// The Gini coefficient equals twice the area between this curve and the
// equality diagonal.
//
// Errors:
//   - ErrNegativeWealth — any entry < 0.
//   - ErrZeroTotal      — empty input or Σwᵢ == 0 (shares are undefined).
//
// Complexity: O(n log n) time, O(n) space.
func Lorenz(wealth []float64) ([]Point, error) {
	for _, w := range wealth {
		if w < 0 {
			return nil, ErrNegativeWealth
		}
	}

	n := len(wealth)
	if n == 0 {
		return nil, ErrZeroTotal
	}

	sorted := make([]float64, n)
	copy(sorted, wealth)
	sort.Float64s(sorted)

	var total float64
	for _, w := range sorted {
		total += w
	}
	if total == 0 {
		return nil, ErrZeroTotal
	}

	out := make([]Point, n+1) // out[0] is the origin (0,0)
	var cum float64
	for i, w := range sorted {
		cum += w
		out[i+1] = Point{
			Population: float64(i+1) / float64(n),
			Wealth:     cum / total,
		}
	}
	// Pin the endpoint exactly despite accumulation rounding.
	out[n].Wealth = 1

	return out, nil
}
