package regress

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// LinearPredict fits value = slope·index + intercept over indices 0..n−1
// by ordinary least squares and returns the fitted value at index n
// together with the trend classification.
//
// Errors:
//   - ErrInsufficientData — len(series) < 2.
//
// Complexity: O(n) time, O(n) space.
func LinearPredict(series []float64) (Prediction, error) {
	n := len(series)
	if n < 2 {
		return Prediction{}, ErrInsufficientData
	}

	// The predictor is just the sample index.
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, series, nil, false)

	trend := TrendLow
	if math.Abs(slope) > TrendThreshold {
		trend = TrendHigh
	}

	return Prediction{
		Next:      intercept + slope*float64(n),
		Slope:     slope,
		Intercept: intercept,
		Trend:     trend,
	}, nil
}
