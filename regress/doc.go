// Package regress fits an ordinary least squares line to a price series
// indexed 0..n−1 and predicts the next value one step beyond the series.
//
// The fit is the single-predictor closed form (delegated to
// gonum.org/v1/gonum/stat.LinearRegression — no matrix inversion is
// involved for one regressor), and the slope magnitude is classified
// against a fixed threshold into a qualitative trend label.
//
// Contracts:
//   - n >= 2 is required (a slope is undefined otherwise): hard error
//     ErrInsufficientData.
//   - On a perfectly linear series [a, a+d, a+2d, …] the prediction is
//     exactly a + n·d (within floating-point tolerance).
//
// Complexity: O(n) time, O(n) space for the index vector.
package regress
