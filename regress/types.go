package regress

import "errors"

// ErrInsufficientData is returned when fewer than two samples are given;
// a line cannot be fit through less than two points.
var ErrInsufficientData = errors.New("regress: need at least 2 samples to fit a line")

// TrendThreshold is the fixed |slope| cutoff between the two labels.
const TrendThreshold = 0.1

// TrendLabel is the qualitative strength classification of the fit.
type TrendLabel string

const (
	// TrendHigh marks |slope| > TrendThreshold.
	TrendHigh TrendLabel = "HIGH_TREND"
	// TrendLow marks |slope| <= TrendThreshold.
	TrendLow TrendLabel = "LOW_TREND"
)

// Prediction is the outcome of a linear fit.
type Prediction struct {
	// Next is the fitted value evaluated at index n, one step beyond
	// the last sample.
	Next float64

	// Slope and Intercept describe the fitted line value = Slope·i + Intercept.
	Slope     float64
	Intercept float64

	// Trend classifies |Slope| against TrendThreshold.
	Trend TrendLabel
}
