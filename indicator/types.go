package indicator

import "errors"

// Conventional defaults for the classic parameterizations.
const (
	// DefaultRSIPeriod is Wilder's original 14-sample lookback.
	DefaultRSIPeriod = 14
	// DefaultBollingerPeriod is the standard 20-sample window.
	DefaultBollingerPeriod = 20
	// DefaultBollingerMult is the standard ±2σ band width.
	DefaultBollingerMult = 2.0

	// rsiNeutral is the defined "no signal" value for short histories.
	rsiNeutral = 50.0
	// rsiMax is the defined value when the average loss is exactly zero.
	rsiMax = 100.0
)

var (
	// ErrBadPeriod indicates a window length below 1.
	ErrBadPeriod = errors.New("indicator: period must be at least 1")
	// ErrBadMultiplier indicates a non-positive Bollinger band width.
	ErrBadMultiplier = errors.New("indicator: std-dev multiplier must be positive")
)

// Band is one Bollinger Bands position.
// Middle is the window SMA; Upper/Lower are Middle ± mult·σ where σ is
// the population standard deviation of the same window.
type Band struct {
	Middle float64
	Upper  float64
	Lower  float64
}
