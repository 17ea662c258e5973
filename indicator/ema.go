package indicator

// EMA computes the exponential moving average of series with smoothing
// factor k = 2/(period+1). The first output is seeded with the SMA of the
// first window, so the result has the same length and alignment as
// SMA(series, period).
//
// Insufficient history (len(series) < period) returns (nil, nil), the
// same sentinel convention as SMA.
//
// Errors:
//   - ErrBadPeriod — period < 1.
//
// Complexity: O(n) time, O(n−period+1) space.
func EMA(series []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	if len(series) < period {
		return nil, nil
	}

	out := make([]float64, 0, len(series)-period+1)

	// Seed with the first window's simple average.
	var sum float64
	for i := 0; i < period; i++ {
		sum += series[i]
	}
	ema := sum / float64(period)
	out = append(out, ema)

	k := 2.0 / float64(period+1)
	for i := period; i < len(series); i++ {
		ema += (series[i] - ema) * k
		out = append(out, ema)
	}

	return out, nil
}
