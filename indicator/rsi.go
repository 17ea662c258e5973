package indicator

// RSI computes Wilder's smoothed Relative Strength Index over the given
// period. The result is always within [0,100].
//
// Algorithm:
//  1. Seed the average gain/loss with the simple average of the first
//     `period` consecutive differences.
//  2. For each later difference, smooth exponentially:
//     avg = (avg·(period−1) + current) / period, symmetric for losses.
//  3. RSI = 100 − 100/(1 + avgGain/avgLoss).
//
// Defined outcomes (not errors):
//   - len(series) <= period — no signal; returns the neutral 50.
//   - avgLoss == 0          — maximal strength; returns 100.
//
// Errors:
//   - ErrBadPeriod — period < 1.
//
// Complexity: O(n) time, O(1) space.
func RSI(series []float64, period int) (float64, error) {
	if period < 1 {
		return 0, ErrBadPeriod
	}
	if len(series) <= period {
		return rsiNeutral, nil // insufficient history: defined, not an error
	}

	// Seed averages from the first `period` differences.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := series[i] - series[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // accumulate as a positive magnitude
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing over the remaining samples.
	for i := period + 1; i < len(series); i++ {
		change := series[i] - series[i-1]
		var gain, loss float64
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return rsiMax, nil
	}
	rs := avgGain / avgLoss

	return 100.0 - 100.0/(1.0+rs), nil
}
