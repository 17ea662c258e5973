package indicator

import "math"

// BollingerBands computes the classic SMA ± mult·σ envelope. For every
// SMA window position the deviation is the population standard deviation
// of that window alone — never of the whole series — so each Band is a
// self-contained description of its window.
//
// Insufficient history (len(series) < period) returns (nil, nil), the
// same sentinel convention as SMA.
//
// Errors:
//   - ErrBadPeriod     — period < 1.
//   - ErrBadMultiplier — mult <= 0.
//
// Complexity: O(n·period) time, O(n−period+1) space.
func BollingerBands(series []float64, period int, mult float64) ([]Band, error) {
	if mult <= 0 {
		return nil, ErrBadMultiplier
	}

	middles, err := SMA(series, period)
	if err != nil {
		return nil, err
	}
	if middles == nil {
		return nil, nil // SMA's insufficient-history sentinel propagates
	}

	out := make([]Band, len(middles))
	for i, mid := range middles {
		window := series[i : i+period]

		// Population variance around the window mean (== the middle band).
		var sumSq float64
		for _, v := range window {
			d := v - mid
			sumSq += d * d
		}
		sd := math.Sqrt(sumSq / float64(period))

		out[i] = Band{
			Middle: mid,
			Upper:  mid + mult*sd,
			Lower:  mid - mult*sd,
		}
	}

	return out, nil
}
