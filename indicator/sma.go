package indicator

import "iter"

// SMA computes the simple moving average of series over windows of the
// given period. The result has one element per window position,
// len(series)−period+1 in total, aligned to the tail of the input.
//
// Insufficient history (len(series) < period) is a defined outcome:
// SMA returns (nil, nil). This is the common case on fresh series and is
// deliberately not an error.
//
// Errors:
//   - ErrBadPeriod — period < 1.
//
// Complexity: O(n) time via a rolling sum, O(n−period+1) space.
func SMA(series []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, ErrBadPeriod
	}
	if len(series) < period {
		return nil, nil // insufficient history: defined, not an error
	}

	out := make([]float64, 0, len(series)-period+1)

	// Rolling sum: seed with the first window, then slide.
	var sum float64
	for i := 0; i < period; i++ {
		sum += series[i]
	}
	out = append(out, sum/float64(period))

	for i := period; i < len(series); i++ {
		sum += series[i] - series[i-period]
		out = append(out, sum/float64(period))
	}

	return out, nil
}

// SMASeq is the lazy rendition of SMA: a finite, restartable sequence of
// window means produced on demand. Ranging over it twice replays the same
// values. It yields nothing when period < 1 or the history is too short.
//
// Use SMA when a materialized slice is needed; SMASeq when composing with
// other range-over-func pipelines.
//
// Complexity: O(1) per yielded value after the first window.
func SMASeq(series []float64, period int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if period < 1 || len(series) < period {
			return
		}

		var sum float64
		for i := 0; i < period; i++ {
			sum += series[i]
		}
		if !yield(sum / float64(period)) {
			return
		}

		for i := period; i < len(series); i++ {
			sum += series[i] - series[i-period]
			if !yield(sum / float64(period)) {
				return
			}
		}
	}
}
