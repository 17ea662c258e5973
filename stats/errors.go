package stats

import "errors"

var (
	// ErrEmptyInput indicates a reduction was asked of an empty series.
	ErrEmptyInput = errors.New("stats: input series must be non-empty")
	// ErrInvalidPercentile indicates a percentile argument outside [0,1].
	ErrInvalidPercentile = errors.New("stats: percentile must lie in [0,1]")
)
