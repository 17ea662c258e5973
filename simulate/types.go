package simulate

import "errors"

var (
	// ErrBadPrice indicates a non-positive starting price.
	ErrBadPrice = errors.New("simulate: start price must be positive")
	// ErrBadDays indicates a non-positive shock count for Monte Carlo trials.
	ErrBadDays = errors.New("simulate: days must be at least 1")
	// ErrBadVolatility indicates a negative volatility.
	ErrBadVolatility = errors.New("simulate: volatility must be non-negative")
	// ErrBadSimulations indicates a non-positive trial or path count.
	ErrBadSimulations = errors.New("simulate: simulations must be at least 1")
	// ErrBadConfidence indicates a confidence level outside (0,1).
	ErrBadConfidence = errors.New("simulate: confidence must lie in (0,1)")
	// ErrBadSteps indicates a non-positive GBM step count.
	ErrBadSteps = errors.New("simulate: steps must be at least 1")
	// ErrBadHorizon indicates a non-positive GBM time horizon.
	ErrBadHorizon = errors.New("simulate: horizon must be positive")
)

// Source is the injectable uniform randomness capability: Float64 must
// return draws from [0,1). *math/rand.Rand satisfies it. No routine in
// this package ever falls back to a hidden global generator.
//
// A Source is NOT assumed goroutine-safe; parallel routines derive one
// independent stream per trial instead of sharing a Source.
type Source interface {
	Float64() float64
}

// DefaultSimulations mirrors the reference default of 1000 trials.
const DefaultSimulations = 1000

// DefaultConfidence is the percentile band reported by MCSummary.
const DefaultConfidence = 0.95

// MCOptions configures a Monte Carlo terminal-price study.
//
// Fields:
//   - Simulations — number of independent trials (default 1000).
//   - Confidence  — central percentile band width in (0,1) (default 0.95).
//   - Src         — randomness for the sequential runner; nil means the
//     deterministic default stream for Seed (seed-0 policy, see NewSource).
//   - Seed        — base seed for derived per-trial streams in the
//     parallel runner (and for Src when Src is nil).
//   - Workers     — goroutine count for the parallel runner; values < 1
//     mean GOMAXPROCS. Ignored by the sequential runner.
type MCOptions struct {
	Simulations int
	Confidence  float64
	Src         Source
	Seed        int64
	Workers     int
}

// DefaultMCOptions returns the reference parameterization.
func DefaultMCOptions() MCOptions {
	return MCOptions{
		Simulations: DefaultSimulations,
		Confidence:  DefaultConfidence,
	}
}

// MCSummary aggregates the terminal prices of all trials.
//
// ProbLoss is the fraction of trials ending strictly below the start
// price. Lower/Upper bound the central Confidence band of terminals:
// the (1−c)/2 and (1+c)/2 percentiles.
type MCSummary struct {
	Mean     float64
	Max      float64
	Min      float64
	ProbLoss float64
	Lower    float64
	Upper    float64
}
