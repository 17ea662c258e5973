package simulate

import (
	"github.com/katalvlaran/finquant/stats"
)

// MonteCarloTerminal runs opts.Simulations independent trials, each
// applying `days` sequential multiplicative shocks
//
//	price *= 1 + (U − 0.5)·2·vol,  U ~ uniform [0,1)
//
// and summarizes the terminal prices. Shocks are uniform by contract
// (see the package docs), not Gaussian.
//
// Randomness comes from opts.Src; a nil Src means the deterministic
// default stream for opts.Seed. All draws happen on a single stream in
// trial order, so a given (Src state, parameters) pair is fully
// reproducible.
//
// Errors:
//   - ErrBadPrice       — start <= 0.
//   - ErrBadDays        — days < 1.
//   - ErrBadVolatility  — vol < 0.
//   - ErrBadSimulations — opts.Simulations < 1.
//   - ErrBadConfidence  — opts.Confidence outside (0,1).
//
// Complexity: O(simulations·days) time, O(simulations) space.
func MonteCarloTerminal(start float64, days int, vol float64, opts MCOptions) (MCSummary, error) {
	if err := validateMC(start, days, vol, opts); err != nil {
		return MCSummary{}, err
	}

	src := opts.Src
	if src == nil {
		src = NewSource(opts.Seed)
	}

	terminals := make([]float64, opts.Simulations)
	for t := range terminals {
		terminals[t] = terminalPrice(start, days, vol, src)
	}

	return summarize(start, terminals, opts.Confidence)
}

// terminalPrice runs one trial: `days` uniform shocks from src.
func terminalPrice(start float64, days int, vol float64, src Source) float64 {
	price := start
	for d := 0; d < days; d++ {
		price *= 1 + (src.Float64()-0.5)*2*vol
	}

	return price
}

// summarize reduces terminal prices into an MCSummary. Every reduction
// is commutative and associative (sum, min, max, count), so the trial
// order never affects the outcome; the percentile band sorts a copy.
func summarize(start float64, terminals []float64, confidence float64) (MCSummary, error) {
	var (
		sum    float64
		minV   = terminals[0]
		maxV   = terminals[0]
		losses int
	)
	for _, price := range terminals {
		sum += price
		if price < minV {
			minV = price
		}
		if price > maxV {
			maxV = price
		}
		if price < start {
			losses++
		}
	}

	lower, err := stats.Percentile(terminals, (1-confidence)/2)
	if err != nil {
		return MCSummary{}, err
	}
	upper, err := stats.Percentile(terminals, (1+confidence)/2)
	if err != nil {
		return MCSummary{}, err
	}

	n := float64(len(terminals))

	return MCSummary{
		Mean:     sum / n,
		Max:      maxV,
		Min:      minV,
		ProbLoss: float64(losses) / n,
		Lower:    lower,
		Upper:    upper,
	}, nil
}

// validateMC applies the shared hard-error checks of both runners.
func validateMC(start float64, days int, vol float64, opts MCOptions) error {
	if start <= 0 {
		return ErrBadPrice
	}
	if days < 1 {
		return ErrBadDays
	}
	if vol < 0 {
		return ErrBadVolatility
	}
	if opts.Simulations < 1 {
		return ErrBadSimulations
	}
	if opts.Confidence <= 0 || opts.Confidence >= 1 {
		return ErrBadConfidence
	}

	return nil
}
