package simulate

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GBMPath discretizes Geometric Brownian Motion over `steps` equal
// intervals of length dt = horizon/steps. At each step:
//
//	drift     = (mu − 0.5·sigma²)·dt
//	diffusion = sigma·√dt·(2U − 1),  U ~ uniform [0,1)
//	S'        = S·exp(drift + diffusion)
//
// The increment is a uniform approximation of the Wiener increment, kept
// by contract (see the package docs). The returned path includes the
// initial price: length steps+1, out[0] == s0.
//
// A nil src means the deterministic default stream (seed-0 policy).
//
// Errors:
//   - ErrBadPrice      — s0 <= 0.
//   - ErrBadSteps      — steps < 1.
//   - ErrBadHorizon    — horizon <= 0.
//   - ErrBadVolatility — sigma < 0.
//
// Complexity: O(steps) time, O(steps) space.
func GBMPath(s0, mu, sigma, horizon float64, steps int, src Source) ([]float64, error) {
	if s0 <= 0 {
		return nil, ErrBadPrice
	}
	if steps < 1 {
		return nil, ErrBadSteps
	}
	if horizon <= 0 {
		return nil, ErrBadHorizon
	}
	if sigma < 0 {
		return nil, ErrBadVolatility
	}
	if src == nil {
		src = NewSource(0)
	}

	dt := horizon / float64(steps)
	drift := (mu - 0.5*sigma*sigma) * dt
	volStep := sigma * math.Sqrt(dt)

	out := make([]float64, steps+1)
	out[0] = s0
	price := s0
	for i := 1; i <= steps; i++ {
		diffusion := volStep * (2*src.Float64() - 1)
		price *= math.Exp(drift + diffusion)
		out[i] = price
	}

	return out, nil
}

// GBMBatch generates `paths` independent GBM paths sharing the same
// parameters. Path p draws from DeriveSource(seed, p), so the batch is
// reproducible and independent of the worker count. Paths are unordered
// with respect to each other in meaning, but returned indexed by p for
// determinism.
//
// Errors: the GBMPath set, plus ErrBadSimulations for paths < 1.
//
// Complexity: O(paths·steps / workers) wall time, O(paths·steps) space.
func GBMBatch(s0, mu, sigma, horizon float64, steps, paths int, seed int64) ([][]float64, error) {
	if paths < 1 {
		return nil, ErrBadSimulations
	}

	// Validate once up front with a throwaway stream so workers cannot
	// race on the first error.
	if _, err := GBMPath(s0, mu, sigma, horizon, steps, NewSource(seed)); err != nil {
		return nil, err
	}

	out := make([][]float64, paths)

	workers := runtime.GOMAXPROCS(0)
	if workers > paths {
		workers = paths
	}
	chunk := (paths + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > paths {
			hi = paths
		}
		if lo >= hi {
			break
		}

		g.Go(func() error {
			for p := lo; p < hi; p++ {
				path, err := GBMPath(s0, mu, sigma, horizon, steps, DeriveSource(seed, uint64(p)))
				if err != nil {
					return err
				}
				out[p] = path
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
