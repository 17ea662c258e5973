package simulate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MonteCarloTerminalParallel is MonteCarloTerminal fanned out over a
// worker pool. Trial t always draws from the stream DeriveSource(opts.Seed,
// t), so the summary depends only on (parameters, Seed, Simulations) —
// never on opts.Workers or goroutine scheduling. opts.Src is ignored:
// a shared Source cannot be used concurrently.
//
// Each worker writes terminals into its own disjoint index range; the
// reduction happens after all workers finish and is order-independent
// (sum/min/max/count plus a sorted percentile band).
//
// Errors: same hard-error set as MonteCarloTerminal.
//
// Complexity: O(simulations·days / workers) wall time, O(simulations) space.
func MonteCarloTerminalParallel(start float64, days int, vol float64, opts MCOptions) (MCSummary, error) {
	if err := validateMC(start, days, vol, opts); err != nil {
		return MCSummary{}, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Simulations {
		workers = opts.Simulations
	}

	terminals := make([]float64, opts.Simulations)

	// Contiguous chunking: worker w owns trials [w·chunk, min((w+1)·chunk, n)).
	chunk := (opts.Simulations + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > opts.Simulations {
			hi = opts.Simulations
		}
		if lo >= hi {
			break
		}

		g.Go(func() error {
			for t := lo; t < hi; t++ {
				src := DeriveSource(opts.Seed, uint64(t))
				terminals[t] = terminalPrice(start, days, vol, src)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MCSummary{}, err
	}

	return summarize(start, terminals, opts.Confidence)
}
