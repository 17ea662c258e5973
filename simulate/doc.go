// Package simulate provides stochastic price simulators: a uniform-shock
// Monte Carlo terminal-price study and Geometric Brownian Motion paths.
//
// 🚀 What lives here?
//
//   - MonteCarloTerminal — N independent trials of `days` multiplicative
//     shocks price *= 1 + (U−0.5)·2·vol, summarized as mean/max/min,
//     probability of loss, and a confidence percentile band.
//   - MonteCarloTerminalParallel — the same study fanned out over an
//     errgroup worker pool with one derived RNG stream per trial.
//   - GBMPath / GBMBatch — discretized GBM: per step
//     drift = (mu − 0.5·sigma²)·dt and diffusion = sigma·√dt·(2U−1).
//
// ⚠️ Uniform shocks, on purpose:
//
//	Both simulators draw U uniformly from [0,1) where a Gaussian Wiener
//	increment is conventional in quantitative finance. This is the
//	behavior of the reference formulas this package is compatible with;
//	do not "correct" it to Gaussian noise — downstream consumers compare
//	outputs bit-for-bit under seeded sources.
//
// ✨ Determinism:
//   - Every routine takes an injectable Source; nothing reads the global
//     generator or the clock.
//   - Parallel runs derive one independent stream per trial from the
//     seed, so the summary is identical for any worker count.
//   - All reductions are commutative and associative (sum/min/max/count),
//     so execution order never affects the result.
//
// ⚙️ Usage:
//
//	opts := simulate.DefaultMCOptions()
//	opts.Src = simulate.NewSource(42)
//	sum, err := simulate.MonteCarloTerminal(100, 30, 0.02, opts)
//
//	path, err := simulate.GBMPath(100, 0.05, 0.2, 1.0, 252, simulate.NewSource(42))
//
// Complexity: O(simulations·days) and O(steps) respectively.
package simulate
