// Package simulate - RNG utilities shared by the stochastic simulators.
//
// This file centralizes deterministic random generation for the package.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single Source factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Independence: derived streams for parallel trials are decorrelated
//     by a SplitMix64 avalanche, never by naive seed arithmetic.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across
//     goroutines; use DeriveSource to create one stream per trial.
package simulate

import "math/rand"

// defaultSourceSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSourceSeed int64 = 1

// NewSource returns a deterministic uniform Source.
// Policy: seed==0 ⇒ use defaultSourceSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) Source {
	s := seed
	if s == 0 {
		s = defaultSourceSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Parallel Monte Carlo needs one independent substream per trial.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive stream ids; the constants are the canonical SplitMix64
//     multipliers/finalizer (Vigna 2014).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSource creates an independent deterministic stream identified by
// (seed, stream). Trials keyed by their own index get bit-identical draws
// no matter how they are scheduled across workers. The seed==0 policy of
// NewSource applies to the parent seed.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-trial Sources.
//
// Complexity: O(1).
func DeriveSource(seed int64, stream uint64) Source {
	parent := seed
	if parent == 0 {
		parent = defaultSourceSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
