// Package inequality measures wealth concentration in a population:
// the Gini coefficient and the Lorenz curve behind it.
//
// 🚀 What is the Gini coefficient?
//
//	A single number in [0,1] summarizing how unevenly wealth is spread:
//	  0 — perfect equality (everyone holds the same amount)
//	  1 — perfect concentration (one holder owns everything), approached
//	      as (n−1)/n for finite populations
//
// ✨ Contracts:
//   - Wealth entries must be non-negative; a negative entry is a hard
//     error (ErrNegativeWealth), never a silent NaN.
//   - Fewer than two holders, or an all-zero population, are defined
//     outcomes: Gini returns 0 (no inequality is measurable).
//   - Inputs are never mutated; sorting happens on a private copy.
//
// Typical use is game-economy telemetry: feed the per-player balances of
// a season snapshot and chart Gini over time to watch concentration.
//
// Complexity: O(n log n) per call (sorted copy).
package inequality
