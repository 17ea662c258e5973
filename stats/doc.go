// Package stats provides the statistics primitives the rest of finquant
// is built on: arithmetic mean, population standard deviation, and
// linear-interpolation percentiles.
//
// 🚀 What belongs here?
//
//	Only order-free reductions over a single numeric series:
//	  • Mean       — Σxᵢ / n
//	  • PopStdDev  — √(Σ(xᵢ−μ)² / n), the population form (divide by n)
//	  • Percentile — fractional-rank interpolation, pos = (n−1)·p
//	  • Median     — Percentile at p = 0.5
//
// ✨ Contracts:
//   - Inputs are never mutated; Percentile sorts a private copy.
//   - An empty series is a hard error (ErrEmptyInput), never NaN.
//   - Percentile(xs, 0) == min(xs), Percentile(xs, 1) == max(xs).
//
// Moments are delegated to gonum.org/v1/gonum/stat; the percentile uses
// the fractional-rank convention directly because gonum's Quantile
// follows a different interpolation scheme.
//
// Complexity: Mean and PopStdDev are O(n); Percentile is O(n log n)
// due to the sorted copy.
package stats
