// Package finquant is your in-memory toolbox for financial and
// game-economy numerics — from window indicators and inequality metrics
// to option pricing and stochastic price simulation.
//
// 🚀 What is finquant?
//
//	A small, stateless library of pure numeric routines:
//		• Statistics primitives: mean, population std-dev, percentile
//		• Window indicators: SMA, EMA, Wilder RSI, Bollinger Bands
//		• Regression: one-step OLS trend prediction
//		• Inequality: Gini coefficient & Lorenz curve
//		• Simulation: uniform-shock Monte Carlo & GBM paths
//		• Pricing & token math: Black–Scholes, AMM swaps, vesting
//
// ✨ Why choose finquant?
//
//   - Pure functions – no shared state, no I/O, no hidden globals
//   - Deterministic – every randomized routine takes an injected Source
//   - Strict sentinels – defined "no signal" outcomes are not errors
//   - Tested invariants – RSI∈[0,100], Gini∈[0,1], band ordering, parity
//
// Everything is organized under flat subpackages:
//
//	stats/      — mean, population std-dev, percentile, median
//	indicator/  — SMA, EMA, RSI, Bollinger Bands
//	regress/    — least-squares next-value prediction
//	inequality/ — Gini coefficient, Lorenz curve
//	simulate/   — Monte Carlo terminal stats, GBM paths, batches
//	pricing/    — Black–Scholes European options
//	amm/        — constant-product swap math on decimals
//	vesting/    — linear token vesting with cliff
//
// Quick ASCII example:
//
//	prices ──▶ indicator.SMA ──▶ [m₁ m₂ … mₖ]
//	                 │
//	                 └─▶ ±mult·σ ──▶ Bollinger {lower ≤ middle ≤ upper}
//
// Dive into each package's doc.go and example_test.go for runnable
// scenarios and the exact numeric contracts.
//
//	go get github.com/katalvlaran/finquant
package finquant
