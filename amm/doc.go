// Package amm implements constant-product automated-market-maker swap
// math on github.com/shopspring/decimal values, so token amounts never
// pick up binary floating-point drift.
//
// 🚀 The constant-product rule:
//
//	A pool holding reserves (Rin, Rout) quotes a swap of `in` by keeping
//	Rin·Rout invariant after the fee is shaved off the input:
//
//	  inKept = in·(10000−feeBps)/10000
//	  out    = inKept·Rout / (Rin + inKept)
//
// ✨ Contracts:
//   - out < Rout always (the pool can never be drained by one swap).
//   - Execution price is never better than spot; PriceImpact reports the
//     relative shortfall in [0,1).
//   - Zero or negative reserves/amounts and fees outside [0,10000) are
//     hard errors.
//
// Complexity: O(1) per quote.
package amm
