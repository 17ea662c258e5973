// Package indicator computes moving-window technical indicators over
// in-memory price series: SMA, EMA, Wilder's RSI and Bollinger Bands.
//
// 🚀 What is a window indicator?
//
//	A reduction applied to every contiguous sub-sequence of fixed length
//	`period`. For a series of length n there are n−period+1 window
//	positions; outputs align to the tail of the input.
//
// ✨ Key contracts:
//   - Insufficient history is a defined outcome, NOT an error:
//     SMA/EMA/Bollinger return a nil result, RSI returns the neutral 50.
//     Only malformed parameters (period < 1, mult ≤ 0) fail loudly.
//   - RSI is always within [0,100]; a zero average loss maps to 100.
//   - Bollinger middle band at position i equals the SMA at position i
//     by construction, and lower ≤ middle ≤ upper for any mult ≥ 0.
//   - Inputs are never mutated.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finquant/indicator"
//
//	sma, err := indicator.SMA(closes, 20)
//	rsi, err := indicator.RSI(closes, indicator.DefaultRSIPeriod)
//	bands, err := indicator.BollingerBands(closes,
//	  indicator.DefaultBollingerPeriod, indicator.DefaultBollingerMult)
//
// Performance: every indicator is a single pass (SMA/EMA/RSI are O(n);
// Bollinger is O(n·period) for the per-window deviation).
//
// See example_test.go for runnable scenarios.
package indicator
