// Package pricing values European options with the Black–Scholes closed
// form. The standard normal CDF comes from gonum.org/v1/gonum/stat/distuv.
//
// Contracts:
//   - Call and put always satisfy put–call parity:
//     call − put == spot − strike·e^(−rate·tau).
//   - Non-positive spot, strike, volatility or time-to-expiry are hard
//     errors (ErrBadParam); a degenerate contract is the caller's bug,
//     not a zero-priced quote.
//
// The rate is continuously compounded and tau is expressed in years.
//
// Complexity: O(1) per quote.
package pricing
