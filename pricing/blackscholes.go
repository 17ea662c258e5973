package pricing

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadParam indicates a non-positive spot, strike, volatility or
// time-to-expiry; the closed form is undefined there.
var ErrBadParam = errors.New("pricing: spot, strike, vol and tau must be positive")

// Quote is one Black–Scholes valuation. D1 and D2 are exposed because
// they double as the standard hedge-ratio inputs (Φ(D1) is the call delta).
type Quote struct {
	Call float64
	Put  float64
	D1   float64
	D2   float64
}

// BlackScholes prices a European call and put:
//
//	d1   = (ln(S/K) + (r + σ²/2)·τ) / (σ·√τ)
//	d2   = d1 − σ·√τ
//	call = S·Φ(d1) − K·e^(−r·τ)·Φ(d2)
//	put  = call − S + K·e^(−r·τ)        (put–call parity)
//
// Errors:
//   - ErrBadParam — spot, strike, vol or tau <= 0.
//
// Complexity: O(1).
func BlackScholes(spot, strike, rate, vol, tau float64) (Quote, error) {
	if spot <= 0 || strike <= 0 || vol <= 0 || tau <= 0 {
		return Quote{}, ErrBadParam
	}

	volSqrtTau := vol * math.Sqrt(tau)
	d1 := (math.Log(spot/strike) + (rate+0.5*vol*vol)*tau) / volSqrtTau
	d2 := d1 - volSqrtTau

	discounted := strike * math.Exp(-rate*tau)
	call := spot*distuv.UnitNormal.CDF(d1) - discounted*distuv.UnitNormal.CDF(d2)

	return Quote{
		Call: call,
		Put:  call - spot + discounted,
		D1:   d1,
		D2:   d2,
	}, nil
}
