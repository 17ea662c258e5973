package amm

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadReserves indicates a non-positive pool reserve.
	ErrBadReserves = errors.New("amm: reserves must be positive")
	// ErrBadAmount indicates a non-positive swap input.
	ErrBadAmount = errors.New("amm: input amount must be positive")
	// ErrBadFee indicates a fee outside [0,10000) basis points.
	ErrBadFee = errors.New("amm: fee must lie in [0,10000) basis points")
)

// bpsDenominator is the basis-point scale: 10000 bps == 100%.
var bpsDenominator = decimal.NewFromInt(10_000)

// SwapOut quotes the output amount of a constant-product swap:
// the input net of the fee joins reserveIn, and the invariant
// reserveIn·reserveOut decides how much of reserveOut leaves.
//
// Errors:
//   - ErrBadReserves — reserveIn or reserveOut <= 0.
//   - ErrBadAmount   — amountIn <= 0.
//   - ErrBadFee      — feeBps < 0 or >= 10000.
//
// Complexity: O(1).
func SwapOut(reserveIn, reserveOut, amountIn decimal.Decimal, feeBps int64) (decimal.Decimal, error) {
	if err := validateSwap(reserveIn, reserveOut, amountIn, feeBps); err != nil {
		return decimal.Zero, err
	}

	kept := amountIn.Mul(bpsDenominator.Sub(decimal.NewFromInt(feeBps))).Div(bpsDenominator)

	return kept.Mul(reserveOut).Div(reserveIn.Add(kept)), nil
}

// PriceImpact reports how far the execution price falls short of the
// spot price reserveOut/reserveIn, as a fraction in [0,1):
//
//	impact = 1 − (out/in) / (Rout/Rin)
//
// A marginal swap has impact near the fee rate; a swap comparable to the
// reserves approaches 1.
//
// Errors: same set as SwapOut.
//
// Complexity: O(1).
func PriceImpact(reserveIn, reserveOut, amountIn decimal.Decimal, feeBps int64) (decimal.Decimal, error) {
	out, err := SwapOut(reserveIn, reserveOut, amountIn, feeBps)
	if err != nil {
		return decimal.Zero, err
	}

	execution := out.Div(amountIn)
	spot := reserveOut.Div(reserveIn)

	return decimal.NewFromInt(1).Sub(execution.Div(spot)), nil
}

func validateSwap(reserveIn, reserveOut, amountIn decimal.Decimal, feeBps int64) error {
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return ErrBadReserves
	}
	if !amountIn.IsPositive() {
		return ErrBadAmount
	}
	if feeBps < 0 || feeBps >= 10_000 {
		return ErrBadFee
	}

	return nil
}
