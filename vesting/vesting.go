package vesting

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadSchedule indicates a non-positive duration, a negative
	// cliff, or a cliff beyond the duration.
	ErrBadSchedule = errors.New("vesting: schedule must have 0 <= cliff <= duration and duration > 0")
	// ErrBadElapsed indicates a negative elapsed time.
	ErrBadElapsed = errors.New("vesting: elapsed months must be non-negative")
	// ErrBadTotal indicates a negative total allocation.
	ErrBadTotal = errors.New("vesting: total allocation must be non-negative")
)

// Schedule is a linear vesting plan measured in whole months.
type Schedule struct {
	// CliffMonths is the lock-up before anything unlocks.
	CliffMonths int64
	// DurationMonths is the point of full vesting, counted from month zero.
	DurationMonths int64
}

// Vested returns how much of total is unlocked after `elapsed` months:
//
//	elapsed <  cliff    → 0
//	elapsed >= duration → total
//	otherwise           → total·elapsed/duration
//
// Errors:
//   - ErrBadTotal    — total < 0.
//   - ErrBadSchedule — duration <= 0, cliff < 0, or cliff > duration.
//   - ErrBadElapsed  — elapsed < 0.
//
// Complexity: O(1).
func Vested(total decimal.Decimal, s Schedule, elapsed int64) (decimal.Decimal, error) {
	if total.IsNegative() {
		return decimal.Zero, ErrBadTotal
	}
	if s.DurationMonths <= 0 || s.CliffMonths < 0 || s.CliffMonths > s.DurationMonths {
		return decimal.Zero, ErrBadSchedule
	}
	if elapsed < 0 {
		return decimal.Zero, ErrBadElapsed
	}

	switch {
	case elapsed < s.CliffMonths:
		return decimal.Zero, nil
	case elapsed >= s.DurationMonths:
		return total, nil
	default:
		return total.
			Mul(decimal.NewFromInt(elapsed)).
			Div(decimal.NewFromInt(s.DurationMonths)), nil
	}
}

// Unvested is the locked remainder: total − Vested.
//
// Errors: same set as Vested.
func Unvested(total decimal.Decimal, s Schedule, elapsed int64) (decimal.Decimal, error) {
	vested, err := Vested(total, s, elapsed)
	if err != nil {
		return decimal.Zero, err
	}

	return total.Sub(vested), nil
}
