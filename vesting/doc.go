// Package vesting computes linear token-vesting schedules with a cliff,
// on github.com/shopspring/decimal amounts so allocations divide exactly.
//
// A Schedule is defined in months: nothing unlocks before CliffMonths,
// the total unlocks linearly between the start and DurationMonths, and
// everything is vested from DurationMonths on. Note the linear ramp is
// anchored at month zero — at the cliff the holder receives the full
// backlog accrued since the start, which is the conventional shape.
//
// Contracts:
//   - Vested is monotone non-decreasing in elapsed time.
//   - 0 <= Vested <= total always; exactly total at/after maturity.
//
// Complexity: O(1) per evaluation.
package vesting
