package vesting_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/finquant/vesting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardPlan = vesting.Schedule{CliffMonths: 12, DurationMonths: 48}

// TestVested_Timeline walks the canonical 12/48 plan over a 1200-token
// allocation.
func TestVested_Timeline(t *testing.T) {
	total := decimal.NewFromInt(1200)

	cases := []struct {
		elapsed int64
		want    string
	}{
		{0, "0"},
		{6, "0"},    // inside the cliff
		{11, "0"},   // last locked month
		{12, "300"}, // cliff passes: backlog since month 0 unlocks
		{24, "600"},
		{36, "900"},
		{48, "1200"}, // maturity
		{60, "1200"}, // beyond maturity stays clamped
	}
	for _, tc := range cases {
		got, err := vesting.Vested(total, standardPlan, tc.elapsed)
		require.NoError(t, err, "elapsed=%d", tc.elapsed)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"elapsed=%d: got %s want %s", tc.elapsed, got, tc.want)
	}
}

// TestVested_Monotone: more elapsed time never unlocks less.
func TestVested_Monotone(t *testing.T) {
	total := decimal.RequireFromString("999.5")

	prev := decimal.Zero
	for elapsed := int64(0); elapsed <= 60; elapsed++ {
		got, err := vesting.Vested(total, standardPlan, elapsed)
		require.NoError(t, err)

		assert.True(t, got.GreaterThanOrEqual(prev), "elapsed=%d", elapsed)
		assert.True(t, got.LessThanOrEqual(total), "elapsed=%d", elapsed)
		prev = got
	}
}

// TestVested_NoCliff vests linearly from the first month.
func TestVested_NoCliff(t *testing.T) {
	plan := vesting.Schedule{CliffMonths: 0, DurationMonths: 10}

	got, err := vesting.Vested(decimal.NewFromInt(100), plan, 3)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(30)), "got %s", got)
}

// TestVested_ZeroTotal is a defined no-op, not an error.
func TestVested_ZeroTotal(t *testing.T) {
	got, err := vesting.Vested(decimal.Zero, standardPlan, 24)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// TestUnvested_Complements: vested + unvested == total at every point.
func TestUnvested_Complements(t *testing.T) {
	total := decimal.NewFromInt(480)
	for _, elapsed := range []int64{0, 12, 30, 48, 99} {
		vested, err := vesting.Vested(total, standardPlan, elapsed)
		require.NoError(t, err)
		unvested, err := vesting.Unvested(total, standardPlan, elapsed)
		require.NoError(t, err)

		assert.True(t, vested.Add(unvested).Equal(total), "elapsed=%d", elapsed)
	}
}

// TestVested_Validation covers the hard-error classes.
func TestVested_Validation(t *testing.T) {
	total := decimal.NewFromInt(100)

	_, err := vesting.Vested(decimal.NewFromInt(-1), standardPlan, 0)
	assert.ErrorIs(t, err, vesting.ErrBadTotal)

	_, err = vesting.Vested(total, vesting.Schedule{CliffMonths: 0, DurationMonths: 0}, 0)
	assert.ErrorIs(t, err, vesting.ErrBadSchedule)

	_, err = vesting.Vested(total, vesting.Schedule{CliffMonths: -1, DurationMonths: 10}, 0)
	assert.ErrorIs(t, err, vesting.ErrBadSchedule)

	_, err = vesting.Vested(total, vesting.Schedule{CliffMonths: 20, DurationMonths: 10}, 0)
	assert.ErrorIs(t, err, vesting.ErrBadSchedule)

	_, err = vesting.Vested(total, standardPlan, -1)
	assert.ErrorIs(t, err, vesting.ErrBadElapsed)
}

// ExampleVested shows the cliff backlog unlocking.
func ExampleVested() {
	total := decimal.NewFromInt(1200)
	plan := vesting.Schedule{CliffMonths: 12, DurationMonths: 48}

	before, _ := vesting.Vested(total, plan, 11)
	atCliff, _ := vesting.Vested(total, plan, 12)

	fmt.Printf("month 11: %s\nmonth 12: %s\n", before, atCliff)
	// Output:
	// month 11: 0
	// month 12: 300
}
