package inequality_test

import (
	"testing"

	"github.com/katalvlaran/finquant/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLorenz_EqualEconomyIsDiagonal: equal holdings trace the diagonal.
func TestLorenz_EqualEconomyIsDiagonal(t *testing.T) {
	points, err := inequality.Lorenz([]float64{10, 10, 10, 10})
	require.NoError(t, err)
	require.Len(t, points, 5)

	for i, p := range points {
		want := float64(i) / 4
		assert.InDelta(t, want, p.Population, 1e-12, "point %d", i)
		assert.InDelta(t, want, p.Wealth, 1e-12, "point %d", i)
	}
}

// TestLorenz_Endpoints pins (0,0) and (1,1) for any positive total.
func TestLorenz_Endpoints(t *testing.T) {
	points, err := inequality.Lorenz([]float64{3, 1, 7, 0.5})
	require.NoError(t, err)

	first, last := points[0], points[len(points)-1]
	assert.Equal(t, inequality.Point{}, first)
	assert.Equal(t, 1.0, last.Population)
	assert.Equal(t, 1.0, last.Wealth)
}

// TestLorenz_BelowDiagonal: the curve never rises above equality.
func TestLorenz_BelowDiagonal(t *testing.T) {
	points, err := inequality.Lorenz([]float64{1, 2, 3, 10, 50})
	require.NoError(t, err)

	prev := 0.0
	for i, p := range points {
		assert.LessOrEqual(t, p.Wealth, p.Population+1e-12, "point %d", i)
		assert.GreaterOrEqual(t, p.Wealth, prev, "point %d must be monotone", i)
		prev = p.Wealth
	}
}

// TestLorenz_Errors covers both hard-error classes.
func TestLorenz_Errors(t *testing.T) {
	_, err := inequality.Lorenz([]float64{1, -2, 3})
	assert.ErrorIs(t, err, inequality.ErrNegativeWealth)

	_, err = inequality.Lorenz(nil)
	assert.ErrorIs(t, err, inequality.ErrZeroTotal)

	_, err = inequality.Lorenz([]float64{0, 0, 0})
	assert.ErrorIs(t, err, inequality.ErrZeroTotal)
}
