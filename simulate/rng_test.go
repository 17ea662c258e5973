package simulate_test

import (
	"testing"

	"github.com/katalvlaran/finquant/simulate"
	"github.com/stretchr/testify/assert"
)

// drawN pulls n draws from a Source.
func drawN(src simulate.Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Float64()
	}

	return out
}

// TestNewSource_ZeroSeedPolicy: seed==0 maps to the fixed default seed,
// so it matches that seed verbatim and stays reproducible.
func TestNewSource_ZeroSeedPolicy(t *testing.T) {
	zero := drawN(simulate.NewSource(0), 10)
	one := drawN(simulate.NewSource(1), 10)
	assert.Equal(t, one, zero, "seed 0 must alias the default seed")

	again := drawN(simulate.NewSource(0), 10)
	assert.Equal(t, zero, again)
}

// TestNewSource_DistinctSeeds must produce distinct streams.
func TestNewSource_DistinctSeeds(t *testing.T) {
	a := drawN(simulate.NewSource(2), 10)
	b := drawN(simulate.NewSource(3), 10)
	assert.NotEqual(t, a, b)
}

// TestDeriveSource_StreamIndependence: different stream ids from the
// same seed decorrelate; the same (seed, stream) pair replays exactly.
func TestDeriveSource_StreamIndependence(t *testing.T) {
	s0 := drawN(simulate.DeriveSource(42, 0), 10)
	s1 := drawN(simulate.DeriveSource(42, 1), 10)
	assert.NotEqual(t, s0, s1, "adjacent streams must differ")

	replay := drawN(simulate.DeriveSource(42, 0), 10)
	assert.Equal(t, s0, replay)
}

// TestDeriveSource_RangeInvariant: draws stay in [0,1).
func TestDeriveSource_RangeInvariant(t *testing.T) {
	src := simulate.DeriveSource(7, 3)
	for i := 0; i < 1000; i++ {
		u := src.Float64()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}
