package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncatedNormalStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dist := NewTruncatedNormalDistribution(10, 8, -4, 30)

	for i := 0; i < 5000; i++ {
		s := dist.Sample(rng)
		assert.GreaterOrEqual(t, s, -4.0)
		assert.LessOrEqual(t, s, 30.0)
	}
}

func TestTruncatedNormalTerminatesWithMeanOutsideWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Mean far above the window forces the clamp path.
	dist := NewTruncatedNormalDistribution(500, 3, 0, 10)

	for i := 0; i < 200; i++ {
		s := dist.Sample(rng)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 10.0)
	}
}

func TestTruncatedNormalSwapsDegenerateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dist := NewTruncatedNormalDistribution(5, 2, 10, 3)
	s := dist.Sample(rng)
	assert.InDelta(t, 10, s, 1e-9)
}

func TestBetaDistributionRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dist := NewBetaDistribution(1.6, 10, 65, 0)

	for i := 0; i < 5000; i++ {
		s := dist.Sample(rng)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 65.0)
	}
}

func TestReturnDistributionMeanMatchesTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	dist := NewReturnDistribution(8.0, 65)

	assert.InDelta(t, 8.0, dist.Mean(), 1e-9)

	total := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		total += dist.Sample(rng)
	}
	// Empirical mean tracks the analytic mean within sampling noise.
	assert.InDelta(t, 8.0, total/n, 0.5)
}

func TestReturnDistributionClampsExtremeTargets(t *testing.T) {
	low := NewReturnDistribution(0.2, 65)
	assert.InDelta(t, 1.0, low.Mean(), 1e-9)

	high := NewReturnDistribution(500, 65)
	assert.InDelta(t, 65*0.8, high.Mean(), 1e-9)
}

func TestNormalDistributionMoments(t *testing.T) {
	dist := NewNormalDistribution(6.5, 2.5)
	assert.Equal(t, 6.5, dist.Mean())
	assert.Equal(t, 2.5, dist.StdDev())
}
