package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
)

func newTestHarness(t *testing.T, workers int, seed int64) *Harness {
	t.Helper()
	store, err := matrix.NewStore()
	require.NoError(t, err)
	eng, err := engine.New(store, nil)
	require.NoError(t, err)
	return NewHarness(eng, workers, seed)
}

func TestRunRejectsNonPositiveSample(t *testing.T) {
	h := newTestHarness(t, 2, 1)
	_, err := h.Run(GenericPassScenario(), 0)
	assert.Error(t, err)
}

func TestRunProducesFullSample(t *testing.T) {
	h := newTestHarness(t, 4, 1)
	agg, err := h.Run(GenericPassScenario(), 2500)
	require.NoError(t, err)

	assert.Equal(t, 2500, agg.Samples)
	total := 0
	for _, n := range agg.Outcomes {
		total += n
	}
	assert.Equal(t, 2500, total, "every play lands in exactly one outcome bucket")
}

func TestRunIsReproducibleForSeedAndWorkers(t *testing.T) {
	a := newTestHarness(t, 4, 42)
	b := newTestHarness(t, 4, 42)

	// The static per-worker partition makes the sample a pure function of
	// (seed, workers): scheduling order cannot shift plays between streams.
	aggA, err := a.Run(GenericPassScenario(), 3000)
	require.NoError(t, err)
	aggB, err := b.Run(GenericPassScenario(), 3000)
	require.NoError(t, err)

	assert.Equal(t, aggA.Outcomes, aggB.Outcomes)
	assert.InDelta(t, aggA.YardsPerAttempt(), aggB.YardsPerAttempt(), 1e-9)
}

func TestRunPartitionsUnevenSamples(t *testing.T) {
	// Sample sizes that do not divide evenly, including fewer samples than
	// workers, still produce exactly the requested count.
	for _, sample := range []int{3, 7, 2501} {
		h := newTestHarness(t, 8, 1)
		agg, err := h.Run(GenericPassScenario(), sample)
		require.NoError(t, err)
		assert.Equal(t, sample, agg.Samples, "sample size %d", sample)
	}
}

func TestGenericPassCalibration(t *testing.T) {
	h := newTestHarness(t, 4, 1)
	agg, err := h.Run(GenericPassScenario(), 10000)
	require.NoError(t, err)

	completion := agg.CompletionRate()
	ypa := agg.YardsPerAttempt()
	sack := agg.SackRate()
	interception := agg.InterceptionRate()
	touchdown := agg.TouchdownRate()

	t.Logf("pass calibration over %d plays: completion=%.3f ypa=%.2f sack=%.3f int=%.3f td=%.3f",
		agg.Samples, completion, ypa, sack, interception, touchdown)

	assert.Greater(t, completion, 0.55)
	assert.Less(t, completion, 0.75)
	assert.Greater(t, ypa, 6.0)
	assert.Less(t, ypa, 10.0)
	assert.Greater(t, sack, 0.03)
	assert.Less(t, sack, 0.12)
	assert.Greater(t, interception, 0.01)
	assert.Less(t, interception, 0.06)
	assert.Greater(t, touchdown, 0.02)
	assert.Less(t, touchdown, 0.10)
}

func TestMidfieldPuntCalibration(t *testing.T) {
	h := newTestHarness(t, 4, 1)
	agg, err := h.Run(MidfieldPuntScenario(), 10000)
	require.NoError(t, err)

	net := agg.NetPuntAverage()
	touchback := agg.TouchbackRate()
	block := agg.BlockRate()

	t.Logf("punt calibration over %d punts: net=%.1f touchback=%.3f block=%.4f fair_catch=%.3f",
		agg.Samples, net, touchback, block, agg.FairCatchRate())

	assert.Greater(t, net, 35.0)
	assert.Less(t, net, 45.0)
	assert.Greater(t, touchback, 0.10)
	assert.Less(t, touchback, 0.40)
	assert.Less(t, block, 0.05)
}

func TestValidateAllGradesBothScenarios(t *testing.T) {
	h := newTestHarness(t, 4, 1)
	reports, err := h.ValidateAll(10000, 10000)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, r := range reports {
		t.Logf("\n%s", r.Render())
		assert.True(t, r.Passed(), "scenario %s drifted out of tolerance", r.Scenario)
	}
}
