package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

func TestAggregateRates(t *testing.T) {
	agg := newAggregate("unit", 10)

	add := func(outcome types.Outcome, yards int, family types.Family) {
		agg.add(types.PlayResult{Family: family, Outcome: outcome, Yards: yards})
	}

	add(types.OutcomeComplete, 8, types.FamilyPass)
	add(types.OutcomeComplete, 12, types.FamilyPass)
	add(types.OutcomeCompleteTouchdown, 20, types.FamilyPass)
	add(types.OutcomeIncomplete, 0, types.FamilyPass)
	add(types.OutcomeInterception, 0, types.FamilyPass)
	add(types.OutcomeSack, -6, types.FamilyPass)

	assert.Equal(t, 6, agg.Samples)
	assert.Equal(t, 5, agg.Attempts(), "sacks are not attempts")
	assert.InDelta(t, 3.0/5.0, agg.CompletionRate(), 1e-9)
	assert.InDelta(t, 40.0/5.0, agg.YardsPerAttempt(), 1e-9)
	assert.InDelta(t, 1.0/6.0, agg.SackRate(), 1e-9)
	assert.InDelta(t, 1.0/6.0, agg.InterceptionRate(), 1e-9)
	assert.InDelta(t, 1.0/6.0, agg.TouchdownRate(), 1e-9)
	assert.InDelta(t, 1.0/6.0, agg.TurnoverRate(), 1e-9)
}

func TestAggregatePuntRates(t *testing.T) {
	agg := newAggregate("unit", 10)
	for _, y := range []int{40, 36, 44} {
		agg.add(types.PlayResult{Family: types.FamilyPunt, Outcome: types.OutcomeFairCatch, Yards: y})
	}
	agg.add(types.PlayResult{Family: types.FamilyPunt, Outcome: types.OutcomePuntBlocked, Yards: -4, Turnover: true})

	assert.InDelta(t, 29.0, agg.NetPuntAverage(), 1e-9)
	assert.InDelta(t, 0.25, agg.BlockRate(), 1e-9)
	assert.InDelta(t, 0.75, agg.FairCatchRate(), 1e-9)
	assert.Greater(t, agg.NetPuntStdDev(), 0.0)
}

func TestGradeStatisticTolerance(t *testing.T) {
	b := Benchmark{Name: "completion_rate", Target: 0.64, TolerancePct: 5}

	inBand := gradeStatistic(b, 0.66)
	assert.True(t, inBand.Pass)
	assert.InDelta(t, 3.125, inBand.DeviationPct, 1e-3)

	outOfBand := gradeStatistic(b, 0.58)
	assert.False(t, outOfBand.Pass)
	assert.Less(t, outOfBand.DeviationPct, -5.0)
}

func TestGradeStatisticZeroTarget(t *testing.T) {
	b := Benchmark{Name: "impossible", Target: 0, TolerancePct: 50}
	assert.True(t, gradeStatistic(b, 0).Pass)
	assert.False(t, gradeStatistic(b, 0.01).Pass)
}

func TestReportPassedAndRender(t *testing.T) {
	r := &Report{
		Scenario:   "unit",
		SampleSize: 100,
		Stats: []StatResult{
			{Name: "a", Observed: 1, Target: 1, Pass: true},
			{Name: "b", Observed: 2, Target: 1, DeviationPct: 100, Pass: false},
		},
	}
	r.finalize()

	assert.False(t, r.Passed())
	assert.InDelta(t, 0.5, r.PassRate, 1e-9)

	rendered := r.Render()
	assert.Contains(t, rendered, "[PASS] a")
	assert.Contains(t, rendered, "[FAIL] b")
	assert.Contains(t, rendered, "50% of statistics in tolerance")

	require.NotEmpty(t, rendered)
}

func TestEmptyReportNeverPasses(t *testing.T) {
	r := &Report{Scenario: "empty"}
	r.finalize()
	assert.False(t, r.Passed())
}
