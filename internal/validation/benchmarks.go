package validation

// Benchmark ties a named statistic to its documented target rate and the
// acceptable relative tolerance. Rare events carry wider bands because their
// sampling error dominates at practical sample sizes.
type Benchmark struct {
	Name         string
	Target       float64
	TolerancePct float64
	Observe      func(*Aggregate) float64
}

// PassBenchmarks are the calibration targets for the generic pass scenario,
// taken from league-wide play-by-play aggregates.
func PassBenchmarks() []Benchmark {
	return []Benchmark{
		{
			Name:         "completion_rate",
			Target:       0.64,
			TolerancePct: 5,
			Observe:      (*Aggregate).CompletionRate,
		},
		{
			Name:         "yards_per_attempt",
			Target:       7.0,
			TolerancePct: 10,
			Observe:      (*Aggregate).YardsPerAttempt,
		},
		{
			Name:         "sack_rate",
			Target:       0.067,
			TolerancePct: 20,
			Observe:      (*Aggregate).SackRate,
		},
		{
			Name:         "interception_rate",
			Target:       0.028,
			TolerancePct: 30,
			Observe:      (*Aggregate).InterceptionRate,
		},
		{
			Name:         "touchdown_rate",
			Target:       0.055,
			TolerancePct: 40,
			Observe:      (*Aggregate).TouchdownRate,
		},
	}
}

// PuntBenchmarks are the calibration targets for the midfield punt scenario.
func PuntBenchmarks() []Benchmark {
	return []Benchmark{
		{
			Name:         "net_punt_average",
			Target:       38.0,
			TolerancePct: 8,
			Observe:      (*Aggregate).NetPuntAverage,
		},
		{
			Name:         "touchback_rate",
			Target:       0.20,
			TolerancePct: 35,
			Observe:      (*Aggregate).TouchbackRate,
		},
		{
			Name:         "block_rate",
			Target:       0.013,
			TolerancePct: 60,
			Observe:      (*Aggregate).BlockRate,
		},
		{
			Name:         "fair_catch_rate",
			Target:       0.20,
			TolerancePct: 30,
			Observe:      (*Aggregate).FairCatchRate,
		},
		{
			Name:         "return_touchdown_rate",
			Target:       0.002,
			TolerancePct: 200,
			Observe:      (*Aggregate).ReturnTouchdownRate,
		},
	}
}
