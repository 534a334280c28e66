package validation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// Aggregate accumulates outcome counts and yardage samples for one scenario
// run. It is populated by the harness collector goroutine only, so it needs
// no locking.
type Aggregate struct {
	Scenario string
	Samples  int

	Outcomes map[types.Outcome]int

	// CompletionYards holds yards on completions (touchdowns included).
	CompletionYards []float64
	// NetPuntYards holds signed net distance for every punt.
	NetPuntYards []float64
}

func newAggregate(scenario string, capacity int) *Aggregate {
	return &Aggregate{
		Scenario:        scenario,
		Outcomes:        make(map[types.Outcome]int),
		CompletionYards: make([]float64, 0, capacity),
		NetPuntYards:    make([]float64, 0, capacity),
	}
}

func (a *Aggregate) add(r types.PlayResult) {
	a.Samples++
	a.Outcomes[r.Outcome]++

	switch r.Family {
	case types.FamilyPass:
		if r.Outcome == types.OutcomeComplete || r.Outcome == types.OutcomeCompleteTouchdown {
			a.CompletionYards = append(a.CompletionYards, float64(r.Yards))
		}
	case types.FamilyPunt:
		a.NetPuntYards = append(a.NetPuntYards, float64(r.Yards))
	}
}

func (a *Aggregate) count(outcomes ...types.Outcome) int {
	n := 0
	for _, o := range outcomes {
		n += a.Outcomes[o]
	}
	return n
}

// Attempts is pass plays where a throw got off, the denominator for
// completion percentage and yards per attempt.
func (a *Aggregate) Attempts() int {
	return a.Samples - a.Outcomes[types.OutcomeSack]
}

func (a *Aggregate) CompletionRate() float64 {
	return ratio(a.count(types.OutcomeComplete, types.OutcomeCompleteTouchdown), a.Attempts())
}

func (a *Aggregate) YardsPerAttempt() float64 {
	attempts := a.Attempts()
	if attempts == 0 {
		return 0
	}
	total := 0.0
	for _, y := range a.CompletionYards {
		total += y
	}
	return total / float64(attempts)
}

func (a *Aggregate) SackRate() float64 {
	return ratio(a.Outcomes[types.OutcomeSack], a.Samples)
}

func (a *Aggregate) InterceptionRate() float64 {
	return ratio(a.Outcomes[types.OutcomeInterception], a.Samples)
}

func (a *Aggregate) TouchdownRate() float64 {
	return ratio(a.Outcomes[types.OutcomeCompleteTouchdown], a.Samples)
}

func (a *Aggregate) NetPuntAverage() float64 {
	if len(a.NetPuntYards) == 0 {
		return 0
	}
	return stat.Mean(a.NetPuntYards, nil)
}

func (a *Aggregate) NetPuntStdDev() float64 {
	if len(a.NetPuntYards) < 2 {
		return 0
	}
	return stat.StdDev(a.NetPuntYards, nil)
}

func (a *Aggregate) TouchbackRate() float64 {
	return ratio(a.Outcomes[types.OutcomeTouchback], a.Samples)
}

func (a *Aggregate) BlockRate() float64 {
	return ratio(a.Outcomes[types.OutcomePuntBlocked], a.Samples)
}

func (a *Aggregate) FairCatchRate() float64 {
	return ratio(a.Outcomes[types.OutcomeFairCatch], a.Samples)
}

func (a *Aggregate) ReturnTouchdownRate() float64 {
	return ratio(a.Outcomes[types.OutcomeReturnTouchdown], a.Samples)
}

func (a *Aggregate) TurnoverRate() float64 {
	turnovers := 0
	for outcome, n := range a.Outcomes {
		switch outcome {
		case types.OutcomeInterception, types.OutcomePuntMuffed, types.OutcomePuntBlocked:
			turnovers += n
		}
	}
	return ratio(turnovers, a.Samples)
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
