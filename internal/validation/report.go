package validation

import (
	"fmt"
	"math"
	"strings"
)

// StatResult is the graded outcome for one statistic.
type StatResult struct {
	Name         string  `json:"name"`
	Observed     float64 `json:"observed"`
	Target       float64 `json:"target"`
	TolerancePct float64 `json:"tolerance_pct"`
	DeviationPct float64 `json:"deviation_pct"`
	Pass         bool    `json:"pass"`
}

// Report is the itemized result of grading one scenario.
type Report struct {
	Scenario   string       `json:"scenario"`
	SampleSize int          `json:"sample_size"`
	Seed       int64        `json:"seed"`
	Stats      []StatResult `json:"stats"`
	PassRate   float64      `json:"pass_rate"`
}

func gradeStatistic(b Benchmark, observed float64) StatResult {
	deviation := 0.0
	if b.Target != 0 {
		deviation = (observed - b.Target) / b.Target * 100
	} else if observed != 0 {
		deviation = 100
	}
	return StatResult{
		Name:         b.Name,
		Observed:     observed,
		Target:       b.Target,
		TolerancePct: b.TolerancePct,
		DeviationPct: deviation,
		Pass:         math.Abs(deviation) <= b.TolerancePct,
	}
}

func (r *Report) finalize() {
	if len(r.Stats) == 0 {
		return
	}
	passed := 0
	for _, s := range r.Stats {
		if s.Pass {
			passed++
		}
	}
	r.PassRate = float64(passed) / float64(len(r.Stats))
}

// Passed reports whether every statistic landed inside its tolerance band.
func (r *Report) Passed() bool {
	for _, s := range r.Stats {
		if !s.Pass {
			return false
		}
	}
	return len(r.Stats) > 0
}

// Render produces the human-readable itemized report used by the CLI and CI
// logs: which statistic drifted, by how much, versus what target.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario %s (n=%d, seed=%d)\n", r.Scenario, r.SampleSize, r.Seed)
	for _, s := range r.Stats {
		status := "PASS"
		if !s.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  [%s] %-24s observed=%.4f target=%.4f deviation=%+.1f%% (tolerance ±%.0f%%)\n",
			status, s.Name, s.Observed, s.Target, s.DeviationPct, s.TolerancePct)
	}
	fmt.Fprintf(&b, "  overall: %.0f%% of statistics in tolerance\n", r.PassRate*100)
	return b.String()
}
