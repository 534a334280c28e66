package validation

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/types"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
)

// Harness drives the full simulation pipeline over large samples and checks
// aggregate rates against the documented benchmarks. It is a read-only
// consumer of the engine: it never alters engine behavior.
type Harness struct {
	engine  *engine.Engine
	workers int
	seed    int64
	log     *logrus.Logger
}

// NewHarness builds a harness. workers <= 0 uses the CPU count. The seed
// fixes every worker's random stream, so a run is reproducible for a given
// (seed, workers) pair.
func NewHarness(e *engine.Engine, workers int, seed int64) *Harness {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Harness{
		engine:  e,
		workers: workers,
		seed:    seed,
		log:     logger.GetLogger(),
	}
}

// Run simulates sampleSize plays of the scenario across the worker pool and
// returns the aggregate. The sample is statically partitioned: worker w
// always simulates the same fixed count from its own random stream, so a
// (seed, workers) pair reproduces the sample regardless of scheduling.
func (h *Harness) Run(scenario Scenario, sampleSize int) (*Aggregate, error) {
	if sampleSize < 1 {
		return nil, fmt.Errorf("sample size must be positive, got %d", sampleSize)
	}

	results := make(chan types.PlayResult, sampleSize)

	base := sampleSize / h.workers
	extra := sampleSize % h.workers

	var wg sync.WaitGroup
	for w := 0; w < h.workers; w++ {
		count := base
		if w < extra {
			count++
		}
		if count == 0 {
			continue
		}
		wg.Add(1)
		go h.simulationWorker(scenario, w, count, results, &wg)
	}

	wg.Wait()
	close(results)

	agg := newAggregate(scenario.Name, sampleSize)
	for r := range results {
		agg.add(r)
	}

	logger.WithScenario(scenario.Name, sampleSize).Debug("Scenario run complete")
	return agg, nil
}

func (h *Harness) simulationWorker(scenario Scenario, workerID, count int, results chan<- types.PlayResult, wg *sync.WaitGroup) {
	defer wg.Done()

	// Worker-owned stream keeps the run reproducible without locking.
	rng := rand.New(rand.NewSource(h.seed + int64(workerID)))

	for i := 0; i < count; i++ {
		field := scenario.NewField(rng)
		pkg := scenario.NewPersonnel(rng)

		var result types.PlayResult
		switch scenario.Family {
		case types.FamilyPunt:
			result = h.engine.SimulatePunt(field, pkg, rng)
		default:
			result = h.engine.SimulatePass(field, pkg, rng)
		}
		results <- result
	}
}

// Validate runs a scenario and grades the aggregate against its benchmarks.
func (h *Harness) Validate(scenario Scenario, benchmarks []Benchmark, sampleSize int) (*Report, error) {
	agg, err := h.Run(scenario, sampleSize)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Scenario:   scenario.Name,
		SampleSize: sampleSize,
		Seed:       h.seed,
	}
	for _, b := range benchmarks {
		observed := b.Observe(agg)
		report.Stats = append(report.Stats, gradeStatistic(b, observed))
	}
	report.finalize()

	entry := logger.WithScenario(scenario.Name, sampleSize)
	if report.Passed() {
		entry.WithField("pass_rate", report.PassRate).Info("Validation scenario passed")
	} else {
		entry.WithField("pass_rate", report.PassRate).Warn("Validation scenario FAILED")
	}
	return report, nil
}

// ValidatePass grades the generic pass scenario against its benchmarks.
func (h *Harness) ValidatePass(sampleSize int) (*Report, error) {
	return h.Validate(GenericPassScenario(), PassBenchmarks(), sampleSize)
}

// ValidatePunt grades the midfield punt scenario against its benchmarks.
func (h *Harness) ValidatePunt(sampleSize int) (*Report, error) {
	return h.Validate(MidfieldPuntScenario(), PuntBenchmarks(), sampleSize)
}

// ValidateAll runs every built-in scenario. Rare punt events need the larger
// sample, so callers typically pass 10000 or more for puntSamples.
func (h *Harness) ValidateAll(passSamples, puntSamples int) ([]*Report, error) {
	passReport, err := h.ValidatePass(passSamples)
	if err != nil {
		return nil, err
	}
	puntReport, err := h.ValidatePunt(puntSamples)
	if err != nil {
		return nil, err
	}
	return []*Report{passReport, puntReport}, nil
}
