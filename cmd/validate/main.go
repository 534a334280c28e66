// Command validate runs the statistical validation scenarios against the
// configured concept matrix and prints the graded reports. It exits non-zero
// when any statistic falls outside its tolerance band, so it can gate CI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/validation"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
)

func main() {
	var (
		passSamples = flag.Int("pass-samples", 10000, "number of pass plays to simulate")
		puntSamples = flag.Int("punt-samples", 10000, "number of punts to simulate")
		workers     = flag.Int("workers", 0, "worker goroutines (0 = CPU count)")
		seed        = flag.Int64("seed", 1, "random seed shared by all workers")
		matrixPath  = flag.String("matrix", "", "optional concept matrix override file (YAML)")
		scenario    = flag.String("scenario", "all", "scenario to run: all, pass, or punt")
		logLevel    = flag.String("log-level", "warn", "log level during the run")
	)
	flag.Parse()

	log := logger.InitLogger(*logLevel, false)

	store, err := matrix.LoadStore(*matrixPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load concept matrix: %v\n", err)
		os.Exit(2)
	}

	eng, err := engine.New(store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build engine: %v\n", err)
		os.Exit(2)
	}

	harness := validation.NewHarness(eng, *workers, *seed)

	var reports []*validation.Report
	switch *scenario {
	case "all":
		reports, err = harness.ValidateAll(*passSamples, *puntSamples)
	case "pass":
		var r *validation.Report
		r, err = harness.ValidatePass(*passSamples)
		reports = append(reports, r)
	case "punt":
		var r *validation.Report
		r, err = harness.ValidatePunt(*puntSamples)
		reports = append(reports, r)
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q (want all, pass, or punt)\n", *scenario)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation run failed: %v\n", err)
		os.Exit(2)
	}

	failed := false
	for _, r := range reports {
		fmt.Println(r.Render())
		if !r.Passed() {
			failed = true
		}
	}

	if failed {
		fmt.Fprintln(os.Stderr, "validation FAILED: one or more statistics out of tolerance")
		os.Exit(1)
	}
	fmt.Println("validation passed")
}
