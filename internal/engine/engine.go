// Package engine ties the classifier, matrix store, and samplers into the
// play simulation entry points.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/gridiron-sim/internal/classifier"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/sampler"
	"github.com/stitts-dev/gridiron-sim/internal/types"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
)

// Engine simulates individual plays against a validated concept matrix.
// It holds no mutable state: every call is a pure computation from the field
// state, personnel, and the caller-owned random source, so a single Engine
// is safe to share across goroutines.
type Engine struct {
	store *matrix.Store
	log   *logrus.Logger
}

// New constructs an engine over a store. The store must already have passed
// validation; New re-checks so a hand-built store cannot slip through.
func New(store *matrix.Store, log *logrus.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("engine requires a concept matrix store")
	}
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to simulate with invalid matrix: %w", err)
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &Engine{store: store, log: log}, nil
}

// Store exposes the read-only concept matrix.
func (e *Engine) Store() *matrix.Store {
	return e.store
}

// Simulate dispatches on the formation's play family.
func (e *Engine) Simulate(field types.FieldState, pkg *types.PersonnelPackage, rng *rand.Rand) types.PlayResult {
	if classifier.IsPuntFormation(pkg.Formation) {
		return e.SimulatePunt(field, pkg, rng)
	}
	return e.SimulatePass(field, pkg, rng)
}

// SimulatePass resolves one pass play. Every valid call returns a
// well-formed PlayResult; there is no per-play failure mode.
func (e *Engine) SimulatePass(field types.FieldState, pkg *types.PersonnelPackage, rng *rand.Rand) types.PlayResult {
	concept := classifier.Classify(pkg.Formation, field)
	if concept.Family() != types.FamilyPass {
		// Pass requested from a punt look: fall back to the baseline table.
		concept = classifier.Classify("", field)
	}
	posture := classifier.ClassifyPosture(pkg.DefensiveCall)

	entry := e.mustEntry(concept)
	result := sampler.ResolvePass(entry, field, pkg, posture, rng)

	logger.WithPlayContext(result.ID.String(), string(concept), string(posture)).
		WithFields(logrus.Fields{"outcome": result.Outcome, "yards": result.Yards}).
		Debug("Resolved pass play")
	return result
}

// SimulatePunt resolves one punt.
func (e *Engine) SimulatePunt(field types.FieldState, pkg *types.PersonnelPackage, rng *rand.Rand) types.PlayResult {
	concept := classifier.Classify(pkg.Formation, field)
	if concept.Family() != types.FamilyPunt {
		concept = classifier.Classify("punt", field)
	}
	posture := classifier.ClassifyPosture(pkg.DefensiveCall)

	entry := e.mustEntry(concept)
	result := sampler.ResolvePunt(entry, field, pkg, posture, rng)

	logger.WithPlayContext(result.ID.String(), string(concept), string(posture)).
		WithFields(logrus.Fields{"outcome": result.Outcome, "yards": result.Yards}).
		Debug("Resolved punt play")
	return result
}

// mustEntry fetches a matrix row the classifier is only able to emit if the
// validated store contains it. A miss here means the store was mutated after
// validation, which is a programming error worth crashing on.
func (e *Engine) mustEntry(c types.Concept) *matrix.Entry {
	entry, err := e.store.Entry(c)
	if err != nil {
		panic(err)
	}
	return entry
}
