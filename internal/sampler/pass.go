// Package sampler resolves classified plays into discrete outcomes and
// yardage. Resolution order is fixed: pressure first, then the primary
// outcome draw, then yardage, then turnover sub-checks.
package sampler

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/stitts-dev/gridiron-sim/internal/effectiveness"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/pressure"
	"github.com/stitts-dev/gridiron-sim/internal/types"
)

const (
	// Completion probability swings around the base rate with combined
	// effectiveness: neutral personnel reproduces the base rate exactly.
	completionEffFloor = 0.70
	completionEffSpan  = 0.60

	// Yardage scales around base yards the same way.
	yardageEffFloor = 0.55
	yardageEffSpan  = 0.90

	// Interception pressure rises as effectiveness falls and under blitz looks.
	interceptionBlitzFactor  = 1.25
	interceptionSafetyFactor = 1.35

	// Coverage-unit quality swings the completion draw and the interception
	// sub-check; neutral coverage leaves both untouched.
	coverageCompletionSwing   = 0.20
	coverageInterceptionSwing = 0.60

	throwerShare = 0.55

	// Yardage draws on a field-length scale; only the touchdown
	// reclassification pins a scoring catch to the goal line.
	maxCompletionGain = 100.0
)

// ResolvePass runs the pass-family outcome chain: sack check, completion
// draw, yardage draw, interception sub-check. Touchdown is derived, never
// sampled: a completion whose yards reach the goal line is reclassified.
func ResolvePass(entry *matrix.Entry, field types.FieldState, pkg *types.PersonnelPackage, posture types.Posture, rng *rand.Rand) types.PlayResult {
	result := types.PlayResult{
		ID:      uuid.New(),
		Family:  types.FamilyPass,
		Concept: entry.Concept,
		Posture: posture,
	}

	throwerEff := effectiveness.ScoreRole(throwerParticipant(pkg.Thrower), entry, matrix.RoleThrower)
	receiverEff := effectiveness.ScoreRole(receiverParticipant(pkg.PrimaryReceiver), entry, matrix.RoleReceiver)
	eff := clamp01(throwerShare*throwerEff + (1-throwerShare)*receiverEff)

	// Sack check comes first; a sacked thrower never gets the ball out.
	sackP := pressure.SackProbability(pkg, entry, posture)
	if rng.Float64() < sackP {
		loss := 3 + rng.Intn(7)
		if loss > field.FieldPosition {
			loss = field.FieldPosition
		}
		result.Outcome = types.OutcomeSack
		result.Yards = -loss
		result.Elapsed = entry.Pass.TimeToThrow + 1.0
		return result
	}

	covNorm := pkg.Coverage.Norm()

	completionP := clamp01(entry.Pass.CompletionRate * entry.PostureModifier(posture) *
		(completionEffFloor + completionEffSpan*eff) *
		(1 + coverageCompletionSwing*(0.5-covNorm)))
	if rng.Float64() < completionP {
		return resolveCompletion(entry, field, eff, rng, result)
	}

	// Interception sub-check on the failed attempt, weighted by low
	// effectiveness, coverage quality, and blitz postures forcing the throw.
	intP := entry.Pass.InterceptionBase * (1.5 - eff) * (0.7 + coverageInterceptionSwing*covNorm)
	switch posture {
	case types.PostureBlitz:
		intP *= interceptionBlitzFactor
	case types.PostureSafetyBlitz:
		intP *= interceptionSafetyFactor
	}
	if rng.Float64() < clamp01(intP) {
		result.Outcome = types.OutcomeInterception
		result.Yards = 0
		result.Turnover = true
		result.Elapsed = entry.Pass.TimeToThrow + 1.5
		return result
	}

	result.Outcome = types.OutcomeIncomplete
	result.Yards = 0
	result.Elapsed = entry.Pass.TimeToThrow + 1.2
	return result
}

func resolveCompletion(entry *matrix.Entry, field types.FieldState, eff float64, rng *rand.Rand, result types.PlayResult) types.PlayResult {
	mean := entry.Pass.BaseYards * (yardageEffFloor + yardageEffSpan*eff)

	// The draw is not truncated at the goal line: a catch whose raw yardage
	// carries past it scores and is pinned below, keeping the upper tail
	// intact instead of redistributing it across the field.
	dist := NewTruncatedNormalDistribution(mean, entry.Pass.Variance, -4, maxCompletionGain)
	yards := int(math.Round(dist.Sample(rng)))
	if yards < -field.FieldPosition {
		yards = -field.FieldPosition
	}

	result.Yards = yards
	result.Elapsed = entry.Pass.TimeToThrow + 1.2 + 0.12*math.Abs(float64(yards))

	if yards >= field.YardsToGoal() {
		result.Outcome = types.OutcomeCompleteTouchdown
		result.Yards = field.YardsToGoal()
		result.Score = true
		return result
	}

	result.Outcome = types.OutcomeComplete
	return result
}

// Typed nil pointers must not reach the calculator as non-nil interfaces.

func throwerParticipant(t *types.Thrower) types.Participant {
	if t == nil {
		return nil
	}
	return t
}

func receiverParticipant(r *types.Receiver) types.Participant {
	if r == nil {
		return nil
	}
	return r
}

func kickerParticipant(k *types.Kicker) types.Participant {
	if k == nil {
		return nil
	}
	return k
}
