package validation

import (
	"math/rand"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// Scenario drives the pipeline with a repeatable situation generator. Field
// state and defensive call draws come from the worker-owned random stream so
// a fixed seed reproduces the whole sample.
type Scenario struct {
	Name         string
	Family       types.Family
	NewPersonnel func(rng *rand.Rand) *types.PersonnelPackage
	NewField     func(rng *rand.Rand) types.FieldState
}

// MidRangeThrower returns a league-average passer.
func MidRangeThrower() *types.Thrower {
	return &types.Thrower{
		Name:           "Average Thrower",
		Accuracy:       types.RatingNeutral,
		ArmStrength:    types.RatingNeutral,
		DecisionMaking: types.RatingNeutral,
		ReleaseTime:    types.RatingNeutral,
		Mobility:       types.RatingNeutral,
	}
}

// MidRangeReceiver returns a league-average receiver.
func MidRangeReceiver() *types.Receiver {
	return &types.Receiver{
		Name:         "Average Receiver",
		RouteRunning: types.RatingNeutral,
		Hands:        types.RatingNeutral,
		Speed:        types.RatingNeutral,
		Vision:       types.RatingNeutral,
	}
}

// MidRangePunter returns a league-average punter.
func MidRangePunter() *types.Kicker {
	return &types.Kicker{
		Name:        "Average Punter",
		LegStrength: types.RatingNeutral,
		HangTime:    types.RatingNeutral,
		Placement:   types.RatingNeutral,
		Composure:   types.RatingNeutral,
	}
}

// drawDefensiveCall approximates league call distribution on passing downs.
func drawDefensiveCall(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r < 0.45:
		return "zone"
	case r < 0.75:
		return "man"
	case r < 0.90:
		return "blitz"
	case r < 0.95:
		return "safety_blitz"
	default:
		return "prevent"
	}
}

// GenericPassScenario is the primary calibration scenario: early downs,
// ten to go, field position spread across a realistic drive range, league
// average personnel on both sides.
func GenericPassScenario() Scenario {
	return Scenario{
		Name:   "generic_pass",
		Family: types.FamilyPass,
		NewPersonnel: func(rng *rand.Rand) *types.PersonnelPackage {
			pkg := types.NewPersonnelPackage("shotgun", drawDefensiveCall(rng))
			pkg.Thrower = MidRangeThrower()
			pkg.PrimaryReceiver = MidRangeReceiver()
			return pkg
		},
		NewField: func(rng *rand.Rand) types.FieldState {
			down := 1
			if rng.Float64() < 0.25 {
				down = 2
			}
			return types.NewFieldState(down, 10, 20+rng.Intn(76))
		},
	}
}

// MidfieldPuntScenario punts from the fifty with average units.
func MidfieldPuntScenario() Scenario {
	return Scenario{
		Name:   "midfield_punt",
		Family: types.FamilyPunt,
		NewPersonnel: func(rng *rand.Rand) *types.PersonnelPackage {
			pkg := types.NewPersonnelPackage("punt", "punt_return")
			pkg.Punter = MidRangePunter()
			pkg.Returner = MidRangeReceiver()
			return pkg
		},
		NewField: func(rng *rand.Rand) types.FieldState {
			return types.NewFieldState(4, 8, 50)
		},
	}
}
