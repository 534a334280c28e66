package matrix

import (
	"fmt"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// Role identifies which participant a weight table scores.
type Role string

const (
	RoleThrower  Role = "thrower"
	RoleReceiver Role = "receiver"
	RoleKicker   Role = "kicker"
)

// PassParams holds the pass-family base rates for a concept.
type PassParams struct {
	CompletionRate   float64 `mapstructure:"completion_rate"`
	BaseYards        float64 `mapstructure:"base_yards"`
	TimeToThrow      float64 `mapstructure:"time_to_throw"`
	PressureExposure float64 `mapstructure:"pressure_exposure"`
	InterceptionBase float64 `mapstructure:"interception_base"`
	Variance         float64 `mapstructure:"variance"`
}

// PuntParams holds the punt-family base rates for a concept. The chain bases
// are conditional probabilities evaluated in the punt state machine's fixed
// transition order.
type PuntParams struct {
	GrossDistance    float64 `mapstructure:"gross_distance"`
	Variance         float64 `mapstructure:"variance"`
	HangTime         float64 `mapstructure:"hang_time"`
	OperationTime    float64 `mapstructure:"operation_time"`
	BlockExposure    float64 `mapstructure:"block_exposure"`
	OutOfBoundsBase  float64 `mapstructure:"out_of_bounds_base"`
	CoffinCornerBase float64 `mapstructure:"coffin_corner_base"`
	IllegalTouchBase float64 `mapstructure:"illegal_touch_base"`
	MuffBase         float64 `mapstructure:"muff_base"`
	DownedBase       float64 `mapstructure:"downed_base"`
	FairCatchBase    float64 `mapstructure:"fair_catch_base"`
	ReturnBase       float64 `mapstructure:"return_base"`
}

// Entry is one row of the concept matrix: attribute weights per role, base
// rates for its family, and the multiplicative posture modifier table. For
// pass concepts the posture modifier scales the completion rate; for punt
// concepts it scales block exposure.
type Entry struct {
	Concept          types.Concept
	Weights          map[Role]map[string]float64
	PostureModifiers map[types.Posture]float64
	Pass             *PassParams
	Punt             *PuntParams
}

// Family returns the play family of the entry.
func (e *Entry) Family() types.Family {
	return e.Concept.Family()
}

// PostureModifier returns the modifier for a posture. Validation guarantees
// the table is complete, so a miss here is a programming error.
func (e *Entry) PostureModifier(p types.Posture) float64 {
	m, ok := e.PostureModifiers[p]
	if !ok {
		panic(fmt.Sprintf("matrix: concept %s has no modifier for posture %s", e.Concept, p))
	}
	return m
}

// RoleWeights returns the weight table for a role, or nil when the concept
// does not score that role.
func (e *Entry) RoleWeights(role Role) map[string]float64 {
	return e.Weights[role]
}

func (e *Entry) validate() error {
	if len(e.Weights) == 0 {
		return fmt.Errorf("concept %s: empty weight table", e.Concept)
	}
	for role, weights := range e.Weights {
		if len(weights) == 0 {
			return fmt.Errorf("concept %s: role %s has no weighted attributes", e.Concept, role)
		}
		for attr, w := range weights {
			if w <= 0 {
				return fmt.Errorf("concept %s: role %s attribute %s has non-positive weight %f", e.Concept, role, attr, w)
			}
		}
	}
	for _, p := range types.Postures() {
		m, ok := e.PostureModifiers[p]
		if !ok {
			return fmt.Errorf("concept %s: missing posture modifier for %s", e.Concept, p)
		}
		if m <= 0 {
			return fmt.Errorf("concept %s: non-positive posture modifier %f for %s", e.Concept, m, p)
		}
	}
	switch e.Family() {
	case types.FamilyPass:
		if e.Pass == nil {
			return fmt.Errorf("concept %s: missing pass params", e.Concept)
		}
		if e.Pass.CompletionRate <= 0 || e.Pass.CompletionRate > 1 {
			return fmt.Errorf("concept %s: completion rate %f outside (0,1]", e.Concept, e.Pass.CompletionRate)
		}
		if e.Pass.InterceptionBase < 0 || e.Pass.InterceptionBase > 1 {
			return fmt.Errorf("concept %s: interception base %f outside [0,1]", e.Concept, e.Pass.InterceptionBase)
		}
		if e.Pass.Variance <= 0 {
			return fmt.Errorf("concept %s: non-positive variance", e.Concept)
		}
		if e.Pass.TimeToThrow <= 0 || e.Pass.PressureExposure <= 0 {
			return fmt.Errorf("concept %s: non-positive timing params", e.Concept)
		}
	case types.FamilyPunt:
		if e.Punt == nil {
			return fmt.Errorf("concept %s: missing punt params", e.Concept)
		}
		if e.Punt.GrossDistance <= 0 || e.Punt.Variance <= 0 {
			return fmt.Errorf("concept %s: non-positive distance params", e.Concept)
		}
		for name, p := range map[string]float64{
			"out_of_bounds_base": e.Punt.OutOfBoundsBase,
			"coffin_corner_base": e.Punt.CoffinCornerBase,
			"illegal_touch_base": e.Punt.IllegalTouchBase,
			"muff_base":          e.Punt.MuffBase,
			"downed_base":        e.Punt.DownedBase,
			"fair_catch_base":    e.Punt.FairCatchBase,
		} {
			if p < 0 || p > 1 {
				return fmt.Errorf("concept %s: %s %f outside [0,1]", e.Concept, name, p)
			}
		}
	}
	return nil
}
