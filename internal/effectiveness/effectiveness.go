// Package effectiveness scores a participant's attributes against a
// concept's weighted requirements, producing a normalized [0,1] value.
package effectiveness

import (
	"math"

	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// steepness controls the saturating curve. At 6.0 a near-maximal attribute
// set maps to ~0.95 and a 25th-percentile set to ~0.18, with league-average
// input landing on 0.5.
const steepness = 6.0

// Neutral is the exact fallback for a missing participant or empty weights.
const Neutral = 0.5

// Score computes the weighted-average attribute quality of the participant
// for the given weight table and maps it through the saturating curve.
// A nil participant, an empty weight table, or an unset attribute each fall
// back to the neutral value deterministically.
func Score(p types.Participant, weights map[string]float64) float64 {
	if p == nil || len(weights) == 0 {
		return Neutral
	}

	var weighted, total float64
	for attr, w := range weights {
		norm := Neutral
		if r, ok := p.Attribute(attr); ok && r != 0 {
			norm = r.Norm()
		}
		weighted += w * norm
		total += w
	}
	if total == 0 {
		return Neutral
	}

	return saturate(weighted / total)
}

// ScoreRole scores a participant against the role-specific weights of a
// matrix entry. Concepts that do not weight the role yield neutral.
func ScoreRole(p types.Participant, entry *matrix.Entry, role matrix.Role) float64 {
	return Score(p, entry.RoleWeights(role))
}

// saturate maps a [0,1] weighted average through a logistic curve centered
// at 0.5, so elite attribute sets approach 1.0 and weak sets fall well below
// 0.5. The curve is symmetric: saturate(0.5) == 0.5 exactly.
func saturate(x float64) float64 {
	v := 1.0 / (1.0 + math.Exp(-steepness*(x-0.5)))
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
