// Package pressure derives sack and punt-block probabilities from the
// matchup between the protection unit and the rush.
package pressure

import (
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/types"
)

const (
	baseSackRate      = 0.065
	basePuntBlockRate = 0.012

	// How hard the protection-vs-rush differential swings the base rate.
	sackSwing  = 0.25
	blockSwing = 0.08

	// Supplemental protectors contribute a capped amount each so one elite
	// back cannot offset a weak line.
	perProtectorCap    = 0.06
	totalProtectorCap  = 0.15
	blitzStep          = 0.18
	perBlitzerCap      = 0.05
	totalBlitzerCap    = 0.12
	safetyBlitzFactor  = 0.08
	mobilityReliefSpan = 0.6
)

// SackProbability returns the probability the thrower is brought down before
// releasing, given the protection matchup, the concept's time to throw, and
// the thrower's mobility. The outcome sampler consumes this value; the model
// itself never decides whether a sack occurs.
func SackProbability(pkg *types.PersonnelPackage, entry *matrix.Entry, posture types.Posture) float64 {
	diff := rushScore(pkg, posture) - protectionScore(pkg)

	p := (baseSackRate + sackSwing*diff) * entry.Pass.PressureExposure

	// A mobile thrower escapes pressure independent of protection quality.
	mobility := types.RatingNeutral
	if pkg.Thrower != nil && pkg.Thrower.Mobility != 0 {
		mobility = pkg.Thrower.Mobility
	}
	p *= 1.0 + mobilityReliefSpan*(0.5-mobility.Norm())

	return clamp01(p)
}

// BlockProbability returns the probability the punt is blocked. The posture
// modifier table for punt concepts scales block exposure, so a rush-heavy
// look sharply raises it and a safe return look suppresses it.
func BlockProbability(pkg *types.PersonnelPackage, entry *matrix.Entry, posture types.Posture) float64 {
	diff := rushScore(pkg, posture) - protectionScore(pkg)

	p := (basePuntBlockRate + blockSwing*diff) * entry.Punt.BlockExposure * entry.PostureModifier(posture)

	return clamp01(p)
}

// protectionScore combines the line with capped supplements from backs and
// tight ends kept in to protect.
func protectionScore(pkg *types.PersonnelPackage) float64 {
	score := 0.8 * pkg.OffensiveLine.Norm()

	extra := 0.0
	for _, b := range pkg.ExtraProtectors {
		if b == nil {
			continue
		}
		contribution := perProtectorCap * b.PassProtection.Norm()
		if contribution > perProtectorCap {
			contribution = perProtectorCap
		}
		extra += contribution
	}
	if extra > totalProtectorCap {
		extra = totalProtectorCap
	}
	return score + extra
}

// rushScore combines the front with blitz contributions. A safety blitz adds
// secondary-specific pressure a standard blitz does not.
func rushScore(pkg *types.PersonnelPackage, posture types.Posture) float64 {
	score := 0.8 * pkg.RushFront.Norm()

	if posture.IsBlitz() {
		score += blitzStep

		extra := 0.0
		for _, r := range pkg.Blitzers {
			if r == nil {
				continue
			}
			extra += perBlitzerCap * r.PassRush.Norm()
		}
		if extra > totalBlitzerCap {
			extra = totalBlitzerCap
		}
		score += extra

		if posture == types.PostureSafetyBlitz {
			score += safetyBlitzFactor * (0.5 + pkg.SecondaryRush.Norm())
		}
	}

	return score
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
