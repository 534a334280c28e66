package sampler

import (
	"math"
	"math/rand"
)

// Distribution represents a probability distribution for a play quantity.
type Distribution interface {
	Sample(rng *rand.Rand) float64
	Mean() float64
	StdDev() float64
}

// NormalDistribution represents a normal (Gaussian) distribution
type NormalDistribution struct {
	mean   float64
	stdDev float64
}

func NewNormalDistribution(mean, stdDev float64) *NormalDistribution {
	return &NormalDistribution{
		mean:   mean,
		stdDev: stdDev,
	}
}

func (d *NormalDistribution) Sample(rng *rand.Rand) float64 {
	return rng.NormFloat64()*d.stdDev + d.mean
}

func (d *NormalDistribution) Mean() float64 {
	return d.mean
}

func (d *NormalDistribution) StdDev() float64 {
	return d.stdDev
}

// TruncatedNormalDistribution represents a normal distribution with bounds.
// Sampling rejects draws outside the bounds; after a bounded number of
// rejections it clamps, so a mean far outside the window still terminates.
type TruncatedNormalDistribution struct {
	*NormalDistribution
	min float64
	max float64
}

const truncationRetries = 100

func NewTruncatedNormalDistribution(mean, stdDev, min, max float64) *TruncatedNormalDistribution {
	if max < min {
		max = min
	}
	return &TruncatedNormalDistribution{
		NormalDistribution: NewNormalDistribution(mean, stdDev),
		min:                min,
		max:                max,
	}
}

func (d *TruncatedNormalDistribution) Sample(rng *rand.Rand) float64 {
	for i := 0; i < truncationRetries; i++ {
		sample := d.NormalDistribution.Sample(rng)
		if sample >= d.min && sample <= d.max {
			return sample
		}
	}
	sample := d.NormalDistribution.Sample(rng)
	return math.Max(d.min, math.Min(d.max, sample))
}

// BetaDistribution represents a beta distribution, used for right-skewed
// quantities like punt return yardage where the typical value is short but
// the tail has to reach house-call distance.
type BetaDistribution struct {
	alpha float64
	beta  float64
	scale float64
	shift float64
}

func NewBetaDistribution(alpha, beta, scale, shift float64) *BetaDistribution {
	return &BetaDistribution{
		alpha: alpha,
		beta:  beta,
		scale: scale,
		shift: shift,
	}
}

func (d *BetaDistribution) Sample(rng *rand.Rand) float64 {
	// Beta via two gamma draws
	x := d.sampleGamma(d.alpha, rng)
	y := d.sampleGamma(d.beta, rng)
	return (x/(x+y))*d.scale + d.shift
}

func (d *BetaDistribution) sampleGamma(shape float64, rng *rand.Rand) float64 {
	// Marsaglia and Tsang method for gamma distribution
	if shape < 1 {
		return d.sampleGamma(shape+1, rng) * math.Pow(rng.Float64(), 1/shape)
	}

	d1 := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d1)

	for {
		x := rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}

		v = v * v * v
		u := rng.Float64()

		if u < 1-0.0331*x*x*x*x {
			return d1 * v
		}

		if math.Log(u) < 0.5*x*x+d1*(1-v+math.Log(v)) {
			return d1 * v
		}
	}
}

func (d *BetaDistribution) Mean() float64 {
	return d.alpha/(d.alpha+d.beta)*d.scale + d.shift
}

func (d *BetaDistribution) StdDev() float64 {
	variance := (d.alpha * d.beta) / ((d.alpha + d.beta) * (d.alpha + d.beta) * (d.alpha + d.beta + 1))
	return math.Sqrt(variance) * d.scale
}

// NewReturnDistribution builds the punt-return yardage distribution around a
// target mean. Alpha is fixed for shape; beta is solved so the distribution's
// mean matches the target.
func NewReturnDistribution(targetMean, maxYards float64) *BetaDistribution {
	const alpha = 1.6
	if targetMean < 1 {
		targetMean = 1
	}
	if targetMean > maxYards*0.8 {
		targetMean = maxYards * 0.8
	}
	beta := alpha * (maxYards/targetMean - 1)
	return NewBetaDistribution(alpha, beta, maxYards, 0)
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
