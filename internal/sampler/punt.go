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

// puntState enumerates the punt resolution state machine. The transition
// table below is ordered and exhaustive: resolution walks it top-down from
// puntPending and stops at the first state with no outgoing transition.
// touchbackSpot is where the receiving team takes over after a touchback.
const touchbackSpot = 20

type puntState int

const (
	puntPending puntState = iota
	puntBlocked
	puntInFlight
	puntTouchback
	puntOutOfBounds
	puntCoffinCorner
	puntIllegalTouching
	puntReturnable
	puntMuffed
	puntDowned
	puntFairCatch
	puntReturned
	puntReturnTouchdown
)

type puntContext struct {
	entry   *matrix.Entry
	field   types.FieldState
	pkg     *types.PersonnelPackage
	posture types.Posture
	rng     *rand.Rand

	kickEff     float64
	gross       int
	landing     int
	returnYards int
}

type puntTransition struct {
	from  puntState
	to    puntState
	guard func(*puntContext) bool
}

// puntTransitions is the fixed-priority transition table. Guard order is the
// contract: block first, then flight placement, then the return chain.
var puntTransitions = []puntTransition{
	{puntPending, puntBlocked, guardBlocked},
	{puntPending, puntInFlight, guardKick},

	{puntInFlight, puntTouchback, guardTouchback},
	{puntInFlight, puntCoffinCorner, guardCoffinCorner},
	{puntInFlight, puntOutOfBounds, guardOutOfBounds},
	{puntInFlight, puntIllegalTouching, guardIllegalTouching},
	{puntInFlight, puntReturnable, nil},

	{puntReturnable, puntMuffed, guardMuffed},
	{puntReturnable, puntDowned, guardDowned},
	{puntReturnable, puntFairCatch, guardFairCatch},
	{puntReturnable, puntReturned, guardReturn},

	{puntReturned, puntReturnTouchdown, guardHouseCall},
}

// ResolvePunt runs the punt state machine to a terminal state and renders it
// as a PlayResult. Yards are net punt distance from the line of scrimmage.
func ResolvePunt(entry *matrix.Entry, field types.FieldState, pkg *types.PersonnelPackage, posture types.Posture, rng *rand.Rand) types.PlayResult {
	ctx := &puntContext{
		entry:   entry,
		field:   field,
		pkg:     pkg,
		posture: posture,
		rng:     rng,
		kickEff: effectiveness.ScoreRole(kickerParticipant(pkg.Punter), entry, matrix.RoleKicker),
	}

	state := puntPending
	for {
		next, moved := ctx.step(state)
		if !moved {
			break
		}
		state = next
	}
	return ctx.finish(state)
}

func (ctx *puntContext) step(state puntState) (puntState, bool) {
	for _, t := range puntTransitions {
		if t.from != state {
			continue
		}
		if t.guard == nil || t.guard(ctx) {
			return t.to, true
		}
	}
	return state, false
}

func guardBlocked(ctx *puntContext) bool {
	return ctx.rng.Float64() < pressure.BlockProbability(ctx.pkg, ctx.entry, ctx.posture)
}

// guardKick always fires; it draws the gross distance as a side effect so
// downstream guards see the landing spot.
func guardKick(ctx *puntContext) bool {
	mean := ctx.entry.Punt.GrossDistance * (0.7 + 0.6*ctx.kickEff)
	dist := NewTruncatedNormalDistribution(mean, ctx.entry.Punt.Variance, 5, 75)
	ctx.gross = int(math.Round(dist.Sample(ctx.rng)))
	ctx.landing = ctx.field.FieldPosition + ctx.gross
	return true
}

func guardTouchback(ctx *puntContext) bool {
	return ctx.landing >= 100
}

// Coffin corner only applies when the ball comes down inside the opponent 10.
func guardCoffinCorner(ctx *puntContext) bool {
	if ctx.landing <= types.GoalLinePosition {
		return false
	}
	return ctx.rng.Float64() < clamp01(ctx.entry.Punt.CoffinCornerBase*(0.5+ctx.kickEff))
}

func guardOutOfBounds(ctx *puntContext) bool {
	return ctx.rng.Float64() < ctx.entry.Punt.OutOfBoundsBase
}

func guardIllegalTouching(ctx *puntContext) bool {
	return ctx.rng.Float64() < ctx.entry.Punt.IllegalTouchBase
}

func guardMuffed(ctx *puntContext) bool {
	return ctx.rng.Float64() < ctx.entry.Punt.MuffBase
}

func guardDowned(ctx *puntContext) bool {
	p := ctx.entry.Punt.DownedBase * (0.5 + ctx.pkg.PuntCoverage.Norm())
	return ctx.rng.Float64() < clamp01(p)
}

func guardFairCatch(ctx *puntContext) bool {
	p := ctx.entry.Punt.FairCatchBase * (0.6 + 0.8*ctx.kickEff)
	return ctx.rng.Float64() < clamp01(p)
}

// guardReturn always fires; it draws return yardage, shortened by coverage
// quality and stretched by the returner.
func guardReturn(ctx *puntContext) bool {
	returnerEff := effectiveness.Score(receiverParticipant(ctx.pkg.Returner), map[string]float64{
		types.AttrSpeed:  0.5,
		types.AttrVision: 0.5,
	})

	target := ctx.entry.Punt.ReturnBase
	target *= 1.5 - ctx.pkg.PuntCoverage.Norm()
	target *= 0.7 + 0.6*returnerEff

	// The distribution runs all the way to the landing spot so the
	// house-call tail exists on every returnable punt.
	dist := NewReturnDistribution(target, float64(ctx.landing))
	ctx.returnYards = int(math.Round(dist.Sample(ctx.rng)))
	if ctx.returnYards < 0 {
		ctx.returnYards = 0
	}
	if ctx.returnYards > ctx.landing {
		ctx.returnYards = ctx.landing
	}
	return true
}

func guardHouseCall(ctx *puntContext) bool {
	return ctx.returnYards >= ctx.landing
}

func (ctx *puntContext) finish(state puntState) types.PlayResult {
	result := types.PlayResult{
		ID:      uuid.New(),
		Family:  types.FamilyPunt,
		Concept: ctx.entry.Concept,
		Posture: ctx.posture,
	}
	op := ctx.entry.Punt.OperationTime
	hang := ctx.entry.Punt.HangTime

	switch state {
	case puntBlocked:
		loss := ctx.rng.Intn(13)
		if loss > ctx.field.FieldPosition {
			loss = ctx.field.FieldPosition
		}
		result.Outcome = types.OutcomePuntBlocked
		result.Yards = -loss
		result.Turnover = true
		result.Elapsed = op + 1.0
	case puntTouchback:
		result.Outcome = types.OutcomeTouchback
		result.Yards = (100 - touchbackSpot) - ctx.field.FieldPosition
		result.Elapsed = op + hang
	case puntCoffinCorner:
		result.Outcome = types.OutcomeCoffinCorner
		result.Yards = ctx.gross
		result.Elapsed = op + hang
	case puntOutOfBounds:
		result.Outcome = types.OutcomeOutOfBounds
		result.Yards = ctx.gross
		result.Elapsed = op + hang
	case puntIllegalTouching:
		result.Outcome = types.OutcomeIllegalTouching
		result.Yards = ctx.gross
		result.Elapsed = op + hang + 1.0
	case puntMuffed:
		result.Outcome = types.OutcomePuntMuffed
		result.Yards = ctx.gross
		result.Turnover = true
		result.Elapsed = op + hang + 1.5
	case puntDowned:
		result.Outcome = types.OutcomePuntDowned
		result.Yards = ctx.gross
		result.Elapsed = op + hang + 1.5
	case puntFairCatch:
		result.Outcome = types.OutcomeFairCatch
		result.Yards = ctx.gross
		result.Elapsed = op + hang
	case puntReturned:
		result.Outcome = types.OutcomeReturned
		result.Yards = ctx.gross - ctx.returnYards
		result.Elapsed = op + hang + 0.08*float64(ctx.returnYards)
	case puntReturnTouchdown:
		result.Outcome = types.OutcomeReturnTouchdown
		result.Yards = ctx.gross - ctx.returnYards
		result.Score = true
		result.Elapsed = op + hang + 0.08*float64(ctx.returnYards)
	default:
		// Unreachable with a validated transition table; resolve safely as
		// a fair catch rather than fail a play.
		result.Outcome = types.OutcomeFairCatch
		result.Yards = ctx.gross
		result.Elapsed = op + hang
	}
	return result
}
