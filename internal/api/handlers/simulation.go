package handlers

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/stream"
	"github.com/stitts-dev/gridiron-sim/internal/types"
	"github.com/stitts-dev/gridiron-sim/pkg/config"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
	"github.com/stitts-dev/gridiron-sim/pkg/utils"
)

type SimulationHandler struct {
	engine *engine.Engine
	hub    *stream.Hub
	cfg    *config.Config
}

func NewSimulationHandler(e *engine.Engine, hub *stream.Hub, cfg *config.Config) *SimulationHandler {
	return &SimulationHandler{engine: e, hub: hub, cfg: cfg}
}

type throwerRequest struct {
	Accuracy       int `json:"accuracy"`
	ArmStrength    int `json:"arm_strength"`
	DecisionMaking int `json:"decision_making"`
	ReleaseTime    int `json:"release_time"`
	Mobility       int `json:"mobility"`
}

type receiverRequest struct {
	RouteRunning int `json:"route_running"`
	Hands        int `json:"hands"`
	Speed        int `json:"speed"`
	Vision       int `json:"vision"`
}

type kickerRequest struct {
	LegStrength int `json:"leg_strength"`
	HangTime    int `json:"hang_time"`
	Placement   int `json:"placement"`
	Composure   int `json:"composure"`
}

type personnelRequest struct {
	Thrower         *throwerRequest  `json:"thrower"`
	PrimaryReceiver *receiverRequest `json:"primary_receiver"`
	Punter          *kickerRequest   `json:"punter"`
	Returner        *receiverRequest `json:"returner"`
	OffensiveLine   int              `json:"offensive_line"`
	RushFront       int              `json:"rush_front"`
	SecondaryRush   int              `json:"secondary_rush"`
	Coverage        int              `json:"coverage"`
	PuntCoverage    int              `json:"punt_coverage"`
	ExtraProtectors []int            `json:"extra_protectors"`
	Blitzers        []int            `json:"blitzers"`
}

type simulateRequest struct {
	Down          int              `json:"down" binding:"required,min=1,max=4"`
	YardsToGo     int              `json:"yards_to_go" binding:"required,min=1"`
	FieldPosition int              `json:"field_position" binding:"min=0,max=100"`
	Formation     string           `json:"formation" binding:"required"`
	DefensiveCall string           `json:"defensive_call" binding:"required"`
	Seed          *int64           `json:"seed"`
	Personnel     personnelRequest `json:"personnel"`
}

func (r *simulateRequest) fieldState() types.FieldState {
	return types.NewFieldState(r.Down, r.YardsToGo, r.FieldPosition)
}

func (r *simulateRequest) personnel() *types.PersonnelPackage {
	pkg := types.NewPersonnelPackage(r.Formation, r.DefensiveCall)
	p := r.Personnel

	if p.Thrower != nil {
		pkg.Thrower = &types.Thrower{
			Accuracy:       types.Rating(p.Thrower.Accuracy),
			ArmStrength:    types.Rating(p.Thrower.ArmStrength),
			DecisionMaking: types.Rating(p.Thrower.DecisionMaking),
			ReleaseTime:    types.Rating(p.Thrower.ReleaseTime),
			Mobility:       types.Rating(p.Thrower.Mobility),
		}
	}
	if p.PrimaryReceiver != nil {
		pkg.PrimaryReceiver = receiverFromRequest(p.PrimaryReceiver)
	}
	if p.Returner != nil {
		pkg.Returner = receiverFromRequest(p.Returner)
	}
	if p.Punter != nil {
		pkg.Punter = &types.Kicker{
			LegStrength: types.Rating(p.Punter.LegStrength),
			HangTime:    types.Rating(p.Punter.HangTime),
			Placement:   types.Rating(p.Punter.Placement),
			Composure:   types.Rating(p.Punter.Composure),
		}
	}

	// Zero means unset: keep the neutral default from the constructor.
	if p.OffensiveLine > 0 {
		pkg.OffensiveLine = types.Rating(p.OffensiveLine)
	}
	if p.RushFront > 0 {
		pkg.RushFront = types.Rating(p.RushFront)
	}
	if p.SecondaryRush > 0 {
		pkg.SecondaryRush = types.Rating(p.SecondaryRush)
	}
	if p.Coverage > 0 {
		pkg.Coverage = types.Rating(p.Coverage)
	}
	if p.PuntCoverage > 0 {
		pkg.PuntCoverage = types.Rating(p.PuntCoverage)
	}
	for _, rating := range p.ExtraProtectors {
		pkg.ExtraProtectors = append(pkg.ExtraProtectors, &types.Blocker{PassProtection: types.Rating(rating)})
	}
	for _, rating := range p.Blitzers {
		pkg.Blitzers = append(pkg.Blitzers, &types.Rusher{PassRush: types.Rating(rating)})
	}
	return pkg
}

func receiverFromRequest(r *receiverRequest) *types.Receiver {
	return &types.Receiver{
		RouteRunning: types.Rating(r.RouteRunning),
		Hands:        types.Rating(r.Hands),
		Speed:        types.Rating(r.Speed),
		Vision:       types.Rating(r.Vision),
	}
}

func (r *simulateRequest) rng() *rand.Rand {
	if r.Seed != nil {
		return rand.New(rand.NewSource(*r.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SimulatePass resolves a single pass play.
func (h *SimulationHandler) SimulatePass(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result := h.engine.SimulatePass(req.fieldState(), req.personnel(), req.rng())
	utils.SendSuccess(c, result)
}

// SimulatePunt resolves a single punt.
func (h *SimulationHandler) SimulatePunt(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result := h.engine.SimulatePunt(req.fieldState(), req.personnel(), req.rng())
	utils.SendSuccess(c, result)
}

type batchRequest struct {
	simulateRequest
	Plays     int    `json:"plays" binding:"required,min=1"`
	SessionID string `json:"session_id"`
}

type batchSummary struct {
	SessionID string                `json:"session_id"`
	Plays     int                   `json:"plays"`
	Outcomes  map[types.Outcome]int `json:"outcomes"`
	NetYards  int                   `json:"net_yards"`
	Turnovers int                   `json:"turnovers"`
	Scores    int                   `json:"scores"`
}

// SimulateBatch runs the same situation many times, streaming each play to
// websocket subscribers of the session topic and returning the aggregate.
func (h *SimulationHandler) SimulateBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Plays > h.cfg.MaxSimulations {
		utils.SendValidationError(c, "Batch too large", "plays exceeds MAX_SIMULATIONS")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	field := req.fieldState()
	pkg := req.personnel()
	rng := req.rng()

	summary := batchSummary{
		SessionID: sessionID,
		Plays:     req.Plays,
		Outcomes:  make(map[types.Outcome]int),
	}

	for i := 0; i < req.Plays; i++ {
		result := h.engine.Simulate(field, pkg, rng)

		summary.Outcomes[result.Outcome]++
		summary.NetYards += result.Yards
		if result.Turnover {
			summary.Turnovers++
		}
		if result.Score {
			summary.Scores++
		}

		if h.hub != nil {
			if err := h.hub.BroadcastToTopic(sessionID, "play_result", result); err != nil {
				logger.WithSession(sessionID).WithError(err).Warn("Failed to broadcast play result")
			}
		}
	}

	utils.SendSuccess(c, summary)
}
