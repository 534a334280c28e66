package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/validation"
	"github.com/stitts-dev/gridiron-sim/pkg/config"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
	"github.com/stitts-dev/gridiron-sim/pkg/utils"
)

type CalibrationHandler struct {
	engine *engine.Engine
	cfg    *config.Config
}

func NewCalibrationHandler(e *engine.Engine, cfg *config.Config) *CalibrationHandler {
	return &CalibrationHandler{engine: e, cfg: cfg}
}

type calibrationRequest struct {
	PassSamples int    `json:"pass_samples"`
	PuntSamples int    `json:"punt_samples"`
	Workers     int    `json:"workers"`
	Seed        *int64 `json:"seed"`
}

type calibrationResponse struct {
	Passed  bool                 `json:"passed"`
	Reports []*validation.Report `json:"reports"`
}

// RunCalibration executes the built-in validation scenarios and returns the
// graded reports. Punt grading covers rare events (blocks, return scores), so
// the punt sample defaults as large as the pass sample.
func (h *CalibrationHandler) RunCalibration(c *gin.Context) {
	var req calibrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if req.PassSamples <= 0 {
		req.PassSamples = 10000
	}
	if req.PuntSamples <= 0 {
		req.PuntSamples = 10000
	}
	if req.PassSamples > h.cfg.MaxSimulations || req.PuntSamples > h.cfg.MaxSimulations {
		utils.SendValidationError(c, "Sample too large", "samples exceed MAX_SIMULATIONS")
		return
	}

	seed := h.cfg.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	harness := validation.NewHarness(h.engine, req.Workers, seed)
	reports, err := harness.ValidateAll(req.PassSamples, req.PuntSamples)
	if err != nil {
		logger.WithEngine("calibration").WithError(err).Error("Calibration run failed")
		utils.SendInternalError(c, "Calibration run failed")
		return
	}

	resp := calibrationResponse{Passed: true, Reports: reports}
	for _, r := range reports {
		if !r.Passed() {
			resp.Passed = false
		}
	}
	utils.SendSuccess(c, resp)
}
