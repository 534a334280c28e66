package api

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/gridiron-sim/internal/api/handlers"
	"github.com/stitts-dev/gridiron-sim/internal/api/middleware"
	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/stream"
	"github.com/stitts-dev/gridiron-sim/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, eng *engine.Engine, hub *stream.Hub, cfg *config.Config) {
	simulationHandler := handlers.NewSimulationHandler(eng, hub, cfg)
	calibrationHandler := handlers.NewCalibrationHandler(eng, cfg)

	// Simulation endpoints share one token bucket. Calibration runs are far
	// heavier than single plays, so they sit behind the same limiter.
	simulate := group.Group("")
	simulate.Use(middleware.RateLimit(float64(cfg.SimulateRateLimit), cfg.SimulateRateBurst))
	{
		simulate.POST("/simulate/pass", simulationHandler.SimulatePass)
		simulate.POST("/simulate/punt", simulationHandler.SimulatePunt)
		simulate.POST("/simulate/batch", simulationHandler.SimulateBatch)

		simulate.POST("/calibration/run", calibrationHandler.RunCalibration)
	}

	// WebSocket endpoint lives at the server root, wired in main.go
}
