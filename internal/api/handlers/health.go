package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
)

type HealthHandler struct {
	engine *engine.Engine
}

func NewHealthHandler(e *engine.Engine) *HealthHandler {
	return &HealthHandler{engine: e}
}

// GetHealth returns basic liveness plus the loaded concept count, which is a
// cheap proxy for "the matrix store validated at startup".
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "gridiron-sim",
		"timestamp": time.Now().UTC(),
		"concepts":  len(h.engine.Store().Concepts()),
	})
}
