package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/gridiron-sim/internal/api"
	"github.com/stitts-dev/gridiron-sim/internal/api/handlers"
	"github.com/stitts-dev/gridiron-sim/internal/api/middleware"
	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/stream"
	"github.com/stitts-dev/gridiron-sim/pkg/config"
	"github.com/stitts-dev/gridiron-sim/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger("", cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the concept matrix. A matrix that fails validation is a fatal
	// configuration error, not something to limp along with.
	store, err := matrix.LoadStore(cfg.ConceptMatrixPath, log)
	if err != nil {
		log.Fatalf("Failed to load concept matrix: %v", err)
	}

	eng, err := engine.New(store, log)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	// Stream hub for batch play-by-play subscribers
	hub := stream.NewHub()
	go hub.Run()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	healthHandler := handlers.NewHealthHandler(eng)
	router.GET("/health", healthHandler.GetHealth)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, eng, hub, cfg)

	// WebSocket endpoint at root level (not under /api/v1)
	router.GET("/ws", func(c *gin.Context) {
		if err := hub.ServeWS(c.Writer, c.Request); err != nil {
			log.WithError(err).Warn("WebSocket upgrade failed")
		}
	})

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(logrus.Fields{
			"port":     cfg.Port,
			"env":      cfg.Env,
			"concepts": len(store.Concepts()),
		}).Info("Starting gridiron-sim server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
