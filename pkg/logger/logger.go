package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger initializes the structured logger with proper configuration
func InitLogger(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	// Override with environment if not provided
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)

	Logger = log

	return log
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", false)
	}
	return Logger
}

// WithEngine creates a logger with engine context
func WithEngine(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// WithPlayContext creates a logger with per-play context
func WithPlayContext(playID, concept, posture string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"play_id": playID,
		"concept": concept,
		"posture": posture,
	})
}

// WithScenario creates a logger with validation-scenario context
func WithScenario(scenario string, sampleSize int) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"scenario":    scenario,
		"sample_size": sampleSize,
	})
}

// WithSession creates a logger with batch-session context
func WithSession(sessionID string) *logrus.Entry {
	return GetLogger().WithField("session_id", sessionID)
}
