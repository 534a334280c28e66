package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Engine
	ConceptMatrixPath string `mapstructure:"CONCEPT_MATRIX_PATH"`

	// Simulation
	MaxSimulations    int   `mapstructure:"MAX_SIMULATIONS"`
	SimulationWorkers int   `mapstructure:"SIMULATION_WORKERS"`
	DefaultSeed       int64 `mapstructure:"DEFAULT_SEED"`

	// API rate limiting
	SimulateRateLimit int `mapstructure:"SIMULATE_RATE_LIMIT"`
	SimulateRateBurst int `mapstructure:"SIMULATE_RATE_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("CONCEPT_MATRIX_PATH", "")
	viper.SetDefault("MAX_SIMULATIONS", 100000)
	viper.SetDefault("SIMULATION_WORKERS", 4)
	viper.SetDefault("DEFAULT_SEED", 1)
	viper.SetDefault("SIMULATE_RATE_LIMIT", 20) // requests per second
	viper.SetDefault("SIMULATE_RATE_BURST", 40)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing .env is fine, env vars and defaults still apply
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper reads comma separated lists as a single string
	if len(cfg.CorsOrigins) == 1 && strings.Contains(cfg.CorsOrigins[0], ",") {
		cfg.CorsOrigins = strings.Split(cfg.CorsOrigins[0], ",")
	}

	if cfg.SimulationWorkers < 1 {
		cfg.SimulationWorkers = 1
	}
	if cfg.MaxSimulations < 100 {
		return nil, fmt.Errorf("MAX_SIMULATIONS must be at least 100, got %d", cfg.MaxSimulations)
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
