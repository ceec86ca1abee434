package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database (optional; attempt log is disabled when empty)
	DatabaseURL    string
	MigrateOnStart bool

	// Redis (optional; sessions live in memory only when empty)
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Trainer
	TrainerMode   string
	MaxEI         float64
	InputSnap     string
	ShowAimLine   *bool
	ShowGhostBall *bool
	ShowOBLine    *bool
	RandomSeed    uint64

	// Sessions
	SessionTTLMinutes int
	ExpiryPollSeconds int

	// Security
	JWTSecret      string
	AdminTokenHash string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", false),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Trainer
		TrainerMode:   getEnv("TRAINER_MODE", "8-ball"),
		MaxEI:         getEnvFloat("MAX_EI", game.EIScale),
		InputSnap:     getEnv("INPUT_SNAP", ""),
		ShowAimLine:   getEnvOptionalBool("SHOW_AIM_LINE"),
		ShowGhostBall: getEnvOptionalBool("SHOW_GHOST_BALL"),
		ShowOBLine:    getEnvOptionalBool("SHOW_OB_LINE"),
		RandomSeed:    getEnvUint("RANDOM_SEED", 0),

		// Sessions
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 60),
		ExpiryPollSeconds: getEnvInt("EXPIRY_POLL_SECONDS", 60),

		// Security
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		AdminTokenHash: getEnv("ADMIN_TOKEN_HASH", ""),
	}
}

// Mode resolves the configured trainer mode and applies any aid overrides.
func (c *Config) Mode() (game.Mode, error) {
	m, err := game.ModeByName(c.TrainerMode)
	if err != nil {
		return game.Mode{}, fmt.Errorf("TRAINER_MODE %q: %w", c.TrainerMode, err)
	}
	if c.InputSnap != "" {
		snap, err := game.ParseSnapMode(c.InputSnap)
		if err != nil {
			return game.Mode{}, fmt.Errorf("INPUT_SNAP %q: %w", c.InputSnap, err)
		}
		m.Aids.Snap = snap
	}
	if c.ShowAimLine != nil {
		m.Aids.AimLine = *c.ShowAimLine
	}
	if c.ShowGhostBall != nil {
		m.Aids.GhostBall = *c.ShowGhostBall
	}
	if c.ShowOBLine != nil {
		m.Aids.ObjectBallLine = *c.ShowOBLine
	}
	return m, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := getEnvOptionalBool(key); v != nil {
		return *v
	}
	return defaultValue
}

// getEnvOptionalBool returns nil when the variable is unset or unparsable.
func getEnvOptionalBool(key string) *bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &b
}
