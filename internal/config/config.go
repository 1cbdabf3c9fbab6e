package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// Engine knobs. CohortSize controls how many synthetic profiles are
	// generated at startup; RandomSeed pins the generator for reproducible
	// cohorts (0 means seed from the clock).
	CohortSize           int
	AptitudeSampleSize   int
	SoftSkillsSampleSize int
	RandomSeed           int64

	// AnalyticsInterval is how often the live cohort summary is pushed to
	// connected websocket clients.
	AnalyticsInterval time.Duration

	// GeminiAPIKey enables AI-backed resume analysis when set. Empty key
	// means the keyword heuristic (or the mock path) is used instead.
	GeminiAPIKey string
	GeminiModel  string

	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "pretty"),
		CohortSize:           getEnvInt("COHORT_SIZE", 10),
		AptitudeSampleSize:   getEnvInt("APTITUDE_SAMPLE_SIZE", 10),
		SoftSkillsSampleSize: getEnvInt("SOFT_SKILLS_SAMPLE_SIZE", 20),
		RandomSeed:           int64(getEnvInt("RANDOM_SEED", 0)),
		AnalyticsInterval:    time.Duration(getEnvInt("ANALYTICS_INTERVAL_SECONDS", 15)) * time.Second,
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
