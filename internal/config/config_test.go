package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10, cfg.CohortSize)
	assert.Equal(t, 10, cfg.AptitudeSampleSize)
	assert.Equal(t, 20, cfg.SoftSkillsSampleSize)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, 15*time.Second, cfg.AnalyticsInterval)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("COHORT_SIZE", "25")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("ANALYTICS_INTERVAL_SECONDS", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 25, cfg.CohortSize)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 5*time.Second, cfg.AnalyticsInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("COHORT_SIZE", "lots")

	cfg := Load()

	assert.Equal(t, 10, cfg.CohortSize)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://a"}, parseOrigins("https://a"))
	assert.Equal(t, []string{"https://a", "https://b"}, parseOrigins(" https://a ,, https://b "))
}
