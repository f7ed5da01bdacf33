package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 30, cfg.SearchWindowDays)
	assert.Equal(t, 150*time.Millisecond, cfg.PricingDelay)
	assert.Equal(t, int64(0), cfg.RandSeed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SWEEP_INTERVAL", "1h")
	t.Setenv("SEARCH_WINDOW_DAYS", "7")
	t.Setenv("PRICING_DELAY", "0s")
	t.Setenv("RAND_SEED", "42")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Equal(t, 7, cfg.SearchWindowDays)
	assert.Equal(t, 150*time.Millisecond, cfg.PricingDelay, "non-positive durations fall back to the default")
	assert.Equal(t, int64(42), cfg.RandSeed)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "soon")
	t.Setenv("SEARCH_WINDOW_DAYS", "-3")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 30, cfg.SearchWindowDays)
}
