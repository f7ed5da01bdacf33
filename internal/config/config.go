package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort string

	// Alert sweep cadence. The demo default is 5 minutes; production
	// intent is hourly.
	SweepInterval time.Duration

	// How many days of offers one generation pass produces.
	SearchWindowDays int

	// Artificial latency of the mock pricing client.
	PricingDelay time.Duration

	// Seed for the fare generator. 0 means seed from the clock
	// (non-deterministic, the demo default).
	RandSeed int64
}

func Load() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		SweepInterval:    getEnvDuration("SWEEP_INTERVAL", 5*time.Minute),
		SearchWindowDays: getEnvInt("SEARCH_WINDOW_DAYS", 30),
		PricingDelay:     getEnvDuration("PRICING_DELAY", 150*time.Millisecond),
		RandSeed:         getEnvInt64("RAND_SEED", 0),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
