package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port            string
	GooglePlacesKey string
	PlacesBaseURL   string
	AppBaseURL      string
	AuditCacheTTL   time.Duration
	HTTPTimeout     time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RateLimitAudit  RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GooglePlacesKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesBaseURL:   os.Getenv("PLACES_BASE_URL"),
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),
		AuditCacheTTL:   parseDuration(getEnv("AUDIT_CACHE_TTL", "24h"), 24*time.Hour),
		HTTPTimeout:     parseDuration(getEnv("HTTP_TIMEOUT", "15s"), 15*time.Second),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}
	cfg.RedisDB = db

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_AUDIT", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_AUDIT value: %w", err)
	}
	cfg.RateLimitAudit = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}
