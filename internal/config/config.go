package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// app config, mostly upstream and session related
type Config struct {
	Port string

	SearchServiceURL     string
	ExecutionServiceURL  string
	UpstreamTimeout      time.Duration
	GuardIncludesFilters bool

	SessionTTL           time.Duration
	SessionSweepSchedule string
	InsightsCacheSize    int

	DashboardPath      string
	CORSAllowedOrigins []string
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var errs []error
	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		SearchServiceURL:     getEnvOrDefault("SEARCH_SERVICE_URL", "http://localhost:5000"),
		ExecutionServiceURL:  getEnvOrDefault("EXECUTION_SERVICE_URL", "http://localhost:5000"),
		UpstreamTimeout:      getEnvDuration("UPSTREAM_TIMEOUT", 0, &errs),
		GuardIncludesFilters: getEnvBool("SEARCH_GUARD_INCLUDES_FILTERS", false, &errs),
		SessionTTL:           getEnvDuration("SESSION_TTL", 2*time.Hour, &errs),
		SessionSweepSchedule: getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		InsightsCacheSize:    getEnvInt("INSIGHTS_CACHE_SIZE", 256, &errs),
		DashboardPath:        getEnvOrDefault("DASHBOARD_PATH", "/dashboard"),
		CORSAllowedOrigins:   splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	for name, raw := range map[string]string{
		"SEARCH_SERVICE_URL":    config.SearchServiceURL,
		"EXECUTION_SERVICE_URL": config.ExecutionServiceURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if config.UpstreamTimeout < 0 {
		return errors.New("UPSTREAM_TIMEOUT must not be negative")
	}
	if config.InsightsCacheSize <= 0 {
		return errors.New("INSIGHTS_CACHE_SIZE must be positive")
	}
	if !strings.HasPrefix(config.DashboardPath, "/") {
		return errors.New("DASHBOARD_PATH must start with /")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return defaultValue
	}
	return i
}

func getEnvBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, value))
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, value))
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
