package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kickmate/manager-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level

	APIBaseURL               string
	APIToken                 string
	APITimeout               time.Duration
	APIMaxRetries            int
	APICircuitEnabled        bool
	APICircuitFailureCount   int
	APICircuitOpenTimeout    time.Duration
	APICircuitHalfOpenMaxReq int

	TeamProfileCacheTTL time.Duration
	PerformanceCacheTTL time.Duration
	PrewarmWorkers      int
	EnrichWorkers       int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("API_TIMEOUT must be > 0")
	}

	apiMaxRetries, err := getEnvAsInt("API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_MAX_RETRIES: %w", err)
	}
	if apiMaxRetries < 0 {
		return Config{}, fmt.Errorf("API_MAX_RETRIES must be >= 0")
	}

	apiCircuitEnabled, err := strconv.ParseBool(getEnv("API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_ENABLED: %w", err)
	}
	apiCircuitFailureCount, err := getEnvAsInt("API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if apiCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	apiCircuitOpenTimeout, err := time.ParseDuration(getEnv("API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if apiCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	apiCircuitHalfOpenMaxReq, err := getEnvAsInt("API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if apiCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	teamProfileCacheTTL, err := time.ParseDuration(getEnv("TEAM_PROFILE_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_PROFILE_CACHE_TTL: %w", err)
	}
	if teamProfileCacheTTL <= 0 {
		return Config{}, fmt.Errorf("TEAM_PROFILE_CACHE_TTL must be > 0")
	}
	performanceCacheTTL, err := time.ParseDuration(getEnv("PERFORMANCE_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PERFORMANCE_CACHE_TTL: %w", err)
	}
	if performanceCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PERFORMANCE_CACHE_TTL must be > 0")
	}

	prewarmWorkers, err := getEnvAsInt("PREWARM_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREWARM_WORKERS: %w", err)
	}
	if prewarmWorkers < 1 {
		return Config{}, fmt.Errorf("PREWARM_WORKERS must be >= 1")
	}
	enrichWorkers, err := getEnvAsInt("ENRICH_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENRICH_WORKERS: %w", err)
	}
	if enrichWorkers < 1 {
		return Config{}, fmt.Errorf("ENRICH_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "manager-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		APIBaseURL:               strings.TrimSpace(getEnv("API_BASE_URL", "https://api.kickmate.de/v4")),
		APIToken:                 strings.TrimSpace(getEnv("API_TOKEN", "")),
		APITimeout:               apiTimeout,
		APIMaxRetries:            apiMaxRetries,
		APICircuitEnabled:        apiCircuitEnabled,
		APICircuitFailureCount:   apiCircuitFailureCount,
		APICircuitOpenTimeout:    apiCircuitOpenTimeout,
		APICircuitHalfOpenMaxReq: apiCircuitHalfOpenMaxReq,

		TeamProfileCacheTTL: teamProfileCacheTTL,
		PerformanceCacheTTL: performanceCacheTTL,
		PrewarmWorkers:      prewarmWorkers,
		EnrichWorkers:       enrichWorkers,
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
