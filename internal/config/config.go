package config

import (
	"os"
	"strconv"
	"time"
)

// Cache backends accepted in CACHE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr  string
	TLSCertFile string // TLS is enabled when both cert and key are set
	TLSKeyFile  string

	// Syllable cache
	CacheBackend string // env: CACHE_BACKEND, one of postgres, sqlite, redis, memory
	DatabaseURL  string
	SQLitePath   string
	RedisURL     string

	// Word-information service (WordsAPI via RapidAPI)
	WordsAPIURL string
	RapidAPIKey string

	// Slack
	SlackAPIURL               string
	SlackToken                string
	SlackSigningSecret        string // Empty disables request signature checks
	SlackAllowURLVerification bool   // Answer url_verification challenges while installing the app

	// Outbound HTTP timeout for the word service and Slack
	HTTPTimeout time.Duration

	// OIDC guards the review API; empty issuer disables it
	OIDCIssuer   string
	OIDCClientID string

	// Metrics
	MetricsEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                       getEnv("ENV", "development"),
		ServerAddr:                getEnv("SERVER_ADDR", ":3000"),
		TLSCertFile:               getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:                getEnv("TLS_KEY_FILE", ""),
		CacheBackend:              getEnv("CACHE_BACKEND", BackendPostgres),
		DatabaseURL:               getEnv("DATABASE_URL", "postgres://localhost:5432/haikubot?sslmode=disable"),
		SQLitePath:                getEnv("SQLITE_PATH", "haikubot.db"),
		RedisURL:                  getEnv("REDIS_URL", "redis://localhost:6379/0"),
		WordsAPIURL:               getEnv("WORDS_API_URL", "https://wordsapiv1.p.rapidapi.com/words/"),
		RapidAPIKey:               getEnv("RAPIDAPI_KEY", ""),
		SlackAPIURL:               getEnv("SLACK_API_URL", "https://slack.com/api/"),
		SlackToken:                getEnv("SLACK_TOKEN", ""),
		SlackSigningSecret:        getEnv("SLACK_SIGNING_SECRET", ""),
		SlackAllowURLVerification: getEnv("SLACK_ALLOW_URL_VERIFICATION", "") != "",
		HTTPTimeout:               getDuration("HTTP_TIMEOUT", 10*time.Second),
		OIDCIssuer:                getEnv("OIDC_ISSUER", ""),
		OIDCClientID:              getEnv("OIDC_CLIENT_ID", ""),
		MetricsEnabled:            getEnv("METRICS_DISABLED", "") == "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration accepts Go durations ("5s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsTLSEnabled returns true if the server should terminate TLS itself.
func (c *Config) IsTLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// IsSignatureCheckEnabled returns true if inbound Slack requests must be signed.
func (c *Config) IsSignatureCheckEnabled() bool {
	return c.SlackSigningSecret != ""
}

// IsReviewAPIEnabled returns true if the review API can authenticate callers.
func (c *Config) IsReviewAPIEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}
