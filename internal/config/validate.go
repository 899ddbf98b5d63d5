package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks settings that would otherwise fail on the first event.
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case BackendPostgres, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of postgres, sqlite, redis, memory; got %q", c.CacheBackend)
	}

	if err := validateURL("WORDS_API_URL", c.WordsAPIURL); err != nil {
		return err
	}
	if err := validateURL("SLACK_API_URL", c.SlackAPIURL); err != nil {
		return err
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	return nil
}

// validateURL accepts absolute http and https URLs only.
func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%s must use http:// or https:// scheme", name)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must have a valid host", name)
	}
	return nil
}
