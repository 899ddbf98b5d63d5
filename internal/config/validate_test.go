package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		CacheBackend: BackendMemory,
		WordsAPIURL:  "https://wordsapiv1.p.rapidapi.com/words/",
		SlackAPIURL:  "https://slack.com/api/",
		HTTPTimeout:  time.Second,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.CacheBackend = "dynamodb" }, true},
		{"words api without scheme", func(c *Config) { c.WordsAPIURL = "wordsapiv1.p.rapidapi.com" }, true},
		{"slack api javascript scheme", func(c *Config) { c.SlackAPIURL = "javascript:alert(1)" }, true},
		{"slack api without host", func(c *Config) { c.SlackAPIURL = "https://" }, true},
		{"plain http allowed", func(c *Config) { c.SlackAPIURL = "http://localhost:8080/api/" }, false},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"cert without key", func(c *Config) { c.TLSCertFile = "cert.pem" }, true},
		{"cert and key", func(c *Config) { c.TLSCertFile, c.TLSKeyFile = "cert.pem", "key.pem" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
