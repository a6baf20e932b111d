package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		Environment:        "development",
		DataPath:           "storage/test.db",
		GeminiModel:        "gemini-2.0-flash-exp",
		AIEnabled:          true,
		AITimeout:          20 * time.Second,
		MaxBodyBytes:       262144,
		RateLimitPerMinute: 60,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name: "no storage target",
			mutate: func(c *Config) {
				c.DataPath = ""
				c.DatabaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "database url alone is enough",
			mutate: func(c *Config) {
				c.DataPath = ""
				c.DatabaseURL = "postgres://localhost/salesperf"
			},
		},
		{
			name: "production requires api key when ai enabled",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.GeminiAPIKey = ""
			},
			wantErr: true,
		},
		{
			name: "production without ai is fine",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.AIEnabled = false
			},
		},
		{
			name: "body limit too small",
			mutate: func(c *Config) {
				c.MaxBodyBytes = 512
			},
			wantErr: true,
		},
		{
			name: "rate limit must be positive",
			mutate: func(c *Config) {
				c.RateLimitPerMinute = 0
			},
			wantErr: true,
		},
		{
			name: "ai timeout must be positive",
			mutate: func(c *Config) {
				c.AITimeout = 0
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("AI_TIMEOUT", "")
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-exp" {
		t.Fatalf("expected default model gemini-2.0-flash-exp, got %q", cfg.GeminiModel)
	}
	if cfg.AITimeout != 20*time.Second {
		t.Fatalf("expected default ai timeout 20s, got %v", cfg.AITimeout)
	}
}
