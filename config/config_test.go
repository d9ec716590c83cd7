package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
		"cors": map[string]any{
			"allowOrigins": []any{"http://localhost:8000"},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "CORS_ALLOWORIGINS", want: "cors.allowOrigins"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.ServiceName(); got != "authgate" {
		t.Fatalf("ServiceName() = %q, want %q", got, "authgate")
	}
	if got := cfg.BcryptCost(); got != 12 {
		t.Fatalf("BcryptCost() = %d, want 12", got)
	}
	if got := cfg.TokenTTL(); got != time.Hour {
		t.Fatalf("TokenTTL() = %v, want %v", got, time.Hour)
	}
	origins := cfg.AllowOrigins()
	if len(origins) != 1 || origins[0] != "http://localhost:8000" {
		t.Fatalf("AllowOrigins() = %v, want the localhost default", origins)
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "gatekeeper"
	cfg.Auth = &AuthConfig{BcryptCost: 10}
	cfg.CORS = &CORSConfig{AllowOrigins: []string{"https://app.example.com"}}

	if got := cfg.ServiceName(); got != "gatekeeper" {
		t.Fatalf("ServiceName() = %q, want %q", got, "gatekeeper")
	}
	if got := cfg.BcryptCost(); got != 10 {
		t.Fatalf("BcryptCost() = %d, want 10", got)
	}
	origins := cfg.AllowOrigins()
	if len(origins) != 1 || origins[0] != "https://app.example.com" {
		t.Fatalf("AllowOrigins() = %v, want the configured origin", origins)
	}
}

func TestConfigBcryptCostIgnoresNonPositive(t *testing.T) {
	cfg := &Config{}
	cfg.Auth = &AuthConfig{BcryptCost: 0}

	if got := cfg.BcryptCost(); got != 12 {
		t.Fatalf("BcryptCost() = %d, want the default 12", got)
	}
}
