package config

import (
	"strings"
	"testing"
)

func TestLoad_ShortJWTSecretFailsFast(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Fatalf("expected startup failure for a secret under %d bytes", MinJWTSecretBytes)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("JWT_SECRET", strings.Repeat("k", MinJWTSecretBytes))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.JWT.ExpirationMs != DefaultTokenExpirationMs {
		t.Fatalf("expected default expiration %d, got %d", DefaultTokenExpirationMs, cfg.JWT.ExpirationMs)
	}
	if !cfg.IsDev() || cfg.IsProd() {
		t.Fatalf("expected dev mode")
	}
	if cfg.GetAllowedOrigins() != "*" {
		t.Fatalf("expected permissive CORS in dev, got %s", cfg.GetAllowedOrigins())
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	t.Setenv("JWT_SECRET", strings.Repeat("k", MinJWTSecretBytes))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_MODE")
	}
}

func TestLoad_InvalidExpiration(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("JWT_SECRET", strings.Repeat("k", MinJWTSecretBytes))
	t.Setenv("JWT_EXPIRATION_MS", "-5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive expiration")
	}
}
