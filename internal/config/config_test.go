package config

import (
	"testing"
	"time"

	"github.com/mrftt12/Pickem/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.EntryFeeCents != 1000 {
		t.Fatalf("unexpected EntryFeeCents: %d", cfg.EntryFeeCents)
	}
	if cfg.ESPNEnabled {
		t.Fatalf("expected ESPN disabled by default")
	}
	if cfg.ESPNTimeout != 15*time.Second {
		t.Fatalf("unexpected ESPNTimeout: %s", cfg.ESPNTimeout)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled in dev")
	}
	if cfg.JobMaxWorkers != 4 {
		t.Fatalf("unexpected JobMaxWorkers: %d", cfg.JobMaxWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_SwaggerDisabledInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod by default")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_EntryFeeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ENTRY_FEE_CENTS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for ENTRY_FEE_CENTS=0")
	}
}

func TestLoad_ESPNConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ESPN_ENABLED", "true")
	t.Setenv("ESPN_BASE_URL", "http://localhost:9999/nfl")
	t.Setenv("ESPN_TIMEOUT", "5s")
	t.Setenv("ESPN_MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.ESPNEnabled {
		t.Fatalf("expected ESPNEnabled=true")
	}
	if cfg.ESPNBaseURL != "http://localhost:9999/nfl" {
		t.Fatalf("unexpected ESPNBaseURL: %q", cfg.ESPNBaseURL)
	}
	if cfg.ESPNTimeout != 5*time.Second {
		t.Fatalf("unexpected ESPNTimeout: %s", cfg.ESPNTimeout)
	}
	if cfg.ESPNMaxRetries != 3 {
		t.Fatalf("unexpected ESPNMaxRetries: %d", cfg.ESPNMaxRetries)
	}
}

func TestLoad_CacheConfig(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CacheEnabled {
		t.Fatalf("expected cache enabled by default")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}

	t.Setenv("CACHE_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero CACHE_TTL")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}
