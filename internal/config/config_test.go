package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/club-tracker/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected APP_ENV=dev, got %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTP_ADDR: %q", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected session TTL: %v", cfg.SessionTTL)
	}
	if cfg.DataFile != "data/club-state.json" {
		t.Fatalf("unexpected data file: %q", cfg.DataFile)
	}
	if !cfg.SeedEnabled {
		t.Fatal("expected seeding on by default")
	}
	if cfg.AuditMaxWorkers != 4 {
		t.Fatalf("unexpected audit workers: %d", cfg.AuditMaxWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "stage")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ADMIN_PIN", " 4242 ")
	t.Setenv("ADMIN_SESSION_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("AUDIT_MAX_WORKERS", "8")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AppEnv != EnvStage {
		t.Fatalf("unexpected APP_ENV: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("unexpected HTTP_ADDR: %q", cfg.HTTPAddr)
	}
	if cfg.AdminPIN != "4242" {
		t.Fatalf("expected trimmed PIN, got %q", cfg.AdminPIN)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session TTL: %v", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.AuditMaxWorkers != 8 {
		t.Fatalf("unexpected audit workers: %d", cfg.AuditMaxWorkers)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad app env", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid APP_ENV")
		}
	})

	t.Run("prod requires pin", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("ADMIN_PIN", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for missing ADMIN_PIN in prod")
		}
	})

	t.Run("bad session ttl", func(t *testing.T) {
		t.Setenv("ADMIN_SESSION_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid ADMIN_SESSION_TTL")
		}
	})

	t.Run("zero audit workers", func(t *testing.T) {
		t.Setenv("AUDIT_MAX_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for AUDIT_MAX_WORKERS=0")
		}
	})

	t.Run("uptrace requires dsn", func(t *testing.T) {
		t.Setenv("UPTRACE_ENABLED", "true")
		t.Setenv("UPTRACE_DSN", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for missing UPTRACE_DSN")
		}
	})
}
