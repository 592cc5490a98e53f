package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.Auth.Required {
		t.Fatalf("auth must be optional by default")
	}
	if len(cfg.Auth.ReportRoles) != 2 || cfg.Auth.ReportRoles[0] != "admin" {
		t.Fatalf("unexpected report roles: %v", cfg.Auth.ReportRoles)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected conn lifetime: %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Redis.MaxAttempts != 5 || cfg.Redis.Lockout != 15*time.Minute {
		t.Fatalf("unexpected throttle settings: %+v", cfg.Redis)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("REPORT_ROLES", "manager")
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || !cfg.Auth.Required || cfg.Redis.Enabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Auth.ReportRoles) != 1 || cfg.Auth.ReportRoles[0] != "manager" {
		t.Fatalf("unexpected report roles: %v", cfg.Auth.ReportRoles)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}
