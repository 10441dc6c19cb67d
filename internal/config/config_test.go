package config_test

import (
	"testing"

	"jobportal/board-service/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portal")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("JOB_EXPIRY_DAYS", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TokenTTLHours != 24 {
		t.Errorf("TokenTTLHours = %d, want 24", cfg.TokenTTLHours)
	}
	if cfg.JobExpiryDays != 0 {
		t.Errorf("JobExpiryDays = %d, want 0 (disabled)", cfg.JobExpiryDays)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []string{"DATABASE_URL", "REDIS_URL", "JWT_SECRET"}
	for _, missing := range cases {
		setRequired(t)
		t.Setenv(missing, "")
		if _, err := config.Load(); err == nil {
			t.Errorf("Load with empty %s should fail", missing)
		}
	}
}

func TestLoad_BadNumbers(t *testing.T) {
	setRequired(t)

	t.Setenv("TOKEN_TTL_HOURS", "zero")
	if _, err := config.Load(); err == nil {
		t.Error("non-numeric TOKEN_TTL_HOURS should fail")
	}
	t.Setenv("TOKEN_TTL_HOURS", "0")
	if _, err := config.Load(); err == nil {
		t.Error("zero TOKEN_TTL_HOURS should fail")
	}

	t.Setenv("TOKEN_TTL_HOURS", "12")
	t.Setenv("JOB_EXPIRY_DAYS", "-3")
	if _, err := config.Load(); err == nil {
		t.Error("negative JOB_EXPIRY_DAYS should fail")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "72")
	t.Setenv("JOB_EXPIRY_DAYS", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.TokenTTLHours != 72 || cfg.JobExpiryDays != 30 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
