package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SDB_BASE_URL", "")
	t.Setenv("SDB_STUB_PORT", "")
	t.Setenv("SDB_STRICT_SESSION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.StubPort != "8080" {
		t.Fatalf("StubPort = %q, want 8080", cfg.StubPort)
	}
	if !cfg.StrictSession {
		t.Fatal("StrictSession should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SDB_BASE_URL", "http://localhost:9000/api/v1/")
	t.Setenv("SDB_STRICT_SESSION", "false")
	t.Setenv("SDB_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9000/api/v1" {
		t.Fatalf("BaseURL = %q, trailing slash should be trimmed", cfg.BaseURL)
	}
	if cfg.StrictSession {
		t.Fatal("StrictSession should be false")
	}
	if strings.Contains(cfg.String(), "s3cret") {
		t.Fatal("String() leaked the jwt secret")
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("SDB_STRICT_SESSION", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}
