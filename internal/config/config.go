package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the hosted SDB backend.
const DefaultBaseURL = "https://sdb-backend.onrender.com/api/v1"

// Config holds the settings shared by sdbctl and the stub server.
type Config struct {
	BaseURL       string // backend base, e.g. https://host/api/v1
	StubPort      string // listen port of the stub backend
	JWTSecret     string // signing secret used by the stub backend
	SeedPath      string // optional JSON seed for the stub backend
	StrictSession bool   // reject Set on an uncleared pickup email
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	strict, err := getBool("SDB_STRICT_SESSION", true)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := &Config{
		BaseURL:       strings.TrimRight(Get("SDB_BASE_URL", DefaultBaseURL), "/"),
		StubPort:      Get("SDB_STUB_PORT", "8080"),
		JWTSecret:     Get("SDB_JWT_SECRET", ""),
		SeedPath:      Get("SDB_SEED_PATH", ""),
		StrictSession: strict,
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("load config: SDB_BASE_URL must be non-empty")
	}

	return cfg, nil
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return b, nil
}

// String masks the signing secret.
func (c *Config) String() string {
	return fmt.Sprintf("Config{BaseURL: %s, StubPort: %s, JWTSecret: ***, StrictSession: %t}", c.BaseURL, c.StubPort, c.StrictSession)
}
