// Package config holds client configuration: where the platform lives, how
// to authenticate, and presentation preferences. Values come from the
// environment with an optional .env file, in the platform CLI tradition.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/codecade/internal/quota"
)

// DefaultBaseURL is the hosted platform endpoint.
const DefaultBaseURL = "https://api.codecade.dev"

// Config is the resolved client configuration.
type Config struct {
	// BaseURL is the platform API root.
	BaseURL string

	// Token is the bearer token presented on every request.
	Token string

	// Timeout bounds a single API request.
	Timeout time.Duration

	// WarnThreshold is the remaining-quota count at or below which the
	// banner warns.
	WarnThreshold int

	// Theme selects the color scheme: "dark" or "light".
	Theme string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       30 * time.Second,
		WarnThreshold: quota.DefaultWarnThreshold,
		Theme:         "dark",
	}
}

// Load reads an optional .env file and builds a Config from environment
// variables, falling back to defaults for unset values.
func Load() Config {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("CODECADE_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("CODECADE_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("CODECADE_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}
	if w := os.Getenv("CODECADE_QUOTA_WARN"); w != "" {
		if n, err := strconv.Atoi(w); err == nil && n >= 0 {
			cfg.WarnThreshold = n
		}
	}
	if th := os.Getenv("CODECADE_THEME"); th != "" {
		cfg.Theme = th
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("CODECADE_API_URL must not be empty")
	}
	if c.Token == "" {
		return fmt.Errorf("CODECADE_TOKEN is required; sign in at codecade.dev to get one")
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q (want dark or light)", c.Theme)
	}
	return nil
}
