package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "https://harvest.greenhouse.io/v1"
	defaultTimeout = 10 * time.Second
)

// Config contains runtime settings for the adapter and the local shim
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 5000
	ATS      struct {
		APIKey     string
		BaseURL    string
		OnBehalfOf string
		Timeout    time.Duration
	} // Greenhouse Harvest connection
}

// LoadDotEnv loads .env style files into the environment for local runs.
// Variables already set win; missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "5000",
	}
	cfg.ATS.BaseURL = defaultBaseURL
	cfg.ATS.Timeout = defaultTimeout

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.ATS.APIKey = strings.TrimSpace(os.Getenv("ATS_API_KEY"))
	cfg.ATS.OnBehalfOf = strings.TrimSpace(os.Getenv("ON_BEHALF_OF"))

	if v := strings.TrimSpace(os.Getenv("ATS_BASE_URL")); v != "" {
		cfg.ATS.BaseURL = strings.TrimSuffix(v, "/")
	}

	var invalid []string

	if v := os.Getenv("ATS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, "ATS_TIMEOUT")
		} else {
			cfg.ATS.Timeout = d
		}
	}

	if !strings.HasPrefix(cfg.ATS.BaseURL, "http://") && !strings.HasPrefix(cfg.ATS.BaseURL, "https://") {
		invalid = append(invalid, "ATS_BASE_URL")
	}

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
