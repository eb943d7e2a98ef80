// Package config loads application configuration from an optional YAML
// file, with environment variables taking precedence over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rankor24/BIM-AI-Crew/internal/llm"
	"gopkg.in/yaml.v3"
)

// DriveEndpoint is the default Google Drive API base URL.
const DriveEndpoint = "https://www.googleapis.com/drive/v3"

// GenerationConfig is the YAML shape of the generation section.
type GenerationConfig struct {
	Enabled    *bool  `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	APIKeyEnv  string `yaml:"api_key_env"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries *int   `yaml:"max_retries"`
	LogCalls   bool   `yaml:"log_calls"`
}

// DriveConfig is the YAML shape of the drive section.
type DriveConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// Config is the full application configuration.
type Config struct {
	DBPath     string           `yaml:"db_path"`
	Generation GenerationConfig `yaml:"generation"`
	Drive      DriveConfig      `yaml:"drive"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Drive: DriveConfig{Endpoint: DriveEndpoint},
	}
}

// Load reads configuration from path. A missing file yields defaults; a
// present but malformed file is an error the user should fix, not silently
// ignore. BIMCREW_DB overrides the database path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if v := os.Getenv("BIMCREW_DB"); v != "" {
		cfg.DBPath = v
	}
	if cfg.Drive.Endpoint == "" {
		cfg.Drive.Endpoint = DriveEndpoint
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location,
// ~/.bimcrew/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".bimcrew", "config.yaml"), nil
}

// DefaultDBPath returns the conventional database location,
// ~/.bimcrew/bimcrew.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".bimcrew", "bimcrew.db"), nil
}

// LLMConfig builds the generation subsystem config: defaults, overlaid
// with file values, overlaid with environment variables.
func (c Config) LLMConfig() llm.Config {
	cfg := llm.DefaultConfig()

	g := c.Generation
	if g.Enabled != nil {
		cfg.Enabled = *g.Enabled
	}
	if g.Endpoint != "" {
		cfg.Endpoint = g.Endpoint
	}
	if g.Model != "" {
		cfg.Model = g.Model
	}
	if g.TimeoutMs > 0 {
		cfg.TimeoutMs = g.TimeoutMs
	}
	if g.MaxRetries != nil && *g.MaxRetries >= 0 {
		cfg.MaxRetries = *g.MaxRetries
	}
	if g.LogCalls {
		cfg.LogCalls = true
	}
	if g.APIKeyEnv != "" {
		if v := os.Getenv(g.APIKeyEnv); v != "" {
			cfg.APIKey = v
			cfg.Enabled = true
		}
	}

	return llm.ApplyEnv(cfg)
}
