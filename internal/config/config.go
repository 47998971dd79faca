// Package config loads client configuration from a YAML file with
// environment-variable overrides. A .env file in the working directory is
// loaded first so both the file path and the overrides can live there.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the persistent client configuration.
type Config struct {
	// APIURL is the backend base URL. Empty means offline mode: question and
	// feedback generation go straight to an LLM provider and sessions are
	// kept only in the local database.
	APIURL string `yaml:"api_url"`

	// HistoryPageSize is the page size for the remote feedback history.
	HistoryPageSize int `yaml:"history_page_size"`

	// DefaultLanguage pre-fills the coding language field on the setup form.
	DefaultLanguage string `yaml:"default_language"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		HistoryPageSize: 10,
		DefaultLanguage: "Go",
	}
}

// DefaultPath resolves the config file location:
// 1. PREPDECK_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/prepdeck/config.yaml
// 3. ~/.config/prepdeck/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("PREPDECK_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "prepdeck", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	// Missing .env is fine; a present one feeds the overrides below.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults plus env.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PREPDECK_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("PREPDECK_LANGUAGE"); v != "" {
		cfg.DefaultLanguage = v
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.HistoryPageSize <= 0 {
		return fmt.Errorf("history_page_size must be greater than 0")
	}
	return nil
}

// Offline reports whether the client runs without a backend.
func (c *Config) Offline() bool {
	return c.APIURL == ""
}
