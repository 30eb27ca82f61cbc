package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	configDir  = ".config/hdnotes"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero values, and durations accept the
// "15s" string form.
type rawConfig struct {
	API    rawAPIConfig    `json:"api"`
	Search rawSearchConfig `json:"search"`
	UI     rawUIConfig     `json:"ui"`
}

type rawAPIConfig struct {
	BaseURL string `json:"baseUrl"`
	Timeout string `json:"timeout"`
}

type rawSearchConfig struct {
	Debounce string `json:"debounce"`
}

type rawUIConfig struct {
	PageLimit  *int  `json:"pageLimit"`
	ShowFooter *bool `json:"showFooter"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path, then applies
// HDNOTES_* environment overrides. If path is empty, uses
// ~/.config/hdnotes/config.json.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return applyEnv(cfg)
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg)
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := mergeConfig(cfg, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return applyEnv(cfg)
}

// applyEnv layers HDNOTES_* environment variables on top of cfg and
// validates the result.
func applyEnv(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) error {
	if raw.API.BaseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(raw.API.BaseURL, "/")
	}
	if raw.API.Timeout != "" {
		d, err := time.ParseDuration(raw.API.Timeout)
		if err != nil {
			return fmt.Errorf("api.timeout: %w", err)
		}
		cfg.API.Timeout = d
	}

	if raw.Search.Debounce != "" {
		d, err := time.ParseDuration(raw.Search.Debounce)
		if err != nil {
			return fmt.Errorf("search.debounce: %w", err)
		}
		cfg.Search.Debounce = d
	}

	if raw.UI.PageLimit != nil {
		cfg.UI.PageLimit = *raw.UI.PageLimit
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}

	return nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// StateDir returns the directory where session state is persisted,
// creating it if needed.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	dir := filepath.Join(home, configDir, "state")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return dir, nil
}
