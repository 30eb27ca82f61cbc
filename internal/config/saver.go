package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	API    saveAPIConfig    `json:"api"`
	Search saveSearchConfig `json:"search"`
	UI     saveUIConfig     `json:"ui"`
}

type saveAPIConfig struct {
	BaseURL string `json:"baseUrl,omitempty"`
	Timeout string `json:"timeout,omitempty"`
}

type saveSearchConfig struct {
	Debounce string `json:"debounce,omitempty"`
}

type saveUIConfig struct {
	PageLimit  int   `json:"pageLimit,omitempty"`
	ShowFooter *bool `json:"showFooter,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		API: saveAPIConfig{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.API.Timeout.String(),
		},
		Search: saveSearchConfig{
			Debounce: cfg.Search.Debounce.String(),
		},
		UI: saveUIConfig{
			PageLimit:  cfg.UI.PageLimit,
			ShowFooter: &cfg.UI.ShowFooter,
		},
	}
}

// Save writes the config to ~/.config/hdnotes/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	if path == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(toSaveConfig(cfg), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
