// Package config loads hdnotes configuration: defaults, overridden by
// a JSON config file, overridden by HDNOTES_* environment variables.
// Command-line flags are applied last by the caller.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	API    APIConfig    `json:"api" envPrefix:"HDNOTES_API_"`
	Search SearchConfig `json:"search" envPrefix:"HDNOTES_SEARCH_"`
	UI     UIConfig     `json:"ui" envPrefix:"HDNOTES_UI_"`
}

// APIConfig configures the backend gateway.
type APIConfig struct {
	// BaseURL includes the /api prefix.
	BaseURL string        `json:"baseUrl" env:"BASE_URL"`
	Timeout time.Duration `json:"timeout" env:"TIMEOUT"`
}

// SearchConfig configures the search debouncer.
type SearchConfig struct {
	// Debounce is the quiet interval after the last query edit before
	// a remote fetch is issued.
	Debounce time.Duration `json:"debounce" env:"DEBOUNCE"`
}

// UIConfig configures presentation details.
type UIConfig struct {
	// PageLimit is the per-partition page size requested from the backend.
	PageLimit  int  `json:"pageLimit" env:"PAGE_LIMIT"`
	ShowFooter bool `json:"showFooter" env:"SHOW_FOOTER"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 15 * time.Second,
		},
		Search: SearchConfig{
			Debounce: 500 * time.Millisecond,
		},
		UI: UIConfig{
			PageLimit:  100,
			ShowFooter: true,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.baseUrl must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative, got %s", c.Search.Debounce)
	}
	if c.UI.PageLimit <= 0 {
		return fmt.Errorf("ui.pageLimit must be positive, got %d", c.UI.PageLimit)
	}
	return nil
}
