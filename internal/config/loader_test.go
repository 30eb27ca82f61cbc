package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("got baseUrl %q", cfg.API.BaseURL)
	}
	if cfg.Search.Debounce != 500*time.Millisecond {
		t.Errorf("got debounce %v, want 500ms", cfg.Search.Debounce)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("got timeout %v, want 15s", cfg.API.Timeout)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"api": {
			"baseUrl": "https://notes.example.com/api/",
			"timeout": "30s"
		},
		"search": {
			"debounce": "250ms"
		},
		"ui": {
			"showFooter": false
		}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.API.BaseURL != "https://notes.example.com/api" {
		t.Errorf("got baseUrl %q, trailing slash should be stripped", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("got timeout %v, want 30s", cfg.API.Timeout)
	}
	if cfg.Search.Debounce != 250*time.Millisecond {
		t.Errorf("got debounce %v, want 250ms", cfg.Search.Debounce)
	}
	if cfg.UI.ShowFooter {
		t.Error("showFooter should be false")
	}
	// Default values should still be present
	if cfg.UI.PageLimit != 100 {
		t.Errorf("got pageLimit %d, want default 100", cfg.UI.PageLimit)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on malformed JSON")
	}
}

func TestLoadFrom_BadDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"api":{"timeout":"soon"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on unparseable duration")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"api":{"baseUrl":"http://file.example/api"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HDNOTES_API_BASE_URL", "http://env.example/api")
	t.Setenv("HDNOTES_SEARCH_DEBOUNCE", "1s")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.API.BaseURL != "http://env.example/api" {
		t.Errorf("env should override file, got %q", cfg.API.BaseURL)
	}
	if cfg.Search.Debounce != time.Second {
		t.Errorf("got debounce %v, want 1s", cfg.Search.Debounce)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.API.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero timeout should fail validation")
	}

	cfg = Default()
	cfg.UI.PageLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative pageLimit should fail validation")
	}
}
