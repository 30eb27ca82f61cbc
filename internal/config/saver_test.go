package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := Default()
	cfg.API.BaseURL = "https://notes.example.com/api"
	cfg.Search.Debounce = 2 * time.Second
	cfg.UI.ShowFooter = false

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.API.BaseURL != cfg.API.BaseURL {
		t.Errorf("got baseUrl %q, want %q", loaded.API.BaseURL, cfg.API.BaseURL)
	}
	if loaded.Search.Debounce != cfg.Search.Debounce {
		t.Errorf("got debounce %v, want %v", loaded.Search.Debounce, cfg.Search.Debounce)
	}
	if loaded.UI.ShowFooter {
		t.Error("showFooter should survive a save/load round trip")
	}
}

func TestSaveTo_EmptyPath(t *testing.T) {
	if err := SaveTo(Default(), ""); err == nil {
		t.Error("empty path should fail")
	}
}
