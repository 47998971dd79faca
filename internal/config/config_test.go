package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Offline() {
		t.Error("expected offline mode with no api_url")
	}
	if cfg.HistoryPageSize != 10 {
		t.Errorf("history page size = %d, want 10", cfg.HistoryPageSize)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api_url: https://api.example.com\nhistory_page_size: 25\ndefault_language: Python\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("api url = %q", cfg.APIURL)
	}
	if cfg.HistoryPageSize != 25 || cfg.DefaultLanguage != "Python" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Offline() {
		t.Error("expected online mode")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PREPDECK_API_URL", "https://env.example.com")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("api url = %q, want env override", cfg.APIURL)
	}
}

func TestValidateRejectsBadPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history_page_size: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv("PREPDECK_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("path = %q", p)
	}
}
