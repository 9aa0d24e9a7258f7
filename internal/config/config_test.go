package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Server.URL != want.Server.URL {
		t.Errorf("Server.URL = %q; want %q", cfg.Server.URL, want.Server.URL)
	}
	if cfg.LogLevel != want.LogLevel {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, want.LogLevel)
	}
	if !cfg.Resilience.EnableRetry {
		t.Error("Resilience.EnableRetry = false; want true by default")
	}
}

func TestSave_Load_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Server.URL = "https://learn.example.com"
	cfg.Server.TimeoutSeconds = 5
	cfg.LogLevel = "debug"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.URL != "https://learn.example.com" {
		t.Errorf("Server.URL = %q; want %q", loaded.Server.URL, "https://learn.example.com")
	}
	if loaded.Server.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v; want %v", loaded.Server.Timeout(), 5*time.Second)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", loaded.LogLevel, "debug")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte("server:\n  url: http://localhost:9000\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.URL != "http://localhost:9000" {
		t.Errorf("Server.URL = %q; want %q", cfg.Server.URL, "http://localhost:9000")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want default %q", cfg.LogLevel, "info")
	}
}

func TestLoad_RejectsEmptyURL(t *testing.T) {
	dir := t.TempDir()
	data := []byte("server:\n  url: \"\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() with empty server.url succeeded; want error")
	}
}

func TestTimeout_Default(t *testing.T) {
	s := ServerConfig{}
	if s.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v; want %v", s.Timeout(), 30*time.Second)
	}
}
