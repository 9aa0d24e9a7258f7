// Package config holds the client configuration stored under ~/.learnctl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Config holds all client settings
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	LogLevel   string           `yaml:"log_level"`
	Resilience ResilienceConfig `yaml:"resilience"`
}

// ServerConfig holds backend connection settings
type ServerConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ResilienceConfig gates the gateway's retry and circuit-breaker wrapper
type ResilienceConfig struct {
	EnableRetry          bool `yaml:"enable_retry"`
	EnableCircuitBreaker bool `yaml:"enable_circuit_breaker"`
	MaxAttempts          int  `yaml:"max_attempts"`
}

// Timeout returns the configured HTTP timeout as a duration
func (s ServerConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Default returns sensible defaults for a local backend
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://127.0.0.1:8000",
			TimeoutSeconds: 30,
		},
		LogLevel: "info",
		Resilience: ResilienceConfig{
			EnableRetry:          true,
			EnableCircuitBreaker: true,
			MaxAttempts:          3,
		},
	}
}

// Dir returns the path to ~/.learnctl
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".learnctl"), nil
}

// EnsureDir creates ~/.learnctl if it doesn't exist and returns its path
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads the config from dir, falling back to defaults when the file
// does not exist
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Server.URL == "" {
		return nil, fmt.Errorf("server.url must not be empty")
	}

	return cfg, nil
}

// Save writes the config to dir
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
