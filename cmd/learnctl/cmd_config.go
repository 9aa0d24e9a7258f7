package main

import (
	"context"
	"fmt"

	"github.com/learnctl/learnctl/internal/config"
)

// cmdConfig shows the effective configuration
func cmdConfig() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", dir)
	fmt.Printf("Server URL:       %s\n", cfg.Server.URL)
	fmt.Printf("HTTP timeout:     %s\n", cfg.Server.Timeout())
	fmt.Printf("Log level:        %s\n", cfg.LogLevel)
	fmt.Printf("Retry:            %v (max %d attempts)\n", cfg.Resilience.EnableRetry, cfg.Resilience.MaxAttempts)
	fmt.Printf("Circuit breaker:  %v\n", cfg.Resilience.EnableCircuitBreaker)
	return nil
}

// cmdAdmin runs admin utilities
func cmdAdmin(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("admin command required (reindex)")
	}

	switch args[0] {
	case "reindex":
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := a.requireUser(ctx); err != nil {
			return err
		}
		if err := a.gateway.ReindexSearch(ctx); err != nil {
			return err
		}
		fmt.Println("✓ Search index rebuild triggered")
		return nil
	default:
		return fmt.Errorf("unknown admin command: %s", args[0])
	}
}
