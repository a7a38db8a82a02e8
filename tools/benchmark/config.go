package main

import (
	"fmt"
	"time"

	"github.com/feral-file/ff-algorand-indexer/internal/config"
)

// Config holds the benchmark run parameters
type Config struct {
	ConfigFile  string
	EnvPath     string
	URL         string
	Operation   string
	Requests    int
	Concurrency int
	Round       uint64
	AssetID     uint64
	Limit       uint64
	RateLimit   bool
	Timeout     time.Duration
	OutputFile  string // Output markdown file path (optional)
}

// loadIndexerConfig reads the shared indexer-cli configuration and applies the benchmark overrides
func loadIndexerConfig(cfg *Config) (*config.CLIConfig, error) {
	cliCfg, err := config.LoadCLIConfig(cfg.ConfigFile, cfg.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.URL != "" {
		cliCfg.Indexer.URL = cfg.URL
	}
	if cfg.Timeout > 0 {
		cliCfg.Indexer.Timeout = cfg.Timeout
	}
	if cfg.RateLimit {
		cliCfg.RateLimit.Enabled = true
	}

	// Retries would hide the latency of throttled requests
	cliCfg.Indexer.RetryMaxElapsed = 0

	return cliCfg, nil
}

func validateConfig(cfg *Config) error {
	if _, ok := operations[cfg.Operation]; !ok {
		return fmt.Errorf("unknown operation %q", cfg.Operation)
	}
	if cfg.Requests <= 0 {
		return fmt.Errorf("requests must be positive")
	}
	if cfg.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	return nil
}
