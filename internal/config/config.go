package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// IndexerAPITokenHeader is the header carrying IndexerConfig.APIToken
const IndexerAPITokenHeader = "X-Indexer-API-Token"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// IndexerConfig holds the Algorand indexer connection configuration.
// Header names are lower-cased by viper, which is harmless for HTTP.
type IndexerConfig struct {
	URL             string            `mapstructure:"url"`
	APIToken        string            `mapstructure:"api_token"`
	Headers         map[string]string `mapstructure:"headers"`
	Timeout         time.Duration     `mapstructure:"timeout"`           // per attempt timeout (e.g., "30s")
	RetryMaxElapsed time.Duration     `mapstructure:"retry_max_elapsed"` // total time spent retrying 429 responses, 0 disables retry
}

// RateLimitConfig holds the limits of a single provider
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limit proxy configuration
type RateLimiterConfig struct {
	Enabled      bool                       `mapstructure:"enabled"`
	MaxWorkers   int                        `mapstructure:"max_workers"`
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
}

// CLIConfig holds configuration for indexer-cli
type CLIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Indexer    IndexerConfig     `mapstructure:"indexer"`
	RateLimit  RateLimiterConfig `mapstructure:"rate_limit"`
}

// RequestHeaders merges the API token into the custom headers
func (c *IndexerConfig) RequestHeaders() map[string]string {
	headers := make(map[string]string, len(c.Headers)+1)
	for k, v := range c.Headers {
		headers[k] = v
	}
	if c.APIToken != "" {
		headers[IndexerAPITokenHeader] = c.APIToken
	}
	return headers
}

// LoadCLIConfig loads configuration for indexer-cli
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("indexer-cli", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("indexer.url", "https://mainnet-idx.algonode.cloud")
	v.SetDefault("indexer.timeout", "30s")
	v.SetDefault("indexer.retry_max_elapsed", "1m")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.max_workers", 16)
	v.SetDefault("rate_limit.max_queue_size", 1024)
	v.SetDefault("rate_limit.providers.algorand-indexer.requests_per_second", 10)
	v.SetDefault("rate_limit.providers.algorand-indexer.burst", 10)
	v.SetDefault("rate_limit.providers.algorand-indexer.max_queue_time", "1m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config CLIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Indexer.URL == "" {
		return nil, errors.New("indexer.url is required")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in the current directory, the service directory, then config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_ALGO_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Indexer
		"indexer.url",
		"indexer.api_token",
		"indexer.timeout",
		"indexer.retry_max_elapsed",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.max_workers",
		"rate_limit.max_queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}
