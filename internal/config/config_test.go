package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *CLIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
indexer:
  url: "https://testnet-idx.algonode.cloud"
  api_token: "secret"
  headers:
    X-Client: "indexer-cli"
  timeout: "5s"
  retry_max_elapsed: "0s"
rate_limit:
  enabled: true
  max_workers: 4
  max_queue_size: 64
  providers:
    algorand-indexer:
      requests_per_second: 2.5
      burst: 3
      max_queue_time: "10s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *CLIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "https://testnet-idx.algonode.cloud", cfg.Indexer.URL)
				assert.Equal(t, "secret", cfg.Indexer.APIToken)
				assert.Equal(t, "indexer-cli", cfg.Indexer.Headers["x-client"])
				assert.Equal(t, 5*time.Second, cfg.Indexer.Timeout)
				assert.Equal(t, time.Duration(0), cfg.Indexer.RetryMaxElapsed)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 4, cfg.RateLimit.MaxWorkers)
				assert.Equal(t, 64, cfg.RateLimit.MaxQueueSize)

				provider, ok := cfg.RateLimit.Providers["algorand-indexer"]
				require.True(t, ok)
				assert.Equal(t, 2.5, provider.RequestsPerSecond)
				assert.Equal(t, 3, provider.Burst)
				assert.Equal(t, 10*time.Second, provider.MaxQueueTime)
			},
		},
		{
			name: "config with defaults",
			configFile: `
debug: false
`,
			expectError: false,
			validate: func(t *testing.T, cfg *CLIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "https://mainnet-idx.algonode.cloud", cfg.Indexer.URL)
				assert.Equal(t, 30*time.Second, cfg.Indexer.Timeout)
				assert.Equal(t, time.Minute, cfg.Indexer.RetryMaxElapsed)
				assert.False(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 16, cfg.RateLimit.MaxWorkers)
				assert.Equal(t, 1024, cfg.RateLimit.MaxQueueSize)

				provider, ok := cfg.RateLimit.Providers["algorand-indexer"]
				require.True(t, ok)
				assert.Equal(t, float64(10), provider.RequestsPerSecond)
				assert.Equal(t, 10, provider.Burst)
				assert.Equal(t, time.Minute, provider.MaxQueueTime)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *CLIConfig) {
				assert.Equal(t, "https://mainnet-idx.algonode.cloud", cfg.Indexer.URL)
			},
		},
		{
			name: "empty indexer url",
			configFile: `
indexer:
  url: ""
`,
			expectError: true,
		},
		{
			name: "invalid duration",
			configFile: `
indexer:
  timeout: "soon"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadCLIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadCLIConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FF_ALGO_INDEXER_INDEXER_URL", "https://env-idx.example.com")
	t.Setenv("FF_ALGO_INDEXER_INDEXER_API_TOKEN", "env-token")
	t.Setenv("FF_ALGO_INDEXER_INDEXER_TIMEOUT", "7s")
	t.Setenv("FF_ALGO_INDEXER_RATE_LIMIT_ENABLED", "true")

	tmpDir := t.TempDir()
	cfg, err := LoadCLIConfig(filepath.Join(tmpDir, "nonexistent.yaml"), tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://env-idx.example.com", cfg.Indexer.URL)
	assert.Equal(t, "env-token", cfg.Indexer.APIToken)
	assert.Equal(t, 7*time.Second, cfg.Indexer.Timeout)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadCLIConfig_EnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env.indexer-cli.local")
	require.NoError(t, os.WriteFile(envFile, []byte("FF_ALGO_INDEXER_INDEXER_URL=https://dotenv-idx.example.com\n"), 0600))
	t.Cleanup(func() {
		_ = os.Unsetenv("FF_ALGO_INDEXER_INDEXER_URL")
	})

	cfg, err := LoadCLIConfig(filepath.Join(tmpDir, "nonexistent.yaml"), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv-idx.example.com", cfg.Indexer.URL)
}

func TestIndexerConfig_RequestHeaders(t *testing.T) {
	cfg := IndexerConfig{
		APIToken: "token",
		Headers:  map[string]string{"x-client": "cli"},
	}

	headers := cfg.RequestHeaders()
	assert.Equal(t, map[string]string{
		"x-client":            "cli",
		IndexerAPITokenHeader: "token",
	}, headers)

	// The config map is not modified
	assert.Len(t, cfg.Headers, 1)

	empty := IndexerConfig{}
	assert.Empty(t, empty.RequestHeaders())
}
