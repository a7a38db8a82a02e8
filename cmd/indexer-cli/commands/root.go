package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/config"
	"github.com/feral-file/ff-algorand-indexer/internal/indexer"
	"github.com/feral-file/ff-algorand-indexer/internal/logger"
	"github.com/feral-file/ff-algorand-indexer/internal/ratelimit"
)

var (
	configFile string
	envPath    string
	indexerURL string
	headers    map[string]string
	timeout    time.Duration
	output     string

	idx            *indexer.Indexer
	jsonAdapter    adapter.JSON
	canonicalizer  adapter.Canonicalizer
	rateLimitProxy ratelimit.Proxy
)

const (
	outputJSON      = "json"
	outputCanonical = "canonical"
)

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, newRootCmd())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// run executes root and releases the resources acquired by setup,
// including when the command fails
func run(ctx context.Context, root *cobra.Command) error {
	defer teardown()
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "indexer-cli",
		Short:         "Query an Algorand indexer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	root.PersistentFlags().StringVar(&indexerURL, "url", "", "Indexer base URL (overrides indexer.url)")
	root.PersistentFlags().StringToStringVar(&headers, "header", nil, "Extra request header as name=value, repeatable")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per request timeout (overrides indexer.timeout)")
	root.PersistentFlags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or canonical (RFC 8785)")

	root.AddCommand(
		healthCmd(),
		accountsCmd(),
		accountCmd(),
		accountAssetsCmd(),
		accountTransactionsCmd(),
		applicationsCmd(),
		applicationCmd(),
		assetsCmd(),
		assetCmd(),
		assetBalancesCmd(),
		assetTransactionsCmd(),
		blockCmd(),
		transactionsCmd(),
		transactionCmd(),
	)
	return root
}

func setup(cmd *cobra.Command) error {
	if output != outputJSON && output != outputCanonical {
		return fmt.Errorf("unsupported output format %q", output)
	}

	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "indexer-cli",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if indexerURL != "" {
		cfg.Indexer.URL = indexerURL
	}
	if timeout > 0 {
		cfg.Indexer.Timeout = timeout
	}
	requestHeaders := cfg.Indexer.RequestHeaders()
	for k, v := range headers {
		requestHeaders[k] = v
	}

	opts := []indexer.Option{
		indexer.WithHTTPClient(adapter.NewHTTPClient(adapter.HTTPOptions{
			Timeout:         cfg.Indexer.Timeout,
			RetryMaxElapsed: cfg.Indexer.RetryMaxElapsed,
		})),
	}
	if cfg.RateLimit.Enabled {
		rateLimitProxy, err = ratelimit.NewProxy(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to create rate limit proxy: %w", err)
		}
		opts = append(opts, indexer.WithRateLimitProxy(rateLimitProxy))
	}

	idx, err = indexer.NewWithHeaders(cfg.Indexer.URL, requestHeaders, opts...)
	if err != nil {
		return err
	}
	jsonAdapter = adapter.NewJSON()
	canonicalizer = adapter.NewCanonicalizer(jsonAdapter)

	logger.DebugCtx(cmd.Context(), "Indexer client ready",
		zap.String("url", cfg.Indexer.URL),
		zap.Int("headers", len(requestHeaders)),
		zap.Duration("timeout", cfg.Indexer.Timeout),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)
	return nil
}

func teardown() {
	if rateLimitProxy != nil {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Warn("Failed to close rate limit proxy", zap.Error(err))
		}
		rateLimitProxy = nil
	}
	logger.Flush(2 * time.Second)
}

// printJSON writes v to the command output as indented or canonical JSON
func printJSON(cmd *cobra.Command, v interface{}) error {
	var (
		out []byte
		err error
	)
	if output == outputCanonical {
		out, err = canonicalizer.Canonicalize(v)
	} else {
		out, err = jsonAdapter.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
