package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/indexer"
	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
	"github.com/feral-file/ff-algorand-indexer/internal/ratelimit"
)

// operation issues one indexer request for the benchmark
type operation func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error

var operations = map[string]operation{
	"health": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		return idx.Health(ctx)
	},
	"block": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		_, err := idx.Block(ctx, algorand.Round(cfg.Round))
		return err
	},
	"transactions": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		_, err := idx.Transactions(ctx, &algorand.QueryTransaction{Limit: &cfg.Limit})
		return err
	},
	"accounts": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		_, err := idx.Accounts(ctx, &algorand.QueryAccount{Limit: &cfg.Limit})
		return err
	},
	"assets": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		_, err := idx.Assets(ctx, &algorand.QueryAssets{Limit: &cfg.Limit})
		return err
	},
	"asset-balances": func(ctx context.Context, idx *indexer.Indexer, cfg *Config) error {
		_, err := idx.AssetBalances(ctx, cfg.AssetID, &algorand.QueryBalances{Limit: &cfg.Limit})
		return err
	},
}

// Result holds the outcome of a benchmark run
type Result struct {
	Operation   string
	Requests    int
	Concurrency int
	Succeeded   int
	NotFound    int
	TimedOut    int
	Failed      int
	Canceled    int
	Elapsed     time.Duration
	Latencies   []time.Duration // successful requests only
	Errors      map[string]int  // failure messages by count
}

func main() {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:           "benchmark",
		Short:         "Measure Algorand indexer latency and throughput",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.ConfigFile, "config", "", "Path to indexer-cli configuration file")
	cmd.Flags().StringVar(&cfg.EnvPath, "env", "config/", "Path to environment files")
	cmd.Flags().StringVar(&cfg.URL, "url", "", "Indexer base URL (overrides indexer.url)")
	cmd.Flags().StringVar(&cfg.Operation, "operation", "health", "Operation to benchmark (health, block, transactions, accounts, assets, asset-balances)")
	cmd.Flags().IntVar(&cfg.Requests, "requests", 100, "Total number of requests")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", 10, "Number of concurrent workers")
	cmd.Flags().Uint64Var(&cfg.Round, "round", 1, "Round for the block operation")
	cmd.Flags().Uint64Var(&cfg.AssetID, "asset-id", 31566704, "Asset for the asset-balances operation")
	cmd.Flags().Uint64Var(&cfg.Limit, "limit", 10, "Page size for search operations")
	cmd.Flags().BoolVar(&cfg.RateLimit, "rate-limit", false, "Route requests through the rate limit proxy")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", 0, "Per request timeout (overrides indexer.timeout)")
	cmd.Flags().StringVar(&cfg.OutputFile, "output", "", "Write a markdown report to this file")

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	cliCfg, err := loadIndexerConfig(cfg)
	if err != nil {
		return err
	}

	opts := []indexer.Option{
		indexer.WithHTTPClient(adapter.NewHTTPClient(adapter.HTTPOptions{Timeout: cliCfg.Indexer.Timeout})),
	}
	if cliCfg.RateLimit.Enabled {
		proxy, err := ratelimit.NewProxy(cliCfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to create rate limit proxy: %w", err)
		}
		defer func() {
			_ = proxy.Close()
		}()
		opts = append(opts, indexer.WithRateLimitProxy(proxy))
	}

	idx, err := indexer.NewWithHeaders(cliCfg.Indexer.URL, cliCfg.Indexer.RequestHeaders(), opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Benchmarking %s against %s (%d requests, concurrency %d)\n",
		cfg.Operation, cliCfg.Indexer.URL, cfg.Requests, cfg.Concurrency)

	result := runBenchmark(ctx, idx, cfg)

	title := "BENCHMARK RESULTS"
	if ctx.Err() != nil {
		title = "INTERRUPTED - PARTIAL RESULTS"
	}
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 80))
	printResult(result)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cliCfg.Indexer.URL, result); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
	return nil
}

// runBenchmark issues cfg.Requests calls from cfg.Concurrency workers and collects their outcome
func runBenchmark(ctx context.Context, idx *indexer.Indexer, cfg *Config) *Result {
	op := operations[cfg.Operation]
	result := &Result{
		Operation:   cfg.Operation,
		Requests:    cfg.Requests,
		Concurrency: cfg.Concurrency,
		Errors:      make(map[string]int),
	}

	pool := pond.NewPool(cfg.Concurrency)
	defer pool.StopAndWait()

	var mu sync.Mutex
	group := pool.NewGroup()
	start := time.Now()

	for i := 0; i < cfg.Requests; i++ {
		group.Submit(func() {
			if ctx.Err() != nil {
				mu.Lock()
				result.Canceled++
				mu.Unlock()
				return
			}

			requestStart := time.Now()
			err := op(ctx, idx, cfg)
			latency := time.Since(requestStart)

			mu.Lock()
			defer mu.Unlock()
			record(result, latency, err)
		})
	}

	_ = group.Wait()
	result.Elapsed = time.Since(start)
	return result
}

// record classifies one request outcome; the caller holds the result lock
func record(result *Result, latency time.Duration, err error) {
	switch {
	case err == nil:
		result.Succeeded++
		result.Latencies = append(result.Latencies, latency)
	case indexer.IsNotFound(err):
		result.NotFound++
	case indexer.IsTimeout(err):
		result.TimedOut++
	case errors.Is(err, context.Canceled):
		result.Canceled++
	default:
		result.Failed++
		result.Errors[err.Error()]++
	}
}

func printResult(result *Result) {
	sorted := sortDurations(result.Latencies)

	fmt.Printf("\nOperation:    %s\n", result.Operation)
	fmt.Printf("Requests:     %d (concurrency %d)\n", result.Requests, result.Concurrency)
	fmt.Printf("Elapsed:      %s\n", formatDuration(result.Elapsed))
	fmt.Printf("Throughput:   %s\n", formatRate(result.Succeeded, result.Elapsed))
	fmt.Printf("\nSucceeded:    %d (%s)\n", result.Succeeded, percentageString(result.Succeeded, result.Requests))
	fmt.Printf("Not found:    %d\n", result.NotFound)
	fmt.Printf("Timed out:    %d\n", result.TimedOut)
	fmt.Printf("Failed:       %d\n", result.Failed)
	fmt.Printf("Canceled:     %d\n", result.Canceled)

	if len(sorted) > 0 {
		fmt.Printf("\nLatency (successful requests)\n")
		fmt.Printf("  min  %s\n", formatDuration(sorted[0]))
		fmt.Printf("  p50  %s\n", formatDuration(percentile(sorted, 50)))
		fmt.Printf("  p90  %s\n", formatDuration(percentile(sorted, 90)))
		fmt.Printf("  p99  %s\n", formatDuration(percentile(sorted, 99)))
		fmt.Printf("  max  %s\n", formatDuration(sorted[len(sorted)-1]))
	}

	for msg, count := range result.Errors {
		fmt.Printf("\n%4d × %s", count, msg)
	}
	if len(result.Errors) > 0 {
		fmt.Println()
	}
}

func writeMarkdownReport(filepath string, url string, result *Result) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	sorted := sortDurations(result.Latencies)

	_, _ = fmt.Fprintf(file, "# Indexer Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Run\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Indexer** | `%s` |\n", url)
	_, _ = fmt.Fprintf(file, "| **Operation** | %s |\n", result.Operation)
	_, _ = fmt.Fprintf(file, "| **Requests** | %d |\n", result.Requests)
	_, _ = fmt.Fprintf(file, "| **Concurrency** | %d |\n", result.Concurrency)
	_, _ = fmt.Fprintf(file, "| **Elapsed** | %s |\n", formatDuration(result.Elapsed))
	_, _ = fmt.Fprintf(file, "| **Throughput** | %s |\n", formatRate(result.Succeeded, result.Elapsed))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Outcomes\n\n")
	_, _ = fmt.Fprintf(file, "| Outcome | Count | Share |\n")
	_, _ = fmt.Fprintf(file, "|---------|-------|-------|\n")
	_, _ = fmt.Fprintf(file, "| Succeeded | %d | %s |\n", result.Succeeded, percentageString(result.Succeeded, result.Requests))
	_, _ = fmt.Fprintf(file, "| Not found | %d | %s |\n", result.NotFound, percentageString(result.NotFound, result.Requests))
	_, _ = fmt.Fprintf(file, "| Timed out | %d | %s |\n", result.TimedOut, percentageString(result.TimedOut, result.Requests))
	_, _ = fmt.Fprintf(file, "| Failed | %d | %s |\n", result.Failed, percentageString(result.Failed, result.Requests))
	_, _ = fmt.Fprintf(file, "| Canceled | %d | %s |\n", result.Canceled, percentageString(result.Canceled, result.Requests))
	_, _ = fmt.Fprintf(file, "\n")

	if len(sorted) > 0 {
		_, _ = fmt.Fprintf(file, "## Latency\n\n")
		_, _ = fmt.Fprintf(file, "| min | p50 | p90 | p99 | max |\n")
		_, _ = fmt.Fprintf(file, "|-----|-----|-----|-----|-----|\n")
		_, _ = fmt.Fprintf(file, "| %s | %s | %s | %s | %s |\n",
			formatDuration(sorted[0]),
			formatDuration(percentile(sorted, 50)),
			formatDuration(percentile(sorted, 90)),
			formatDuration(percentile(sorted, 99)),
			formatDuration(sorted[len(sorted)-1]),
		)
	}

	return nil
}
