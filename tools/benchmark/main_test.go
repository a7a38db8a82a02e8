package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-algorand-indexer/internal/indexer"
	"github.com/feral-file/ff-algorand-indexer/internal/mocks"
	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.00s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m 30s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestPercentile(t *testing.T) {
	var durations []time.Duration
	for i := 100; i >= 1; i-- {
		durations = append(durations, time.Duration(i)*time.Millisecond)
	}
	sorted := sortDurations(durations)

	assert.Equal(t, time.Millisecond, sorted[0])
	assert.Equal(t, 50*time.Millisecond, percentile(sorted, 50))
	assert.Equal(t, 90*time.Millisecond, percentile(sorted, 90))
	assert.Equal(t, 99*time.Millisecond, percentile(sorted, 99))
	assert.Equal(t, 100*time.Millisecond, percentile(sorted, 100))
	assert.Equal(t, time.Duration(0), percentile(nil, 50))

	// The input is left untouched
	assert.Equal(t, 100*time.Millisecond, durations[0])
}

func TestFormatRateAndPercentage(t *testing.T) {
	assert.Equal(t, "N/A", formatRate(10, 0))
	assert.Equal(t, "5.00/s", formatRate(10, 2*time.Second))
	assert.Equal(t, "0.00%", percentageString(1, 0))
	assert.Equal(t, "25.00%", percentageString(1, 4))
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(&Config{Operation: "block", Requests: 1, Concurrency: 1}))
	assert.Error(t, validateConfig(&Config{Operation: "mint", Requests: 1, Concurrency: 1}))
	assert.Error(t, validateConfig(&Config{Operation: "block", Requests: 0, Concurrency: 1}))
	assert.Error(t, validateConfig(&Config{Operation: "block", Requests: 1, Concurrency: 0}))
}

func TestRunBenchmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockIndexerClient(ctrl)
	idx := indexer.NewFromClient(client)

	gomock.InOrder(
		client.EXPECT().Block(gomock.Any(), algorand.Round(5)).Return(&algorand.Block{Round: 5}, nil).Times(6),
		client.EXPECT().Block(gomock.Any(), algorand.Round(5)).Return(nil, &algorand.RequestError{StatusCode: 404}).Times(2),
		client.EXPECT().Block(gomock.Any(), algorand.Round(5)).Return(nil, context.DeadlineExceeded).Times(1),
		client.EXPECT().Block(gomock.Any(), algorand.Round(5)).Return(nil, errors.New("bad gateway")).Times(1),
	)

	result := runBenchmark(context.Background(), idx, &Config{
		Operation:   "block",
		Requests:    10,
		Concurrency: 1,
		Round:       5,
	})

	assert.Equal(t, 6, result.Succeeded)
	assert.Len(t, result.Latencies, 6)
	assert.Equal(t, 2, result.NotFound)
	assert.Equal(t, 1, result.TimedOut)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Canceled)
	assert.Equal(t, map[string]int{"indexer block request: bad gateway": 1}, result.Errors)
}

func TestRunBenchmark_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockIndexerClient(ctrl)
	idx := indexer.NewFromClient(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := runBenchmark(ctx, idx, &Config{Operation: "health", Requests: 3, Concurrency: 2})
	assert.Equal(t, 3, result.Canceled)
	assert.Equal(t, 0, result.Succeeded)
}

func TestWriteMarkdownReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	result := &Result{
		Operation:   "health",
		Requests:    2,
		Concurrency: 1,
		Succeeded:   2,
		Elapsed:     time.Second,
		Latencies:   []time.Duration{10 * time.Millisecond, 20 * time.Millisecond},
	}

	require.NoError(t, writeMarkdownReport(path, "https://mainnet-idx.example.com", result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, "# Indexer Benchmark Report")
	assert.Contains(t, report, "| **Operation** | health |")
	assert.Contains(t, report, "| Succeeded | 2 | 100.00% |")
	assert.Contains(t, report, "| 10ms | 10ms | 20ms | 20ms | 20ms |")
}
