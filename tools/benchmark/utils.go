// Package main provides helper functions for the benchmark CLI
package main

import (
	"fmt"
	"sort"
	"time"
)

// formatRate formats a rate (items per second)
func formatRate(count int, duration time.Duration) string {
	if duration.Seconds() == 0 {
		return "N/A"
	}
	rate := float64(count) / duration.Seconds()
	return fmt.Sprintf("%.2f/s", rate)
}

// percentageString calculates and formats a percentage
func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// percentile returns the nearest rank percentile of sorted durations
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(p/100*float64(len(sorted)) + 0.5)
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

func sortDurations(durations []time.Duration) []time.Duration {
	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
