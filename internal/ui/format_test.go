package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dgalbraith/uidshift/internal/stats"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{48917, "48,917"},
		{1234567, "1,234,567"},
		{-1000, "-1,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.n))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{3 * time.Second, "3s"},
		{95 * time.Second, "1m 35s"},
		{3725 * time.Second, "1h 02m 05s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func TestCompletionSummary(t *testing.T) {
	snap := stats.Snapshot{
		EntriesScanned:   4,
		Applied:          2,
		SkippedUnchanged: 2,
		Elapsed:          3 * time.Second,
	}

	s := CompletionSummary(snap, false, false)
	assert.Contains(t, s, "entries 4")
	assert.Contains(t, s, "applied 2")
	assert.Contains(t, s, "skipped 2")
	assert.Contains(t, s, "errors 0")
	assert.Contains(t, s, "time 3s")
	assert.Contains(t, s, "✓")
	assert.NotContains(t, s, "dry run")
}

func TestCompletionSummaryFailures(t *testing.T) {
	snap := stats.Snapshot{EntriesScanned: 2, Failed: 1}

	s := CompletionSummary(snap, false, false)
	assert.Contains(t, s, "errors 1")
	assert.Contains(t, s, "✗")
}

func TestCompletionSummaryDryRun(t *testing.T) {
	s := CompletionSummary(stats.Snapshot{}, false, true)
	assert.Contains(t, s, "(dry run)")
}
