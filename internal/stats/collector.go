package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Collector tracks remap outcome counts using atomic counters. The engine
// is the only writer during a run; presenters read concurrently.
type Collector struct {
	entriesScanned   atomic.Int64
	applied          atomic.Int64
	skippedExcluded  atomic.Int64
	skippedHardlink  atomic.Int64
	skippedUnchanged atomic.Int64
	failed           atomic.Int64
	startTime        time.Time
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	EntriesScanned   int64
	Applied          int64
	SkippedExcluded  int64
	SkippedHardlink  int64
	SkippedUnchanged int64
	Failed           int64
	Elapsed          time.Duration
}

func (c *Collector) AddEntriesScanned(n int64)   { c.entriesScanned.Add(n) }
func (c *Collector) AddApplied(n int64)          { c.applied.Add(n) }
func (c *Collector) AddSkippedExcluded(n int64)  { c.skippedExcluded.Add(n) }
func (c *Collector) AddSkippedHardlink(n int64)  { c.skippedHardlink.Add(n) }
func (c *Collector) AddSkippedUnchanged(n int64) { c.skippedUnchanged.Add(n) }
func (c *Collector) AddFailed(n int64)           { c.failed.Add(n) }

// Snapshot returns a consistent point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		EntriesScanned:   c.entriesScanned.Load(),
		Applied:          c.applied.Load(),
		SkippedExcluded:  c.skippedExcluded.Load(),
		SkippedHardlink:  c.skippedHardlink.Load(),
		SkippedUnchanged: c.skippedUnchanged.Load(),
		Failed:           c.failed.Load(),
		Elapsed:          c.Elapsed(),
	}
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

// Skipped returns the total skip count across all skip reasons.
func (s Snapshot) Skipped() int64 {
	return s.SkippedExcluded + s.SkippedHardlink + s.SkippedUnchanged
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"scanned=%d applied=%d excluded=%d hardlinks=%d unchanged=%d failed=%d",
		s.EntriesScanned, s.Applied, s.SkippedExcluded,
		s.SkippedHardlink, s.SkippedUnchanged, s.Failed,
	)
}
