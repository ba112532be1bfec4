package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/dgalbraith/uidshift/internal/event"
	"github.com/dgalbraith/uidshift/internal/filter"
	"github.com/dgalbraith/uidshift/internal/stats"
)

// Error classes for configuration failures, used by the CLI to pick an
// exit code. Per-entry failures never surface here; they accumulate in
// the stats snapshot instead.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrBaseDirectory = errors.New("base directory")
)

// Config describes a remap operation. It is constructed once per run and
// never mutated.
type Config struct {
	BaseDir   string
	FromBase  uint32
	ToBase    uint32
	RangeSize uint32
	UIDOnly   bool
	GIDOnly   bool
	DryRun    bool
	Verbose   bool

	Filter *filter.Chain      // optional exclusion patterns
	Events chan<- event.Event // optional per-entry outcome stream
	Stats  *stats.Collector   // optional; allocated when nil
}

// Result is the outcome of a remap operation. Err is set only for
// configuration errors and cancellation; a run with per-entry failures
// completes with Err == nil and a non-zero Stats.Failed count.
type Result struct {
	Stats stats.Snapshot
	Err   error
}

func (cfg Config) validate() error {
	if cfg.RangeSize == 0 {
		return fmt.Errorf("%w: range-size must be greater than zero", ErrInvalidConfig)
	}
	if uint64(cfg.FromBase)+uint64(cfg.RangeSize) > math.MaxUint32 {
		return fmt.Errorf("%w: from-base + range-size overflows the 32-bit ID space", ErrInvalidConfig)
	}
	if uint64(cfg.ToBase)+uint64(cfg.RangeSize) > math.MaxUint32 {
		return fmt.Errorf("%w: to-base + range-size overflows the 32-bit ID space", ErrInvalidConfig)
	}
	if cfg.UIDOnly && cfg.GIDOnly {
		return fmt.Errorf("%w: uid-only and gid-only are mutually exclusive", ErrInvalidConfig)
	}

	info, err := os.Stat(cfg.BaseDir)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBaseDirectory, cfg.BaseDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w %s: not a directory", ErrBaseDirectory, cfg.BaseDir)
	}
	return nil
}

// Run executes a remap operation, blocking until the traversal completes.
// Configuration is validated before any entry is touched; after that,
// per-entry and per-subtree failures are recorded and the run continues.
func Run(ctx context.Context, cfg Config) Result {
	if err := cfg.validate(); err != nil {
		return Result{Err: err}
	}

	collector := cfg.Stats
	if collector == nil {
		collector = stats.NewCollector()
	}

	r := &run{
		cfg:       cfg,
		mapping:   RangeMapping{FromBase: cfg.FromBase, ToBase: cfg.ToBase, RangeSize: cfg.RangeSize},
		tracker:   newInodeTracker(),
		collector: collector,
	}

	slog.Debug("starting remap",
		"base", cfg.BaseDir,
		"from", cfg.FromBase,
		"to", cfg.ToBase,
		"size", cfg.RangeSize,
		"dry_run", cfg.DryRun,
	)
	r.emit(event.Event{Type: event.ScanStarted})

	scanner := NewScanner(ScannerConfig{Root: cfg.BaseDir})
	err := scanner.Walk(ctx, r.processEntry, r.subtreeFailed)

	r.emit(event.Event{Type: event.RunComplete})

	return Result{
		Stats: collector.Snapshot(),
		Err:   err,
	}
}
