package ui

import (
	"fmt"
	"io"

	"github.com/dgalbraith/uidshift/internal/stats"
)

// plainPresenter writes per-entry lines to stdout and failures to stderr.
// Failures are always listed; skips and applied changes only in verbose
// mode. A non-zero failure count must never silently present as success.
type plainPresenter struct {
	w       io.Writer
	errW    io.Writer
	stats   *stats.Collector
	isTTY   bool
	verbose bool
	dryRun  bool
}

func (p *plainPresenter) Run(events <-chan Event) error {
	for ev := range events {
		p.handleEvent(ev)
	}
	return nil
}

func (p *plainPresenter) handleEvent(ev Event) {
	switch ev.Type {
	case EntryApplied:
		if !p.verbose {
			return
		}
		suffix := ""
		if ev.DryRun {
			suffix = " (dry run)"
		}
		fmt.Fprintf(p.w, "%s: %d:%d -> %d:%d%s\n",
			ev.Path, ev.OldUID, ev.OldGID, ev.NewUID, ev.NewGID, suffix)
	case EntrySkipped:
		if !p.verbose {
			return
		}
		fmt.Fprintf(p.w, "%s: skipped (%s)\n", ev.Path, ev.Reason)
	case EntryFailed, SubtreeFailed:
		errMsg := "error"
		if ev.Error != nil {
			errMsg = ev.Error.Error()
		}
		fmt.Fprintf(p.errW, "failed: %s: %s\n", ev.Path, errMsg)
	}
}

func (p *plainPresenter) Summary() string {
	return CompletionSummary(p.stats.Snapshot(), p.isTTY, p.dryRun)
}
