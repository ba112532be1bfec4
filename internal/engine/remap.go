package engine

import (
	"log/slog"
	"time"

	"github.com/dgalbraith/uidshift/internal/event"
	"github.com/dgalbraith/uidshift/internal/stats"
)

// progressInterval is how many entries pass between verbose progress logs.
const progressInterval = 1000

// run holds the mutable state of a single remap traversal. A fresh run is
// built per Run call; nothing here outlives the traversal.
type run struct {
	cfg       Config
	mapping   RangeMapping
	tracker   *inodeTracker
	collector *stats.Collector
	processed int64
}

// processEntry applies the per-entry pipeline: exclusion, hardlink
// dedup, translation, unchanged check, then mutation (or a dry-run
// record). A failure here never stops the traversal.
func (r *run) processEntry(e Entry) {
	r.collector.AddEntriesScanned(1)
	r.processed++
	if r.cfg.Verbose && r.processed%progressInterval == 0 {
		slog.Debug("progress", "processed", r.processed, "applied", r.collector.Snapshot().Applied)
	}

	// Exclusion hides the entry from mutation but never prunes descent;
	// the scanner walks every directory regardless, and each descendant is
	// tested against the patterns on its own relative path.
	if r.cfg.Filter != nil && r.cfg.Filter.Excluded(e.RelPath) {
		r.collector.AddSkippedExcluded(1)
		r.skip(e, event.SkipExcluded)
		return
	}

	if e.Nlink > 1 && !r.tracker.ShouldProcess(e) {
		if first, ok := r.tracker.FirstPath(e.DevIno); ok {
			slog.Debug("skipping hard link", "path", e.Path, "first", first)
		}
		r.collector.AddSkippedHardlink(1)
		r.skip(e, event.SkipHardlink)
		return
	}

	newUID, newGID := e.UID, e.GID
	if !r.cfg.GIDOnly {
		newUID = r.mapping.Translate(e.UID)
	}
	if !r.cfg.UIDOnly {
		newGID = r.mapping.Translate(e.GID)
	}

	if newUID == e.UID && newGID == e.GID {
		r.collector.AddSkippedUnchanged(1)
		r.skip(e, event.SkipUnchanged)
		return
	}

	if !r.cfg.DryRun {
		// -1 leaves the respective ID untouched.
		uid, gid := -1, -1
		if newUID != e.UID {
			uid = int(newUID)
		}
		if newGID != e.GID {
			gid = int(newGID)
		}
		if err := lchown(e.Path, uid, gid); err != nil {
			r.collector.AddFailed(1)
			r.emit(event.Event{
				Type:      event.EntryFailed,
				Timestamp: time.Now(),
				Path:      e.RelPath,
				OldUID:    e.UID,
				OldGID:    e.GID,
				Error:     err,
			})
			return
		}
	}

	r.collector.AddApplied(1)
	r.emit(event.Event{
		Type:      event.EntryApplied,
		Timestamp: time.Now(),
		Path:      e.RelPath,
		OldUID:    e.UID,
		NewUID:    newUID,
		OldGID:    e.GID,
		NewGID:    newGID,
		DryRun:    r.cfg.DryRun,
	})
}

// subtreeFailed records a directory that could not be listed (or an entry
// that could not be stat'd). The subtree is skipped; siblings continue.
func (r *run) subtreeFailed(path string, err error) {
	slog.Warn("traversal failed", "path", path, "error", err)
	r.collector.AddFailed(1)
	r.emit(event.Event{
		Type:      event.SubtreeFailed,
		Timestamp: time.Now(),
		Path:      path,
		Error:     err,
	})
}

func (r *run) skip(e Entry, reason event.SkipReason) {
	r.emit(event.Event{
		Type:      event.EntrySkipped,
		Timestamp: time.Now(),
		Path:      e.RelPath,
		OldUID:    e.UID,
		OldGID:    e.GID,
		Reason:    reason,
	})
}

func (r *run) emit(ev event.Event) {
	if r.cfg.Events == nil {
		return
	}
	r.cfg.Events <- ev
}
