package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	ScanStarted  Type = iota + 1
	EntryApplied      // ownership changed (or would change, in dry-run)
	EntrySkipped
	EntryFailed
	SubtreeFailed // a directory could not be listed
	RunComplete
)

var typeNames = [...]string{
	ScanStarted:   "ScanStarted",
	EntryApplied:  "EntryApplied",
	EntrySkipped:  "EntrySkipped",
	EntryFailed:   "EntryFailed",
	SubtreeFailed: "SubtreeFailed",
	RunComplete:   "RunComplete",
}

func (t Type) String() string {
	if int(t) >= 1 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// SkipReason explains an EntrySkipped event.
type SkipReason int

const (
	SkipExcluded SkipReason = iota + 1
	SkipHardlink
	SkipUnchanged
)

var skipNames = [...]string{
	SkipExcluded:  "excluded",
	SkipHardlink:  "duplicate-hardlink",
	SkipUnchanged: "unchanged-ids",
}

func (r SkipReason) String() string {
	if int(r) >= 1 && int(r) < len(skipNames) {
		return skipNames[r]
	}
	return "unknown"
}

// Event represents a single per-entry outcome from the engine.
type Event struct {
	Type      Type
	Timestamp time.Time
	Path      string // relative path
	OldUID    uint32
	NewUID    uint32
	OldGID    uint32
	NewGID    uint32
	Reason    SkipReason
	Error     error
	DryRun    bool
}
