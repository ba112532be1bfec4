package ui

import "github.com/dgalbraith/uidshift/internal/event"

// Event is re-exported so presenters and callers share one type.
type Event = event.Event

// Re-export event types for convenience.
const (
	ScanStarted   = event.ScanStarted
	EntryApplied  = event.EntryApplied
	EntrySkipped  = event.EntrySkipped
	EntryFailed   = event.EntryFailed
	SubtreeFailed = event.SubtreeFailed
	RunComplete   = event.RunComplete
)
