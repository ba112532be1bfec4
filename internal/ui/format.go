package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgalbraith/uidshift/internal/stats"
)

// Catppuccin Mocha accents, matching the rest of the tooling around here.
var (
	colorGreen = lipgloss.Color("#a6e3a1")
	colorRed   = lipgloss.Color("#f38ba8")
	colorMuted = lipgloss.Color("#5a6278")

	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailed = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
)

// CompletionSummary builds a final summary line from a snapshot.
// Format: done ✓  entries 48,917  applied 1,204  skipped 47,713  errors 0  time 3s
func CompletionSummary(snap stats.Snapshot, isTTY, dryRun bool) string {
	icon := "✓"
	iconStyle := styleOK
	if snap.Failed > 0 {
		icon = "✗"
		iconStyle = styleFailed
	}

	errPart := fmt.Sprintf("errors %d", snap.Failed)
	if isTTY {
		icon = iconStyle.Render(icon)
		if snap.Failed > 0 {
			errPart = styleFailed.Render(errPart)
		} else {
			errPart = styleMuted.Render(errPart)
		}
	}

	base := fmt.Sprintf("done %s  entries %s  applied %s  skipped %s  %s  time %s",
		icon,
		FormatCount(snap.EntriesScanned),
		FormatCount(snap.Applied),
		FormatCount(snap.Skipped()),
		errPart,
		FormatDuration(snap.Elapsed),
	)

	if dryRun {
		base += "  (dry run)"
	}
	return base
}

// FormatCount formats an integer with comma separators.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDuration formats an elapsed duration compactly.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
