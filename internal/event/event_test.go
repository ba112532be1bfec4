package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ScanStarted", ScanStarted.String())
	assert.Equal(t, "EntryApplied", EntryApplied.String())
	assert.Equal(t, "SubtreeFailed", SubtreeFailed.String())
	assert.Equal(t, "Unknown", Type(0).String())
	assert.Equal(t, "Unknown", Type(99).String())
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "excluded", SkipExcluded.String())
	assert.Equal(t, "duplicate-hardlink", SkipHardlink.String())
	assert.Equal(t, "unchanged-ids", SkipUnchanged.String())
	assert.Equal(t, "unknown", SkipReason(0).String())
	assert.Equal(t, "unknown", SkipReason(99).String())
}
