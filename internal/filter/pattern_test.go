package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*.log", `.*\.log`},
		{"tmp/*", `tmp/.*`},
		{"a*b*c", `a.*b.*c`},
		{"plain", `plain`},
		{"**", `.*`},
		{"", ``},
		{"a.b", `a\.b`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, globToRegex(tt.pattern), "pattern %q", tt.pattern)
	}
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.log", "file.log", true},
		{"*.log", "file.txt", false},
		{"test.*", "test.txt", true},
		{"var/log/*", "var/log/test.log", true},
		{"exact/match", "exact/match", true},
		{"*", "anything", true},
		{"*", "", true},
		{"a*b*c", "a.b.c", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "acb", false},
		// Full-string match: no substring hits.
		{"path/to", "path/to/file", false},
		{"path", "long/path/name", false},
		// Case sensitive.
		{"*.log", "File.LOG", false},
	}

	for _, tt := range tests {
		cp, err := compilePattern(tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, cp.match(tt.path), "pattern %q path %q", tt.pattern, tt.path)
	}
}

func TestEmptyPatternMatchesOnlyEmpty(t *testing.T) {
	cp, err := compilePattern("")
	require.NoError(t, err)
	assert.True(t, cp.match(""))
	assert.False(t, cp.match("file.txt"))
}
