package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlagSkipsRequiredFlags(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "uidshift")
}

func TestFromAndToBaseRequired(t *testing.T) {
	_, err := execute(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from-base and --to-base are required")
}

func TestVerboseQuietMutuallyExclusive(t *testing.T) {
	_, err := execute(t,
		"--from-base", "100000", "--to-base", "50000000",
		"--verbose", "--quiet", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestGenDocsMarkdown(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "gen-docs", "--dir", dir, "--format", "markdown")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "uidshift.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Remap UID/GID ranges")
	assert.Contains(t, string(data), "--range-size")
	assert.Contains(t, string(data), "--exclude")
}

func TestGenDocsUnknownFormat(t *testing.T) {
	_, err := execute(t, "gen-docs", "--dir", t.TempDir(), "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "pdf"`)
}
