package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "ERROR"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "HELLO")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 33)
	assert.Equal(t, strings.Repeat(lightBlock, 33), lines[0])
	assert.True(t, strings.HasPrefix(lines[4], strings.Repeat(lightBlock, 4)+strings.Repeat(darkBlock, 7)+lightBlock))
}

func TestRunTextMargin(t *testing.T) {
	out, err := execute(t, "--margin", "0", "HELLO")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 25)
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(darkBlock, 7)))
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "--output", "json", "--qr-version", "1", "--level", "H", "--mask", "3", "HELLO")
	require.NoError(t, err)

	var got jsonSymbol
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "H", got.Level)
	assert.Equal(t, 3, got.Mask)
	assert.Equal(t, 21, got.Size)
	require.Len(t, got.Modules, 21)
	assert.True(t, got.Modules[0][0])
	assert.False(t, got.Modules[0][7])
	assert.True(t, got.Modules[13][8], "dark module")
}

func TestRunConfigFileWithOverride(t *testing.T) {
	f := filepath.Join(t.TempDir(), "qrencode.toml")
	require.NoError(t, os.WriteFile(f, []byte(testConfig), 0600))

	out, err := execute(t, "--config", f, "--mask", "5", "HELLO")
	require.NoError(t, err)

	var got jsonSymbol
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "M", got.Level)
	assert.Equal(t, 5, got.Mask)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "--mask", "9", "HELLO")
	assert.Error(t, err)

	_, err = execute(t, strings.Repeat("x", 33))
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "HELLO")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}
