package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Output.Asp)
	assert.False(t, cfg.Output.Raw)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	path := write(t, `
[output]
asp = true
raw = true

[log]
level = "debug"
`)
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Asp)
	assert.True(t, cfg.Output.Raw)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartial(t *testing.T) {
	// omitted sections keep their defaults
	path := write(t, `
[output]
asp = true
`)
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Asp)
	assert.False(t, cfg.Output.Raw)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := write(t, "[output\nasp =")
	//
	_, err := Load(path)
	require.Error(t, err)
}

// ============================================================================
// Framework
// ============================================================================

func write(t *testing.T, contents string) string {
	t.Helper()
	//
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	//
	return path
}
