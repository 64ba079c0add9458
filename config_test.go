// FILE: tinylog-go/tinylog/config_test.go

package tinylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig checks the defaults and that the returned copy is
// detached from the package-level template
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.False(t, cfg.UTC)
	assert.Equal(t, "logs", cfg.Directory)
	assert.Equal(t, "tinylog", cfg.Name)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.EnableFile)
	assert.False(t, cfg.Async)
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)

	cfg.Directory = "/elsewhere"
	assert.Equal(t, "logs", DefaultConfig().Directory)
}

// TestConfigClone verifies Clone returns an independent copy
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Level = LevelError

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, LevelError, clone.Level)
}

// TestConfigNormalize checks malformed values are coerced, never rejected
func TestConfigNormalize(t *testing.T) {
	cfg := &Config{
		Level:      99,
		Name:       "   ",
		MaxSizeKB:  -5,
		MaxFiles:   0,
		BufferSize: -1,
	}
	cfg.normalize()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, "tinylog", cfg.Name)
	assert.Equal(t, int64(0), cfg.MaxSizeKB)
	assert.Equal(t, int64(1), cfg.MaxFiles)
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
}

// TestApplyOverride checks key=value overrides including level by name
func TestApplyOverride(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyOverride(
		"level=debug",
		"utc=true",
		"directory=/var/log/app",
		"name=app",
		"extension=txt",
		"enable_file=true",
		"max_size_kb=2048",
		"max_files=5",
		"async=true",
		"buffer_size=256",
	)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.True(t, cfg.UTC)
	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "app", cfg.Name)
	assert.Equal(t, "txt", cfg.Extension)
	assert.True(t, cfg.EnableFile)
	assert.Equal(t, int64(2048), cfg.MaxSizeKB)
	assert.Equal(t, int64(5), cfg.MaxFiles)
	assert.True(t, cfg.Async)
	assert.Equal(t, int64(256), cfg.BufferSize)
}

// TestApplyOverrideNumericLevel checks level accepts ordinals too
func TestApplyOverrideNumericLevel(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyOverride("level=4"))
	assert.Equal(t, LevelError, cfg.Level)
}

// TestApplyOverrideErrors verifies malformed overrides are collected
func TestApplyOverrideErrors(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ApplyOverride("nonsense=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	err = cfg.ApplyOverride("max_files=lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")

	err = cfg.ApplyOverride("no_equals_sign")
	require.Error(t, err)

	// Multiple failures combine into a single error
	err = cfg.ApplyOverride("bogus=1", "utc=maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")
}

// TestNewConfigFromFile loads a TOML file with a [tinylog] section
func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger.toml")
	content := `[tinylog]
level = 1
utc = true
directory = "/tmp/applogs"
name = "app"
enable_file = true
max_size_kb = 512
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.True(t, cfg.UTC)
	assert.Equal(t, "/tmp/applogs", cfg.Directory)
	assert.Equal(t, "app", cfg.Name)
	assert.True(t, cfg.EnableFile)
	assert.Equal(t, int64(512), cfg.MaxSizeKB)
	// Untouched keys keep their defaults
	assert.True(t, cfg.EnableConsole)
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
}

// TestNewConfigFromFileMissing verifies a missing file yields defaults
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestNewFromConfig verifies New wires level, path parts, and sinks
func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Level = LevelWarn
	cfg.Directory = dir
	cfg.Name = "wired"
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.MaxSizeKB = 0

	l := New(cfg)
	defer l.Shutdown()

	assert.Equal(t, LevelWarn, l.GetLevel())
	assert.Equal(t, filepath.Join(dir, "wired.log"), l.DefaultLogPath())

	l.Info("filtered out")
	l.Error("kept")
	require.NoError(t, l.Shutdown())

	content, err := os.ReadFile(filepath.Join(dir, "wired.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "kept")
	assert.NotContains(t, string(content), "filtered out")
}

// TestNewNilConfig checks nil falls back to defaults
func TestNewNilConfig(t *testing.T) {
	l := New(nil)
	defer l.Shutdown()

	assert.Equal(t, LevelInfo, l.GetLevel())
	assert.Equal(t, filepath.Join("logs", "tinylog.log"), l.DefaultLogPath())
}

// TestNewAsyncConfig checks Async starts the consumer
func TestNewAsyncConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableConsole = false
	cfg.Async = true

	l := New(cfg)
	assert.True(t, l.started.Load())
	require.NoError(t, l.Shutdown())
	assert.False(t, l.started.Load())
}
