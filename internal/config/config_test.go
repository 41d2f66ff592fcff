//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reorder/internal/logger"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/boards/reorder.db",
			expected: filepath.Join(home, "boards", "reorder.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/reorder.db",
			expected: "/var/lib/reorder.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/reorder.db",
			expected: "data/reorder.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "reorder", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	global := writeConfig(t, "global.toml", `
combine = true
frame_interval_ms = 33
log_level = "debug"

[[columns]]
title = "Todo"
cards = ["Write tests", "Ship"]

[[columns]]
title = "Done"
`)
	local := writeConfig(t, "local.toml", `
frame_interval_ms = 20
db_path = "/tmp/board.db"
`)

	cfg, err := LoadFrom(global, filepath.Join(t.TempDir(), "missing.toml"), local)
	require.NoError(t, err)

	assert.True(t, cfg.Combine)
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval(), "later files win")
	assert.Equal(t, logger.LevelDebug, cfg.Level())
	assert.Equal(t, "/tmp/board.db", cfg.DBPath)
	require.Len(t, cfg.Columns, 2)
	assert.Equal(t, "Todo", cfg.Columns[0].Title)
	assert.Equal(t, []string{"Write tests", "Ship"}, cfg.Columns[0].Cards)
	assert.Empty(t, cfg.Columns[1].Cards)
	assert.True(t, cfg.HasSeed())
}

func TestLoadFrom_Errors(t *testing.T) {
	t.Run("invalid toml", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "bad.toml", "combine = = true"))
		assert.Error(t, err)
	})
	t.Run("unknown log level", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "level.toml", `log_level = "loud"`))
		assert.Error(t, err)
	})
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name     string
		ms       int
		expected time.Duration
	}{
		{"default", 0, 16 * time.Millisecond},
		{"negative", -5, 16 * time.Millisecond},
		{"too slow", 5000, 16 * time.Millisecond},
		{"custom", 40, 40 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{FrameIntervalMs: tt.ms}
			assert.Equal(t, tt.expected, cfg.FrameInterval())
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := Config{LogFile: "/tmp/custom.log"}
	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", path)

	// runs after the environment is restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	cfg = Config{}
	path, err = cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "reorder.log", filepath.Base(path))
}

func TestHasSeed(t *testing.T) {
	assert.False(t, (&Config{}).HasSeed())
	assert.True(t, (&Config{Columns: []ColumnConfig{{Title: "Todo"}}}).HasSeed())
}
