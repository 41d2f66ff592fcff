package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/reorder/internal/logger"
)

const (
	appName              = "reorder"
	logFileName          = "reorder.log"
	defaultFrameInterval = 16
)

type Config struct {
	Combine         bool   `koanf:"combine"`           // columns accept cards dropped onto cards
	FrameIntervalMs int    `koanf:"frame_interval_ms"` // animation frame period (default: 16)
	LogLevel        string `koanf:"log_level"`         // "debug", "info", "warn" or "error"
	LogFile         string `koanf:"log_file"`          // default: XDG state dir
	DBPath          string `koanf:"db_path"`           // default: XDG data dir

	// Seed board used when the database is empty
	Columns []ColumnConfig `koanf:"columns"`
}

// ColumnConfig seeds one column of the board.
type ColumnConfig struct {
	Title string   `koanf:"title"`
	Cards []string `koanf:"cards"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	if cfg.DBPath != "" {
		cfg.DBPath = expandPath(cfg.DBPath)
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reorder/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// FrameInterval returns the animation frame period with the default applied.
func (c *Config) FrameInterval() time.Duration {
	ms := c.FrameIntervalMs
	if ms <= 0 || ms > 1000 {
		ms = defaultFrameInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// Level returns the configured log level.
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}

// LogPath returns where logs are written.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, logFileName))
}

// HasSeed returns true if a seed board is configured.
func (c *Config) HasSeed() bool {
	return len(c.Columns) > 0
}
