// Package config handles the XDG configuration directory and the
// settings file read from it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"weekplan/internal/logging"
	"weekplan/internal/planner"
)

const (
	// AppName is the application directory name.
	AppName = "weekplan"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. WEEKPLAN_STORAGE_DIR.
	EnvPrefix = "WEEKPLAN"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// StorageDir holds one file per storage slot.
	StorageDir string

	// StorageKey names the slot the task list lives in.
	StorageKey string

	// DateLayout is the layout new tasks' dates are written in.
	DateLayout planner.DateLayout

	// WeekStart is the first column of the week view.
	WeekStart time.Weekday

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// Fs is the filesystem config and storage live on.
	Fs afero.Fs

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// New creates a Config with defaults for the given or default config directory.
// Nothing is read from disk.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:        dir,
		StorageDir: filepath.Join(dir, "storage"),
		StorageKey: "tasks",
		DateLayout: planner.LayoutLong,
		WeekStart:  time.Monday,
		LogLevel:   logging.LevelWarn,
		Fs:         afero.NewOsFs(),
	}, nil
}

// Load creates a Config and overlays settings from <dir>/config.yaml and
// WEEKPLAN_* environment variables. A missing settings file is not an error.
func Load(fsys afero.Fs, configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if fsys != nil {
		cfg.Fs = fsys
	}

	v := viper.New()
	v.SetFs(cfg.Fs)
	v.SetConfigFile(cfg.Path())
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.dir", cfg.StorageDir)
	v.SetDefault("storage.key", cfg.StorageKey)
	v.SetDefault("date.layout", cfg.DateLayout.String())
	v.SetDefault("week.start", "monday")
	v.SetDefault("log.level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", cfg.Path(), err)
	}

	cfg.StorageDir = v.GetString("storage.dir")
	cfg.StorageKey = v.GetString("storage.key")
	if cfg.StorageKey == "" || strings.ContainsAny(cfg.StorageKey, `/\`) {
		return nil, fmt.Errorf("invalid storage.key: %q", cfg.StorageKey)
	}

	layout, err := planner.ParseLayout(v.GetString("date.layout"))
	if err != nil {
		return nil, fmt.Errorf("invalid date.layout: %w", err)
	}
	cfg.DateLayout = layout

	start, err := parseWeekStart(v.GetString("week.start"))
	if err != nil {
		return nil, err
	}
	cfg.WeekStart = start

	level := v.GetString("log.level")
	if !logging.ValidLevel(level) {
		return nil, fmt.Errorf("invalid log.level: %s", level)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func parseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon":
		return time.Monday, nil
	case "sunday", "sun":
		return time.Sunday, nil
	default:
		return time.Monday, fmt.Errorf("invalid week.start: %s", s)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the settings file path.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return c.fs().MkdirAll(c.Dir, 0700)
}

// Today returns the current calendar date.
func (c *Config) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return planner.Day(now())
}

// NewLogger builds the diagnostics logger. --debug overrides log.level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := c.LogLevel
	if c.Debug {
		level = logging.LevelDebug
	}
	return logging.New(w, level)
}

// Log returns c.Logger, or a discarding logger when none is set.
func (c *Config) Log() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func (c *Config) fs() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// Filesystem returns the filesystem storage lives on.
func (c *Config) Filesystem() afero.Fs { return c.fs() }
