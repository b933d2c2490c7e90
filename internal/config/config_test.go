package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"weekplan/internal/planner"
)

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", "weekplan") {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	if got := DefaultConfigDir(); got != filepath.Join("/home/someone", ".config", "weekplan") {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/cfg")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dir != "/cfg" {
		t.Errorf("expected dir /cfg, got %q", cfg.Dir)
	}
	if cfg.StorageDir != filepath.Join("/cfg", "storage") {
		t.Errorf("unexpected storage dir %q", cfg.StorageDir)
	}
	if cfg.StorageKey != "tasks" {
		t.Errorf("unexpected storage key %q", cfg.StorageKey)
	}
	if cfg.DateLayout != planner.LayoutLong || cfg.WeekStart != time.Monday {
		t.Errorf("unexpected layout %v / week start %v", cfg.DateLayout, cfg.WeekStart)
	}
	if !strings.EqualFold(cfg.LogLevel, "warn") {
		t.Errorf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoad_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	yaml := `storage:
  dir: /elsewhere
  key: work
date:
  layout: full
week:
  start: sunday
log:
  level: debug
`
	if err := afero.WriteFile(fs, "/cfg/config.yaml", []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs, "/cfg")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorageDir != "/elsewhere" || cfg.StorageKey != "work" {
		t.Errorf("unexpected storage %q / %q", cfg.StorageDir, cfg.StorageKey)
	}
	if cfg.DateLayout != planner.LayoutFull {
		t.Errorf("expected full layout, got %v", cfg.DateLayout)
	}
	if cfg.WeekStart != time.Sunday {
		t.Errorf("expected sunday start, got %v", cfg.WeekStart)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/cfg/config.yaml", []byte("storage:\n  key: work\n"), 0o600)
	t.Setenv("WEEKPLAN_STORAGE_KEY", "home")

	cfg, err := Load(fs, "/cfg")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StorageKey != "home" {
		t.Errorf("expected env override, got %q", cfg.StorageKey)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "storage: [unclosed\n"},
		{"bad layout", "date:\n  layout: short\n"},
		{"bad week start", "week:\n  start: friday\n"},
		{"bad level", "log:\n  level: chatty\n"},
		{"bad key", "storage:\n  key: ../x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			afero.WriteFile(fs, "/cfg/config.yaml", []byte(tt.yaml), 0o600)
			if _, err := Load(fs, "/cfg"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToday(t *testing.T) {
	cfg, _ := New("/cfg")
	cfg.Now = func() time.Time { return time.Date(2025, 4, 16, 21, 45, 0, 0, time.UTC) }

	if got := cfg.Today(); !got.Equal(time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected today %v", got)
	}
}

func TestLogger_DebugOverridesLevel(t *testing.T) {
	cfg, _ := New("/cfg")
	var buf bytes.Buffer

	cfg.NewLogger(&buf).Debug("quiet")
	if buf.Len() != 0 {
		t.Errorf("expected debug to be filtered at warn, got %q", buf.String())
	}

	cfg.Debug = true
	cfg.NewLogger(&buf).Debug("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("expected debug record with --debug, got %q", buf.String())
	}
}

func TestEnsureDir(t *testing.T) {
	cfg, _ := New("/cfg/nested")
	cfg.Fs = afero.NewMemMapFs()
	if err := cfg.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.DirExists(cfg.Fs, "/cfg/nested"); !ok {
		t.Error("expected directory to exist")
	}
}
