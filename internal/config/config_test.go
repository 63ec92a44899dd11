package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/Faultbox/radial-offset/internal/radial"
	"github.com/Faultbox/radial-offset/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Offset.Distance != [3]float32{0.1, 0.1, 0.0} {
		t.Errorf("expected offset (0.1, 0.1, 0), got %v", cfg.Offset.Distance)
	}
	if cfg.Offset.Point != radial.ModeObject {
		t.Errorf("expected point mode object, got %s", cfg.Offset.Point)
	}
	if cfg.Offset.Custom != nil {
		t.Errorf("expected no custom point, got %v", *cfg.Offset.Custom)
	}
	if cfg.Scene.Scale != [3]float32{1, 1, 1} {
		t.Errorf("expected unit scale, got %v", cfg.Scene.Scale)
	}
	if !cfg.ObjectMatrix().IsIdentity() {
		t.Error("expected identity object matrix by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "radoff.yaml")

	yamlContent := `
offset:
  distance: [0.5, 0, -0.25]
  point: custom
  custom: [1, 2, 3]

scene:
  cursor: [4, 5, 6]
  location: [1, 0, 0]
  scale: [2, 2, 2]

logging:
  level: "debug"
  log_file: "radoff.log"

metrics:
  textfile: "radoff.prom"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Offset.Distance != [3]float32{0.5, 0, -0.25} {
		t.Errorf("expected distance (0.5, 0, -0.25), got %v", cfg.Offset.Distance)
	}
	if cfg.Offset.Point != radial.ModeCustom {
		t.Errorf("expected point custom, got %s", cfg.Offset.Point)
	}
	if cfg.Offset.Custom == nil || *cfg.Offset.Custom != [3]float32{1, 2, 3} {
		t.Errorf("expected custom (1, 2, 3), got %v", cfg.Offset.Custom)
	}
	if cfg.Scene.Cursor != [3]float32{4, 5, 6} {
		t.Errorf("expected cursor (4, 5, 6), got %v", cfg.Scene.Cursor)
	}
	// Rotation was not in the file and keeps its default
	if cfg.Scene.Rotation != [3]float32{} {
		t.Errorf("expected zero rotation, got %v", cfg.Scene.Rotation)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "radoff.log" {
		t.Errorf("expected log file 'radoff.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Metrics.Textfile != "radoff.prom" {
		t.Errorf("expected metrics textfile 'radoff.prom', got %s", cfg.Metrics.Textfile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"bad syntax":   "offset:\n  distance: not a list\n  invalid syntax here\n",
		"bad mode":     "offset:\n  point: median\n",
		"short vector": "offset:\n  distance: [1, 2]\n",
		"unknown key":  "offset:\n  distanse: [1, 2, 3]\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Offset.Distance != Default().Offset.Distance {
		t.Errorf("empty file should keep defaults, got %v", cfg.Offset.Distance)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/radoff.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Offset.Distance = [3]float32{2000, 0, -1001}
	cfg.Offset.Point = radial.ModeCustom
	cfg.Scene.Scale = [3]float32{1, 0, 1}
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Errorf("expected 5 problems, got %d: %v", len(errs), err)
	}
	for _, want := range []string{"offset.distance[0]", "offset.distance[2]", "offset.custom", "scene.scale[1]", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestReference(t *testing.T) {
	cfg := Default()
	cfg.Offset.Point = radial.ModeCursor

	ref, err := cfg.Reference(math.Vec3{X: 1, Y: 2, Z: 3})
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	if got, want := ref, (radial.Cursor{Point: math.Vec3{X: 1, Y: 2, Z: 3}}); got != want {
		t.Errorf("Reference() = %v, want %v", got, want)
	}

	cfg.Offset.Point = radial.ModeCustom
	if _, err := cfg.Reference(math.Vec3{}); !errors.Is(err, radial.ErrMissingPoint) {
		t.Errorf("expected ErrMissingPoint, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("offset:\n  point: bounding\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find radoff.yaml in current directory")
	}
}

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "offset flag",
			args: []string{"--offset", "0,0.5,-1"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Offset.Distance != [3]float32{0, 0.5, -1} {
					t.Errorf("expected offset (0, 0.5, -1), got %v", cfg.Offset.Distance)
				}
			},
		},
		{
			name: "point and custom flags",
			args: []string{"--point", "custom", "--custom", "1,1,1"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Offset.Point != radial.ModeCustom {
					t.Errorf("expected point custom, got %s", cfg.Offset.Point)
				}
				if cfg.Offset.Custom == nil || *cfg.Offset.Custom != [3]float32{1, 1, 1} {
					t.Errorf("expected custom (1, 1, 1), got %v", cfg.Offset.Custom)
				}
			},
		},
		{
			name: "cursor flag",
			args: []string{"--cursor", "3,2,1"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Cursor != [3]float32{3, 2, 1} {
					t.Errorf("expected cursor (3, 2, 1), got %v", cfg.Scene.Cursor)
				}
			},
		},
		{
			name: "no flags keeps defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Offset.Point != radial.ModeObject {
					t.Errorf("expected point object, got %s", cfg.Offset.Point)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := newFlags(t, tt.args...).apply(cfg); err != nil {
				t.Fatalf("apply flags: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsWrongLength(t *testing.T) {
	err := newFlags(t, "--offset", "1,2").apply(Default())
	if err == nil || !strings.Contains(err.Error(), "--offset") {
		t.Errorf("expected --offset length error, got %v", err)
	}
}

func TestPointFlagRejectsUnknownMode(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs)
	if err := fs.Parse([]string{"--point", "median"}); err == nil {
		t.Error("expected parse error for unknown mode")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "radoff.yaml")
	yamlContent := `
offset:
  distance: [1, 1, 1]
  point: bounding
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(newFlags(t, "--config", configPath, "--offset", "2,0,0"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Offset should come from the flag, not the file
	if cfg.Offset.Distance != [3]float32{2, 0, 0} {
		t.Errorf("expected offset (2, 0, 0) from flag, got %v", cfg.Offset.Distance)
	}
	// Point should come from the file since no flag overrides it
	if cfg.Offset.Point != radial.ModeBounding {
		t.Errorf("expected point bounding from file, got %s", cfg.Offset.Point)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	_, err := Load(newFlags(t, "--point", "custom"))
	if err == nil || !strings.Contains(err.Error(), "offset.custom") {
		t.Errorf("expected offset.custom validation error, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Offset.Point = radial.ModeCursor
	cfg.Scene.Cursor = [3]float32{1, 2, 3}

	path := filepath.Join(t.TempDir(), "nested", "radoff.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Offset.Point != radial.ModeCursor {
		t.Errorf("expected point cursor after reload, got %s", loaded.Offset.Point)
	}
	if loaded.Scene.Cursor != cfg.Scene.Cursor {
		t.Errorf("expected cursor %v after reload, got %v", cfg.Scene.Cursor, loaded.Scene.Cursor)
	}
}
