package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Faultbox/radial-offset/internal/radial"
)

// Flags holds command-line overrides bound to a pflag set.
type Flags struct {
	fs *pflag.FlagSet

	configPath  string
	debug       bool
	offset      []float32
	point       radial.Mode
	custom      []float32
	cursor      []float32
	logFile     string
	metricsFile string
}

// BindFlags registers the config overrides on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.configPath, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.Float32SliceVar(&f.offset, "offset", nil, "Per-axis radial offset x,y,z (0 disables an axis)")
	fs.Var(&f.point, "point", "Reference point: object, bounding, custom or cursor")
	fs.Float32SliceVar(&f.custom, "custom", nil, "Custom reference point x,y,z (object space)")
	fs.Float32SliceVar(&f.cursor, "cursor", nil, "3D cursor position x,y,z (world space)")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to a rotating file")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to a textfile")
	return f
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.configPath
}

// applyFlags applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.fs.Changed("offset") {
		v, err := triple("offset", f.offset)
		if err != nil {
			return err
		}
		cfg.Offset.Distance = v
	}
	if f.fs.Changed("point") {
		cfg.Offset.Point = f.point
	}
	if f.fs.Changed("custom") {
		v, err := triple("custom", f.custom)
		if err != nil {
			return err
		}
		cfg.Offset.Custom = &v
	}
	if f.fs.Changed("cursor") {
		v, err := triple("cursor", f.cursor)
		if err != nil {
			return err
		}
		cfg.Scene.Cursor = v
	}
	if f.logFile != "" {
		cfg.Logging.LogFile = f.logFile
	}
	if f.metricsFile != "" {
		cfg.Metrics.Textfile = f.metricsFile
	}
	return nil
}

func triple(name string, v []float32) ([3]float32, error) {
	if len(v) != 3 {
		return [3]float32{}, fmt.Errorf("--%s: want 3 comma-separated values, got %d", name, len(v))
	}
	return [3]float32{v[0], v[1], v[2]}, nil
}
