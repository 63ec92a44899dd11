// Package config handles radial offset configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/radial-offset/internal/logger"
	"github.com/Faultbox/radial-offset/internal/radial"
	"github.com/Faultbox/radial-offset/pkg/math"
)

// Offset bounds accepted per axis.
const (
	MinOffset = -1000.0
	MaxOffset = 1000.0
)

// Config holds all tool settings.
type Config struct {
	Offset  OffsetConfig  `yaml:"offset"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OffsetConfig holds the transform settings.
type OffsetConfig struct {
	Distance [3]float32  `yaml:"distance"`         // Per-axis radial offset; 0 disables the axis
	Point    radial.Mode `yaml:"point"`            // Reference point mode
	Custom   *[3]float32 `yaml:"custom,omitempty"` // Required when Point is custom
}

// SceneConfig describes where the edited object sits in the world.
type SceneConfig struct {
	Cursor   [3]float32 `yaml:"cursor"`   // 3D cursor, world space
	Location [3]float32 `yaml:"location"` // Object translation
	Rotation [3]float32 `yaml:"rotation"` // Object XYZ euler rotation, degrees
	Scale    [3]float32 `yaml:"scale"`    // Object scale
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Prometheus textfile output; empty disables export
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Offset: OffsetConfig{
			Distance: [3]float32{0.1, 0.1, 0.0},
			Point:    radial.ModeObject,
		},
		Scene: SceneConfig{
			Scale: [3]float32{1, 1, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if !math.FromArray(c.Offset.Distance).IsFinite() {
		err = multierr.Append(err, fmt.Errorf("offset.distance: %v is not finite", c.Offset.Distance))
	} else {
		for i, d := range c.Offset.Distance {
			if d < MinOffset || d > MaxOffset {
				err = multierr.Append(err, fmt.Errorf("offset.distance[%d]: %g outside [%g, %g]", i, d, MinOffset, MaxOffset))
			}
		}
	}

	switch c.Offset.Point {
	case radial.ModeObject, radial.ModeBounding, radial.ModeCursor:
	case radial.ModeCustom:
		if c.Offset.Custom == nil {
			err = multierr.Append(err, fmt.Errorf("offset.custom: required when offset.point is %s", radial.ModeCustom))
		} else if !math.FromArray(*c.Offset.Custom).IsFinite() {
			err = multierr.Append(err, fmt.Errorf("offset.custom: %v is not finite", *c.Offset.Custom))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("offset.point: %s", c.Offset.Point))
	}

	for i, s := range c.Scene.Scale {
		if s == 0 {
			err = multierr.Append(err, fmt.Errorf("scene.scale[%d]: must not be zero", i))
		}
	}

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", lerr))
	}

	return err
}

// Reference builds the reference point variant selected by the config.
// cursorLocal is the scene cursor already converted into object-local space.
func (c *Config) Reference(cursorLocal math.Vec3) (radial.Reference, error) {
	var custom *math.Vec3
	if c.Offset.Custom != nil {
		p := math.FromArray(*c.Offset.Custom)
		custom = &p
	}
	return radial.NewReference(c.Offset.Point, custom, &cursorLocal)
}

// ObjectMatrix returns the object's world transform.
func (c *Config) ObjectMatrix() math.Mat4 {
	return math.Compose(
		math.FromArray(c.Scene.Location),
		math.FromArray(c.Scene.Rotation),
		math.FromArray(c.Scene.Scale),
	)
}
