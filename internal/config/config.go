package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/danielCantwell/rsvg/internal/svg"
	"github.com/danielCantwell/rsvg/internal/typeid"
)

type Config struct {
	Width            float64 `envconfig:"RSVG_WIDTH" default:"1000"`
	Height           float64 `envconfig:"RSVG_HEIGHT" default:"1000"`
	CoordinateSystem string  `envconfig:"RSVG_COORDINATE_SYSTEM" default:"mid-mid-up-right"`
	IDScheme         string  `envconfig:"RSVG_ID_SCHEME" default:"typeid"`
	LogLevel         string  `envconfig:"RSVG_LOG_LEVEL" default:"info"`
	LogFile          string  `envconfig:"RSVG_LOG_FILE"`
	Plain            bool    `envconfig:"RSVG_PLAIN" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field that Load cannot check by type alone.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %vx%v", c.Width, c.Height)
	}
	if _, err := c.System(); err != nil {
		return err
	}
	if _, err := typeid.FromScheme(c.IDScheme); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// System returns the configured coordinate system.
func (c *Config) System() (svg.CoordinateSystem, error) {
	return svg.ParseCoordinateSystem(c.CoordinateSystem)
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewGrid builds an empty grid from the configuration.
func (c *Config) NewGrid() (*svg.Grid, error) {
	system, err := c.System()
	if err != nil {
		return nil, err
	}
	ids, err := typeid.FromScheme(c.IDScheme)
	if err != nil {
		return nil, err
	}
	return svg.NewGridSize(ids, system, c.Width, c.Height), nil
}
