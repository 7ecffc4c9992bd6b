package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/danielCantwell/rsvg/internal/svg"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1000 || cfg.Height != 1000 {
		t.Errorf("size = %v x %v", cfg.Width, cfg.Height)
	}
	if cfg.CoordinateSystem != "mid-mid-up-right" {
		t.Errorf("CoordinateSystem = %q", cfg.CoordinateSystem)
	}
	if cfg.IDScheme != "typeid" || cfg.LogLevel != "info" || cfg.Plain {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RSVG_WIDTH", "640")
	t.Setenv("RSVG_HEIGHT", "480.5")
	t.Setenv("RSVG_COORDINATE_SYSTEM", "top-left-down-right")
	t.Setenv("RSVG_ID_SCHEME", "sequence")
	t.Setenv("RSVG_LOG_LEVEL", "debug")
	t.Setenv("RSVG_PLAIN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Height != 480.5 || !cfg.Plain {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("level = %v", level)
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if grid.CoordinateSystem() != svg.TopLeftDownRight {
		t.Errorf("system = %v", grid.CoordinateSystem())
	}
	if grid.ViewBox() != "0 0 640 480.5" {
		t.Errorf("view box = %q", grid.ViewBox())
	}
	if grid.ID() != "grid_1" {
		t.Errorf("grid id = %q, want sequence id", grid.ID())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value, msg string
	}{
		{"RSVG_WIDTH", "-1", "grid size must be positive"},
		{"RSVG_WIDTH", "wide", "RSVG_WIDTH"},
		{"RSVG_COORDINATE_SYSTEM", "polar", "unknown coordinate system"},
		{"RSVG_ID_SCHEME", "snowflake", "unknown id scheme"},
		{"RSVG_LOG_LEVEL", "loud", "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.msg)
			}
		})
	}
}
