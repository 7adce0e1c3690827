// Package config loads MotionBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"

	"MotionBoard/internal/state"

	"github.com/BurntSushi/toml"
)

type Timeline struct {
	Duration float32 `toml:"duration"`
	Position float32 `toml:"position"`
}

type Brush struct {
	Scale       float32 `toml:"scale"`
	Spacing     float32 `toml:"spacing"`
	TextureSize int     `toml:"texture_size"`
}

type Edit struct {
	SelectTolerance float32 `toml:"select_tolerance"`
	HandleOffset    float32 `toml:"handle_offset"`
	StrokeDuration  float32 `toml:"stroke_duration"`
}

type Limits struct {
	Vertices       int `toml:"vertices"`
	StrokeVertices int `toml:"stroke_vertices"`
	Strokes        int `toml:"strokes"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Title  string  `toml:"title"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel string   `toml:"log_level"`
	Seed     bool     `toml:"seed"`
	Timeline Timeline `toml:"timeline"`
	Brush    Brush    `toml:"brush"`
	Edit     Edit     `toml:"edit"`
	Limits   Limits   `toml:"limits"`
	Window   Window   `toml:"window"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Seed:     true,
		Timeline: Timeline{Duration: 10, Position: 5},
		Brush:    Brush{Scale: 4, Spacing: 4, TextureSize: 64},
		Edit:     Edit{SelectTolerance: 5, HandleOffset: 20, StrokeDuration: 1},
		Limits: Limits{
			Vertices:       state.DefaultLimits.Vertices,
			StrokeVertices: state.DefaultLimits.StrokeVertices,
			Strokes:        state.DefaultLimits.Strokes,
		},
		Window: Window{Width: 1024, Height: 768, Title: "MotionBoard"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Timeline.Duration <= 0:
		return errors.New("timeline.duration must be positive")
	case c.Brush.Scale <= 0:
		return errors.New("brush.scale must be positive")
	case c.Brush.Spacing <= 0:
		return errors.New("brush.spacing must be positive")
	case c.Brush.TextureSize < 2:
		return errors.New("brush.texture_size must be at least 2")
	case c.Edit.SelectTolerance < 0:
		return errors.New("edit.select_tolerance must not be negative")
	case c.Edit.StrokeDuration <= 0:
		return errors.New("edit.stroke_duration must be positive")
	case c.Limits.Vertices <= 0 || c.Limits.StrokeVertices <= 0 || c.Limits.Strokes <= 0:
		return errors.New("limits must be positive")
	}
	return nil
}

// StoreLimits converts the limits section for state.NewStore.
func (c Config) StoreLimits() state.Limits {
	return state.Limits{
		Vertices:       c.Limits.Vertices,
		StrokeVertices: c.Limits.StrokeVertices,
		Strokes:        c.Limits.Strokes,
	}
}
