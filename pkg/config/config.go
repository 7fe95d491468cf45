// Package config holds the demo's window, shader and logging settings, read
// from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the configuration for the demo application
type Config struct {
	Window     Window     `toml:"window"`
	Shaders    Shaders    `toml:"shaders"`
	Texture    string     `toml:"texture"`
	ClearColor [4]float32 `toml:"clear_color"`
	Log        Log        `toml:"log"`
}

// Window describes the SDL window and frame pacing.
type Window struct {
	Title           string `toml:"title"`
	ScreenWidth     int32  `toml:"width"`
	ScreenHeight    int32  `toml:"height"`
	FramesPerSecond int    `toml:"fps"`
	VSync           bool   `toml:"vsync"`
}

// Shaders points at GLSL sources on disk. Empty paths fall back to the
// built-in shaders.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"`
}

// Log configures pkg/log and pkg/perf.
type Log struct {
	Level   string `toml:"level"`
	Color   bool   `toml:"color"`
	Metrics bool   `toml:"metrics"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Window: Window{
			Title:           "xenogl",
			ScreenWidth:     960,
			ScreenHeight:    720,
			FramesPerSecond: 60,
			VSync:           true,
		},
		ClearColor: [4]float32{0.1, 0.1, 0.1, 1.0},
		Log: Log{
			Level: "info",
			Color: true,
		},
	}
}

// Load reads the TOML file at path over the defaults. Unknown keys are
// rejected so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot produce a window.
func (c *Config) Validate() error {
	if c.Window.ScreenWidth <= 0 || c.Window.ScreenHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.ScreenWidth, c.Window.ScreenHeight)
	}
	if c.Window.FramesPerSecond <= 0 {
		return fmt.Errorf("invalid frames per second %d", c.Window.FramesPerSecond)
	}
	return nil
}
