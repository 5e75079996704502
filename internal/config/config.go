package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"mad-life/internal/core"
	"mad-life/internal/pattern"
	"mad-life/internal/view"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultScale      = 5
	DefaultTPS        = 33
	DefaultBackground = "#0000ff"
	DefaultForeground = "#ff0000"
	DefaultPattern    = "empty"
	DefaultDensity    = 0.3
	DefaultSeed       = 42
	// DefaultHistory is how many population samples the hosts keep.
	DefaultHistory = 120
)

// Config represents the runtime options for both hosts.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`

	// Translate is the initial screen position of the world origin. When
	// omitted the origin is placed at the centre of the window.
	Translate *[2]int `yaml:"translate,omitempty"`

	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`

	Paused bool `yaml:"paused"`

	Pattern string        `yaml:"pattern"`
	Seed    SeedConfig    `yaml:"seed"`
	History int           `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// SeedConfig holds the parameters of procedural seed patterns.
type SeedConfig struct {
	Value   int64   `yaml:"value"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
}

// LoggingConfig controls where the terminal host sends log output.
type LoggingConfig struct {
	File string `yaml:"file"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	p := pattern.DefaultParams()
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Scale:      DefaultScale,
		TPS:        DefaultTPS,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Paused:     true,
		Pattern:    DefaultPattern,
		Seed: SeedConfig{
			Value:   DefaultSeed,
			Width:   p.Width,
			Height:  p.Height,
			Density: DefaultDensity,
		},
		History: DefaultHistory,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", core.ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", core.ErrInvalidConfig, c.TPS)
	}
	if c.History < 0 {
		return fmt.Errorf("%w: history %d", core.ErrInvalidConfig, c.History)
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		return fmt.Errorf("%w: density %g outside [0,1]", core.ErrInvalidConfig, c.Seed.Density)
	}
	if _, err := pattern.Lookup(c.Pattern); err != nil {
		return err
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the background and foreground colours.
func (c *Config) Colors() (bg, fg color.RGBA, err error) {
	if bg, err = ParseColor(c.Background); err != nil {
		return
	}
	fg, err = ParseColor(c.Foreground)
	return
}

// Viewport returns the initial view. Scale is clamped rather than rejected.
func (c *Config) Viewport() view.Viewport {
	tx, ty := c.Width/2, c.Height/2
	if c.Translate != nil {
		tx, ty = c.Translate[0], c.Translate[1]
	}
	return view.New(c.Scale, tx, ty)
}

// PatternParams converts the seed settings.
func (c *Config) PatternParams() pattern.Params {
	return pattern.Params{
		Seed:    c.Seed.Value,
		Width:   c.Seed.Width,
		Height:  c.Seed.Height,
		Density: c.Seed.Density,
	}
}

// ParseColor parses a "#rrggbb" hex string into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", core.ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
