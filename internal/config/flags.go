package config

import (
	"strings"

	"github.com/spf13/pflag"

	"mad-life/internal/pattern"
)

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell edge (1-8)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.Background, "background", c.Background, "background colour (#rrggbb)")
	fs.StringVar(&c.Foreground, "foreground", c.Foreground, "live cell colour (#rrggbb)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern ["+strings.Join(pattern.Names(), "|")+"]")
	fs.Int64Var(&c.Seed.Value, "seed", c.Seed.Value, "seed for procedural patterns")
	fs.Float64Var(&c.Seed.Density, "density", c.Seed.Density, "live cell density for procedural patterns")
	fs.StringVar(&c.Logging.File, "log-file", c.Logging.File, "terminal host log file")
}

// Overlay copies every flag the user set explicitly from src into c. It lets
// command-line flags take precedence over a config file loaded afterwards.
func (c *Config) Overlay(fs *pflag.FlagSet, src *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			c.Width = src.Width
		case "height":
			c.Height = src.Height
		case "scale":
			c.Scale = src.Scale
		case "tps":
			c.TPS = src.TPS
		case "background":
			c.Background = src.Background
		case "foreground":
			c.Foreground = src.Foreground
		case "paused":
			c.Paused = src.Paused
		case "pattern":
			c.Pattern = src.Pattern
		case "seed":
			c.Seed.Value = src.Seed.Value
		case "density":
			c.Seed.Density = src.Seed.Density
		case "log-file":
			c.Logging.File = src.Logging.File
		}
	})
}
