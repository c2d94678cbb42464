package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 48, Pattern: "soup", Scale: 10, TPS: 8, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern name")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
}
