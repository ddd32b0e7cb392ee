package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	N       int
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{N: 256, Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.N, "n", c.N, "grid side length")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern file (empty for random)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initialization")
}
