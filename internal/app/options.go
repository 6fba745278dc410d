package app

import "flag"

// Options represents the command-line parameters for the application.
type Options struct {
	ConfigPath string

	Width   int
	Height  int
	Fill    string
	Density float64
	Seed    int64

	NoiseScale     float64
	NoiseThreshold float64

	TPS         int
	Generations int
	Scale       int

	LogLevel string
	NoClear  bool
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{
		Width:          64,
		Height:         64,
		Fill:           "stripes",
		Density:        0.5,
		Seed:           42,
		NoiseScale:     0.08,
		NoiseThreshold: 0.1,
		TPS:            10,
		Scale:          8,
		LogLevel:       "info",
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "path to an HCL configuration file")
	fs.IntVar(&o.Width, "w", o.Width, "grid width in cells")
	fs.IntVar(&o.Height, "h", o.Height, "grid height in cells")
	fs.StringVar(&o.Fill, "fill", o.Fill, "initial fill pattern (stripes, random, perlin)")
	fs.Float64Var(&o.Density, "density", o.Density, "live-cell probability for the random fill")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for randomized fills")
	fs.Float64Var(&o.NoiseScale, "noise-scale", o.NoiseScale, "sample spacing for the perlin fill")
	fs.Float64Var(&o.NoiseThreshold, "noise-threshold", o.NoiseThreshold, "alive threshold for the perlin fill")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generations per second")
	fs.IntVar(&o.Generations, "generations", o.Generations, "stop after this many generations (0 = run until interrupted)")
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier (GUI build)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&o.NoClear, "no-clear", o.NoClear, "append frames instead of redrawing in place")
}
