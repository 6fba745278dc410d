package life

import "strconv"

// Fill pattern identifiers accepted by Config.Fill.
const (
	FillStripes = "stripes"
	FillRandom  = "random"
	FillPerlin  = "perlin"
)

// Config holds the construction parameters for a Life universe.
type Config struct {
	Width  int
	Height int

	Fill    string
	Density float64
	Seed    int64

	NoiseScale     float64
	NoiseThreshold float64
}

// DefaultConfig returns the standard configuration: the original 64x64
// striped universe.
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		Fill:           FillStripes,
		Density:        0.5,
		Seed:           42,
		NoiseScale:     0.08,
		NoiseThreshold: 0.1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch v {
		case FillStripes, FillRandom, FillPerlin:
			c.Fill = v
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.NoiseThreshold = parsed
		}
	}
	return c
}
