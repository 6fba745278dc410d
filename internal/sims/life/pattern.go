package life

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"torus-life/internal/core"
)

// Pattern maps a linear cell index to an initial cell state.
type Pattern func(i int) core.Cell

// Stripes is the classic deterministic seed: every second and every seventh
// cell starts alive, producing diagonal bands once the rule kicks in.
func Stripes() Pattern {
	return func(i int) core.Cell {
		if i%2 == 0 || i%7 == 0 {
			return core.Alive
		}
		return core.Dead
	}
}

// Uniform draws each cell independently from the supplied source, alive with
// the given probability. Injecting the source keeps tests deterministic.
func Uniform(r *rand.Rand, density float64) Pattern {
	return func(int) core.Cell {
		if r.Float64() < density {
			return core.Alive
		}
		return core.Dead
	}
}

// Noise thresholds 2D Perlin noise sampled at each cell, yielding spatially
// coherent blobs instead of uniform speckle. The width is needed to recover
// (row, col) from the linear index.
func Noise(seed int64, width int, scale, threshold float64) Pattern {
	p := perlin.NewPerlin(2, 2, 3, seed)
	return func(i int) core.Cell {
		x := float64(i%width) * scale
		y := float64(i/width) * scale
		if p.Noise2D(x, y) > threshold {
			return core.Alive
		}
		return core.Dead
	}
}

func patternFor(cfg Config, width int, seed int64) Pattern {
	switch cfg.Fill {
	case FillRandom:
		return Uniform(core.NewRNG(seed).Source(), cfg.Density)
	case FillPerlin:
		return Noise(seed, width, cfg.NoiseScale, cfg.NoiseThreshold)
	default:
		return Stripes()
	}
}
