package life

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMapNilKeepsDefaults(t *testing.T) {
	require.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":               "100",
		"h":               "80",
		"fill":            "random",
		"density":         "0.25",
		"seed":            "-7",
		"noise_scale":     "0.5",
		"noise_threshold": "-0.2",
	})
	require.Equal(t, 100, c.Width)
	require.Equal(t, 80, c.Height)
	require.Equal(t, FillRandom, c.Fill)
	require.Equal(t, 0.25, c.Density)
	require.Equal(t, int64(-7), c.Seed)
	require.Equal(t, 0.5, c.NoiseScale)
	require.Equal(t, -0.2, c.NoiseThreshold)
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":       "0",
		"h":       "banana",
		"fill":    "checkerboard",
		"density": "1.5",
	})
	require.Equal(t, def.Width, c.Width)
	require.Equal(t, def.Height, c.Height)
	require.Equal(t, def.Fill, c.Fill)
	require.Equal(t, def.Density, c.Density)
}
