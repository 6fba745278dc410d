package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
)

func TestStripesPattern(t *testing.T) {
	fill := Stripes()
	for i := 0; i < 64; i++ {
		want := core.Dead
		if i%2 == 0 || i%7 == 0 {
			want = core.Alive
		}
		require.Equal(t, want, fill(i), "index %d", i)
	}
}

func TestUniformPatternThresholds(t *testing.T) {
	allDead := Uniform(core.NewRNG(1).Source(), 0)
	allAlive := Uniform(core.NewRNG(1).Source(), 1)
	for i := 0; i < 100; i++ {
		require.Equal(t, core.Dead, allDead(i))
		require.Equal(t, core.Alive, allAlive(i))
	}
}

func TestUniformPatternDeterministicPerSeed(t *testing.T) {
	a := Uniform(core.NewRNG(7).Source(), 0.4)
	b := Uniform(core.NewRNG(7).Source(), 0.4)
	for i := 0; i < 256; i++ {
		require.Equal(t, a(i), b(i), "index %d", i)
	}
}

func TestNoisePatternDeterministicPerSeed(t *testing.T) {
	const width = 32
	a := Noise(3, width, 0.13, 0)
	b := Noise(3, width, 0.13, 0)
	other := Noise(4, width, 0.13, 0)

	same, differ := true, false
	for i := 0; i < width*width; i++ {
		require.Equal(t, a(i), b(i), "index %d", i)
		if a(i) != other(i) {
			differ = true
		}
		if a(i) != a(0) {
			same = false
		}
	}
	require.True(t, differ, "different seeds should disagree somewhere")
	require.False(t, same, "noise fill should not be constant")
}
