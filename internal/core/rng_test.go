package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGDeterministicPerSeed(t *testing.T) {
	a := make([]Cell, 128)
	b := make([]Cell, 128)
	FillThreshold(NewRNG(5).Source(), a, 0.5)
	FillThreshold(NewRNG(5).Source(), b, 0.5)
	require.Equal(t, a, b)

	c := make([]Cell, 128)
	FillThreshold(NewRNG(6).Source(), c, 0.5)
	require.NotEqual(t, a, c)
}

func TestFillThresholdExtremes(t *testing.T) {
	buf := make([]Cell, 64)

	FillThreshold(NewRNG(1).Source(), buf, 0)
	for i, c := range buf {
		require.Equal(t, Dead, c, "cell %d", i)
	}

	FillThreshold(NewRNG(1).Source(), buf, 1)
	for i, c := range buf {
		require.Equal(t, Alive, c, "cell %d", i)
	}
}
