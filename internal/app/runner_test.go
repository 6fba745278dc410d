package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
)

// fakeSim is a minimal TextSim for driving the runner.
type fakeSim struct {
	steps   int
	panicAt int
}

func (f *fakeSim) Name() string       { return "fake" }
func (f *fakeSim) Size() core.Size    { return core.Size{W: 2, H: 2} }
func (f *fakeSim) Reset(int64)        {}
func (f *fakeSim) Cells() []core.Cell { return make([]core.Cell, 4) }
func (f *fakeSim) Generation() uint64 { return uint64(f.steps) }
func (f *fakeSim) Population() int    { return 0 }
func (f *fakeSim) Render() string     { return fmt.Sprintf("frame %d\n", f.steps) }

func (f *fakeSim) Step() {
	f.steps++
	if f.panicAt > 0 && f.steps >= f.panicAt {
		panic("boom")
	}
}

func testOptions() *Options {
	opts := NewOptions()
	opts.TPS = 1000
	opts.NoClear = true
	return opts
}

func TestRunnerStopsAtGenerationLimit(t *testing.T) {
	sim := &fakeSim{}
	opts := testOptions()
	opts.Generations = 3

	var out bytes.Buffer
	err := NewRunner(sim, &out, opts).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, sim.steps)
	require.Contains(t, out.String(), "frame 3")
	require.Contains(t, out.String(), "generation 3")
}

func TestRunnerDoesNotClearWhenAsked(t *testing.T) {
	sim := &fakeSim{}
	opts := testOptions()
	opts.Generations = 1

	var out bytes.Buffer
	require.NoError(t, NewRunner(sim, &out, opts).Run(context.Background()))
	require.False(t, strings.Contains(out.String(), "\x1b["))
}

func TestRunnerRecoversEnginePanic(t *testing.T) {
	sim := &fakeSim{panicAt: 1}
	opts := testOptions()
	opts.Generations = 5

	var out bytes.Buffer
	err := NewRunner(sim, &out, opts).Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "simulation fault")
}

func TestRunnerHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := &fakeSim{}
	var out bytes.Buffer
	err := NewRunner(sim, &out, testOptions()).Run(ctx)
	require.NoError(t, err)
	require.Zero(t, sim.steps)
}
