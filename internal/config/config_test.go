package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDecodesBlocks(t *testing.T) {
	path := writeConfig(t, `
simulation {
  width   = 32
  height  = 24
  fill    = random
  density = 0.3
  seed    = 7
}

run {
  tps         = 30
  generations = 10
  log_level   = "debug"
}
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.Simulation)
	require.NotNil(t, f.Run)

	require.Equal(t, 32, *f.Simulation.Width)
	require.Equal(t, 24, *f.Simulation.Height)
	require.Equal(t, "random", *f.Simulation.Fill)
	require.Equal(t, 0.3, *f.Simulation.Density)
	require.Equal(t, int64(7), *f.Simulation.Seed)
	require.Nil(t, f.Simulation.NoiseScale)

	require.Equal(t, 30, *f.Run.TPS)
	require.Equal(t, 10, *f.Run.Generations)
	require.Equal(t, "debug", *f.Run.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, `simulation { width = `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyOnlyOverridesPresentValues(t *testing.T) {
	path := writeConfig(t, `
simulation {
  width = 48
}
`)
	f, err := Load(path)
	require.NoError(t, err)

	opts := app.NewOptions()
	f.Apply(opts)
	require.Equal(t, 48, opts.Width)
	require.Equal(t, app.NewOptions().Height, opts.Height)
	require.Equal(t, app.NewOptions().TPS, opts.TPS)
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, `
simulation {
  width  = 32
  height = 24
}

run {
  tps = 30
}
`)

	opts := app.NewOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-w", "100"}))

	merged, err := Resolve(opts, fs)
	require.NoError(t, err)

	// Explicit flag beats the file; the file beats the defaults.
	require.Equal(t, 100, merged.Width)
	require.Equal(t, 24, merged.Height)
	require.Equal(t, 30, merged.TPS)
	require.Equal(t, app.NewOptions().Scale, merged.Scale)
}

func TestResolveWithoutConfigFile(t *testing.T) {
	opts := app.NewOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "12"}))

	merged, err := Resolve(opts, fs)
	require.NoError(t, err)
	require.Same(t, opts, merged)
	require.Equal(t, 12, merged.Width)
}
