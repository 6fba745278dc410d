// Package config loads the optional HCL configuration file and overlays it
// onto the command-line options.
package config

import (
	"flag"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"torus-life/internal/app"
	"torus-life/internal/sims/life"
)

// File is the decoded form of a configuration file. All attributes are
// optional; absent values fall back to the defaults.
type File struct {
	Simulation *Simulation `hcl:"simulation,block"`
	Run        *Run        `hcl:"run,block"`
}

// Simulation mirrors the `simulation` block.
type Simulation struct {
	Width          *int     `hcl:"width,optional"`
	Height         *int     `hcl:"height,optional"`
	Fill           *string  `hcl:"fill,optional"`
	Density        *float64 `hcl:"density,optional"`
	Seed           *int64   `hcl:"seed,optional"`
	NoiseScale     *float64 `hcl:"noise_scale,optional"`
	NoiseThreshold *float64 `hcl:"noise_threshold,optional"`
}

// Run mirrors the `run` block.
type Run struct {
	TPS         *int    `hcl:"tps,optional"`
	Generations *int    `hcl:"generations,optional"`
	Scale       *int    `hcl:"scale,optional"`
	LogLevel    *string `hcl:"log_level,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, evalContext(), &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &f, nil
}

// evalContext exposes the fill pattern names as bare identifiers so config
// files may write `fill = random` without quoting.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"stripes": cty.StringVal(life.FillStripes),
			"random":  cty.StringVal(life.FillRandom),
			"perlin":  cty.StringVal(life.FillPerlin),
		},
	}
}

// Apply copies the file's present values onto the options.
func (f *File) Apply(o *app.Options) {
	if sim := f.Simulation; sim != nil {
		setInt(&o.Width, sim.Width)
		setInt(&o.Height, sim.Height)
		setString(&o.Fill, sim.Fill)
		setFloat(&o.Density, sim.Density)
		setInt64(&o.Seed, sim.Seed)
		setFloat(&o.NoiseScale, sim.NoiseScale)
		setFloat(&o.NoiseThreshold, sim.NoiseThreshold)
	}
	if run := f.Run; run != nil {
		setInt(&o.TPS, run.TPS)
		setInt(&o.Generations, run.Generations)
		setInt(&o.Scale, run.Scale)
		setString(&o.LogLevel, run.LogLevel)
	}
}

// Resolve produces the effective options: defaults, overlaid by the config
// file named in opts (if any), overlaid by flags the user set explicitly.
func Resolve(opts *app.Options, fs *flag.FlagSet) (*app.Options, error) {
	if opts.ConfigPath == "" {
		return opts, nil
	}
	file, err := Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	merged := app.NewOptions()
	merged.ConfigPath = opts.ConfigPath
	file.Apply(merged)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			merged.Width = opts.Width
		case "h":
			merged.Height = opts.Height
		case "fill":
			merged.Fill = opts.Fill
		case "density":
			merged.Density = opts.Density
		case "seed":
			merged.Seed = opts.Seed
		case "noise-scale":
			merged.NoiseScale = opts.NoiseScale
		case "noise-threshold":
			merged.NoiseThreshold = opts.NoiseThreshold
		case "tps":
			merged.TPS = opts.TPS
		case "generations":
			merged.Generations = opts.Generations
		case "scale":
			merged.Scale = opts.Scale
		case "log-level":
			merged.LogLevel = opts.LogLevel
		case "no-clear":
			merged.NoClear = opts.NoClear
		}
	})
	return merged, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
