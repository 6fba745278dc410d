//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := config.Resolve(opts, flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		fmt.Fprintf(os.Stderr, "degenerate grid dimensions %dx%d\n", opts.Width, opts.Height)
		os.Exit(1)
	}

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life simulation not registered")
	}
	sim := factory(map[string]string{
		"w":               fmt.Sprint(opts.Width),
		"h":               fmt.Sprint(opts.Height),
		"fill":            opts.Fill,
		"density":         fmt.Sprint(opts.Density),
		"seed":            fmt.Sprint(opts.Seed),
		"noise_scale":     fmt.Sprint(opts.NoiseScale),
		"noise_threshold": fmt.Sprint(opts.NoiseThreshold),
	})

	game := app.New(sim, opts.Scale, opts.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
