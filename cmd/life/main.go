package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/ctxlog"
	_ "torus-life/internal/sims/life"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(out io.Writer, args []string) error {
	opts := app.NewOptions()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	opts.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := config.Resolve(opts, fs)
	if err != nil {
		return err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("degenerate grid dimensions %dx%d", opts.Width, opts.Height)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(opts.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory, ok := core.Sims()["life"]
	if !ok {
		return fmt.Errorf("life simulation not registered")
	}
	sim := factory(simArgs(opts))
	textSim, ok := sim.(app.TextSim)
	if !ok {
		return fmt.Errorf("sim %q does not support text rendering", sim.Name())
	}

	return app.NewRunner(textSim, out, opts).Run(ctx)
}

func simArgs(o *app.Options) map[string]string {
	return map[string]string{
		"w":               strconv.Itoa(o.Width),
		"h":               strconv.Itoa(o.Height),
		"fill":            o.Fill,
		"density":         strconv.FormatFloat(o.Density, 'f', -1, 64),
		"seed":            strconv.FormatInt(o.Seed, 10),
		"noise_scale":     strconv.FormatFloat(o.NoiseScale, 'f', -1, 64),
		"noise_threshold": strconv.FormatFloat(o.NoiseThreshold, 'f', -1, 64),
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
