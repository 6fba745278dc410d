package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/ctxlog"
)

// TextSim is the contract the headless runner needs on top of core.Sim.
type TextSim interface {
	core.Sim
	Render() string
	Generation() uint64
	Population() int
}

// Runner drives a simulation at a fixed tick rate and renders each
// generation as text.
type Runner struct {
	sim         TextSim
	out         io.Writer
	tps         int
	generations int
	redraw      bool
}

// NewRunner wires a simulation to an output writer using the provided options.
func NewRunner(sim TextSim, out io.Writer, opts *Options) *Runner {
	return &Runner{
		sim:         sim,
		out:         out,
		tps:         opts.TPS,
		generations: opts.Generations,
		redraw:      !opts.NoClear,
	}
}

// Run ticks the simulation until the generation limit is reached or the
// context is canceled. Any panic escaping the engine is recovered here and
// surfaced as a logged error, leaving exit handling to the caller.
func (r *Runner) Run(ctx context.Context) (err error) {
	log := ctxlog.FromContext(ctx)
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("simulation fault", "panic", rec)
			err = fmt.Errorf("simulation fault: %v", rec)
		}
	}()

	size := r.sim.Size()
	log.Info("starting simulation",
		"sim", r.sim.Name(), "width", size.W, "height", size.H, "tps", r.tps)

	if r.redraw {
		fmt.Fprint(r.out, "\x1b[2J")
	}
	r.draw()

	step := core.NewFixedStep(r.tps)
	for {
		select {
		case <-ctx.Done():
			log.Info("interrupted", "generation", r.sim.Generation())
			return nil
		default:
		}
		if !step.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		r.sim.Step()
		r.draw()
		if r.generations > 0 && r.sim.Generation() >= uint64(r.generations) {
			log.Info("finished", "generation", r.sim.Generation(), "population", r.sim.Population())
			return nil
		}
	}
}

func (r *Runner) draw() {
	if r.redraw {
		fmt.Fprint(r.out, "\x1b[H")
	}
	fmt.Fprint(r.out, r.sim.Render())
	fmt.Fprintf(r.out, "generation %d  population %d\n", r.sim.Generation(), r.sim.Population())
}
