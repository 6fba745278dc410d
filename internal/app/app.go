//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"
)

// resizeStep is how many cells each bracket keypress adds or removes per side.
const resizeStep = 16

type cellToggler interface {
	Toggle(row, col int)
}

type boardClearer interface {
	Clear()
}

type gridResizer interface {
	Resize(w, h int) error
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if clearer, ok := g.sim.(boardClearer); ok {
			clearer.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.resizeBy(-resizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.resizeBy(resizeStep)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	if g.hud != nil {
		g.hud.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// toggleAtCursor forwards a click to the simulation as a cell toggle. Clicks
// outside the grid are dropped here so the engine only ever sees valid
// coordinates.
func (g *Game) toggleAtCursor() {
	toggler, ok := g.sim.(cellToggler)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	col, row := x/g.scale, y/g.scale
	size := g.sim.Size()
	if row < 0 || row >= size.H || col < 0 || col >= size.W {
		return
	}
	toggler.Toggle(row, col)
}

// resizeBy grows or shrinks the grid by delta cells per side. Resizing is
// destructive, so the painter is rebuilt for the new dimensions.
func (g *Game) resizeBy(delta int) {
	resizer, ok := g.sim.(gridResizer)
	if !ok {
		return
	}
	size := g.sim.Size()
	w, h := size.W+delta, size.H+delta
	if w < resizeStep || h < resizeStep {
		return
	}
	if err := resizer.Resize(w, h); err != nil {
		return
	}
	g.painter = render.NewGridPainter(w, h)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
