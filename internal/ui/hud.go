//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/core"
)

const (
	hudMarginX   = 8
	hudLineStart = 16
	hudLineStep  = 14
)

// HUD draws the simulation's parameter snapshot on top of the grid view.
// Tab toggles visibility.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update handles HUD interactions.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
}

// Draw renders the HUD onto the provided screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || !h.visible {
		return
	}

	face := basicfont.Face7x13
	y := hudLineStart

	line := func(s string, col color.Color) {
		text.Draw(screen, s, face, hudMarginX, y, col)
		y += hudLineStep
	}

	title := h.sim.Name()
	if paused {
		title += " (paused)"
	}
	line(title, color.RGBA{R: 255, G: 220, B: 0, A: 255})

	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		line(group.Name, color.RGBA{R: 160, G: 200, B: 255, A: 255})
		for _, p := range group.Params {
			line(fmt.Sprintf("  %s: %s", p.Label, p.Value), color.White)
		}
	}
}
