package core

import "fmt"

// Plane stores a 2D grid of cells in row-major order. A zero-area plane is
// never constructed: neighbor lookups wrap modulo the dimensions, and a zero
// modulus has no meaning.
type Plane struct {
	W, H  int
	cells []Cell
}

// NewPlane allocates an all-Dead plane with the given dimensions. Width and
// height must both be positive.
func NewPlane(w, h int) (*Plane, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("degenerate grid dimensions %dx%d", w, h)
	}
	return &Plane{W: w, H: h, cells: make([]Cell, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (p *Plane) Cells() []Cell { return p.cells }

// Index returns the linear slice index for (row, col). No bounds checking is
// performed; callers must supply valid coordinates.
func (p *Plane) Index(row, col int) int { return row*p.W + col }

// InBounds reports whether (row, col) addresses a cell of the plane.
func (p *Plane) InBounds(row, col int) bool {
	return row >= 0 && row < p.H && col >= 0 && col < p.W
}

// Clear fills the plane with Dead cells.
func (p *Plane) Clear() {
	for i := range p.cells {
		p.cells[i] = Dead
	}
}

// Resize replaces the plane's storage with an all-Dead buffer of the new
// dimensions. Prior contents are discarded.
func (p *Plane) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("degenerate grid dimensions %dx%d", w, h)
	}
	p.W, p.H = w, h
	p.cells = make([]Cell, w*h)
	return nil
}
