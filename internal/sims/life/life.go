package life

import (
	"fmt"
	"strings"

	"torus-life/internal/core"
)

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

// Universe implements Conway's Game of Life on a toroidal grid. Generations
// are computed into a scratch plane and swapped in only after the full pass,
// so every cell is evaluated against the same prior-generation snapshot.
type Universe struct {
	cfg      Config
	pattern  Pattern
	explicit bool
	cur      *core.Plane
	nxt      *core.Plane
	gen      uint64
}

// New returns a universe of the given dimensions with the fill pattern
// applied. A nil fill leaves every cell Dead. Dimensions must be positive.
func New(w, h int, fill Pattern) (*Universe, error) {
	u, err := newUniverse(w, h)
	if err != nil {
		return nil, err
	}
	u.cfg = DefaultConfig()
	u.cfg.Width, u.cfg.Height = w, h
	u.pattern = fill
	u.explicit = true
	u.apply(fill)
	return u, nil
}

// FromConfig builds a universe whose fill pattern is selected by the config.
func FromConfig(cfg Config) (*Universe, error) {
	switch cfg.Fill {
	case FillStripes, FillRandom, FillPerlin:
	default:
		return nil, fmt.Errorf("unknown fill pattern %q", cfg.Fill)
	}
	u, err := newUniverse(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	u.cfg = cfg
	u.Reset(cfg.Seed)
	return u, nil
}

func newUniverse(w, h int) (*Universe, error) {
	cur, err := core.NewPlane(w, h)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewPlane(w, h)
	if err != nil {
		return nil, err
	}
	return &Universe{cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Cells exposes the current-generation buffer as a borrowed view. The slice
// aliases live state; treat it as read-only outside of test seeding.
func (u *Universe) Cells() []core.Cell { return u.cur.Cells() }

// Generation reports how many times Step has run since the last reset.
func (u *Universe) Generation() uint64 { return u.gen }

// Population counts the live cells of the current generation.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur.Cells() {
		n += int(c)
	}
	return n
}

// Index returns the row-major linear offset of (row, col). Pure and
// unchecked; callers must supply in-range coordinates.
func (u *Universe) Index(row, col int) int { return u.cur.Index(row, col) }

// LiveNeighbors counts the live cells among the eight toroidal neighbors of
// (row, col). The deltas are height-1/width-1 rather than -1 so the wrap is
// pure modular addition and cannot underflow at row or column zero.
func (u *Universe) LiveNeighbors(row, col int) int {
	w, h := u.cur.W, u.cur.H
	cells := u.cur.Cells()
	count := 0
	for _, dr := range [3]int{h - 1, 0, 1} {
		for _, dc := range [3]int{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % h
			nc := (col + dc) % w
			count += int(cells[u.cur.Index(nr, nc)])
		}
	}
	return count
}

// Step advances the universe by one generation. Results are written into the
// scratch plane while reading only the current one; the planes swap once the
// pass is complete, so the grid is never observed half-updated.
func (u *Universe) Step() {
	w, h := u.cur.W, u.cur.H
	cur, nxt := u.cur.Cells(), u.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := u.cur.Index(row, col)
			state := cur[idx]
			switch n := u.LiveNeighbors(row, col); {
			case state == core.Alive && n < 2:
				state = core.Dead // underpopulation
			case state == core.Alive && n > 3:
				state = core.Dead // overpopulation
			case state == core.Dead && n == 3:
				state = core.Alive // reproduction
			}
			nxt[idx] = state
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// Reset refills the board. Universes built with an explicit pattern reapply
// it (a nil pattern stays a blank board); config-built universes derive the
// fill from the seed.
func (u *Universe) Reset(seed int64) {
	if u.explicit {
		u.apply(u.pattern)
		return
	}
	u.apply(patternFor(u.cfg, u.cur.W, seed))
}

func (u *Universe) apply(fill Pattern) {
	cells := u.cur.Cells()
	if fill == nil {
		u.cur.Clear()
	} else {
		for i := range cells {
			cells[i] = fill(i)
		}
	}
	u.nxt.Clear()
	u.gen = 0
}

// Toggle flips the cell at (row, col) between Dead and Alive. No other cell
// and neither the scratch plane nor the generation counter are touched.
func (u *Universe) Toggle(row, col int) {
	u.mustContain(row, col)
	cells := u.cur.Cells()
	idx := u.cur.Index(row, col)
	if cells[idx] == core.Alive {
		cells[idx] = core.Dead
	} else {
		cells[idx] = core.Alive
	}
}

// Set marks each listed (row, col) coordinate Alive, leaving the rest of the
// board untouched. Intended for seeding deterministic fixtures.
func (u *Universe) Set(coords ...[2]int) {
	cells := u.cur.Cells()
	for _, rc := range coords {
		u.mustContain(rc[0], rc[1])
		cells[u.cur.Index(rc[0], rc[1])] = core.Alive
	}
}

// Clear kills every cell in both planes and rewinds the generation counter.
func (u *Universe) Clear() {
	u.cur.Clear()
	u.nxt.Clear()
	u.gen = 0
}

// Resize replaces the board with an all-Dead grid of the new dimensions.
// Prior contents are discarded. Fails without modifying anything if either
// dimension is zero or negative.
func (u *Universe) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("degenerate grid dimensions %dx%d", w, h)
	}
	if err := u.cur.Resize(w, h); err != nil {
		return err
	}
	if err := u.nxt.Resize(w, h); err != nil {
		return err
	}
	u.cfg.Width, u.cfg.Height = w, h
	u.gen = 0
	return nil
}

// Render returns the board as text: one line per row, one glyph plus a space
// per cell. A pure function of the current state.
func (u *Universe) Render() string {
	w, h := u.cur.W, u.cur.H
	cells := u.cur.Cells()
	var b strings.Builder
	b.Grow(h * (w*4 + 1))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if cells[u.cur.Index(row, col)] == core.Alive {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parameters publishes the values the HUD displays.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", u.cur.W)},
				{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", u.cur.H)},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", u.gen)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", u.Population())},
			},
		},
		{
			Name: "Fill",
			Params: []core.Parameter{
				{Key: "fill", Label: "Pattern", Type: core.ParamTypeString, Value: u.cfg.Fill},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2f", u.cfg.Density)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", u.cfg.Seed)},
			},
		},
	}}
}

// Out-of-range coordinates are a contract violation of the embedding layer,
// so the failure is immediate rather than recovered.
func (u *Universe) mustContain(row, col int) {
	if !u.cur.InBounds(row, col) {
		panic(fmt.Sprintf("life: coordinate (%d,%d) outside %dx%d grid", row, col, u.cur.H, u.cur.W))
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		u, err := FromConfig(FromMap(cfg))
		if err != nil {
			// FromMap only admits validated values, so this is unreachable
			// for registry callers.
			panic(err)
		}
		return u
	})
}
