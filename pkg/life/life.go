package life

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"pixlife/pkg/core"
)

// Density is the probability that a cell starts alive in a random grid.
const Density = 0.3

// ErrInvalidDimensions is returned when a grid cannot be allocated for the
// requested width and height.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid implements Conway's Game of Life (B3/S23) on a bounded rectangle.
// Cells outside the rectangle are permanently dead.
//
// A Grid is not safe for concurrent use; Advance swaps the buffer returned by
// Cells.
type Grid struct {
	w, h int
	cur  []bool
	nxt  []bool
}

// New returns an all-dead grid with the provided dimensions.
func New(w, h int) (*Grid, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	cells := make([]bool, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]bool, len(cells))}, nil
}

// NewRandom returns a grid whose cells are independently alive with
// probability Density, drawn from rng.
func NewRandom(w, h int, rng *rand.Rand) (*Grid, error) {
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	g.Randomize(rng)
	return g, nil
}

// checkDimensions rejects empty grids and cell counts whose RGBA buffer would
// not fit in an int.
func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[life.New] %dx%d", w, h)
	}
	if w > math.MaxInt/4/h {
		return errors.Wrapf(ErrInvalidDimensions, "[life.New] %dx%d overflows cell index", w, h)
	}
	return nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the current generation in row-major order. Callers must treat
// it as read-only and must not hold on to it across Advance.
func (g *Grid) Cells() []bool { return g.cur }

// Alive reports the state of (x, y). Coordinates outside the grid are dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cur[x+g.w*y]
}

// Set changes the state of (x, y) in the current generation. Out of range
// coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cur[x+g.w*y] = alive
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}

// Randomize reseeds the current generation in place at Density.
func (g *Grid) Randomize(rng *rand.Rand) {
	core.FillBernoulli(rng, g.cur, Density)
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c {
			n++
		}
	}
	return n
}

// Neighbors counts live cells among the eight surrounding (x, y). The edges
// are hard boundaries: nothing wraps.
func (g *Grid) Neighbors(x, y int) int {
	minX, maxX := max(0, x-1), min(g.w-1, x+1)
	minY, maxY := max(0, y-1), min(g.h-1, y+1)
	n := 0
	for ny := minY; ny <= maxY; ny++ {
		row := g.w * ny
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cur[row+nx] {
				n++
			}
		}
	}
	return n
}

// NextState applies B3/S23 to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance computes the next generation from the current one and swaps the
// buffers. It never allocates.
func (g *Grid) Advance() {
	if len(g.cur) != len(g.nxt) || len(g.cur) != g.w*g.h {
		panic("life: grid buffers out of shape")
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := x + g.w*y
			g.nxt[idx] = NextState(g.cur[idx], g.Neighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}
