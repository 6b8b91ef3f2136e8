package life

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PatternByName for names it does not know.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live offsets relative to a stamp origin.
type Pattern struct {
	Name  string
	W, H  int
	Cells [][2]int
}

var (
	// Blinker is the period-2 oscillator, horizontal phase.
	Blinker = Pattern{Name: "blinker", W: 3, H: 1, Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}}
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", W: 2, H: 2, Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{Name: "glider", W: 3, H: 3, Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
)

var patterns = map[string]Pattern{
	Blinker.Name: Blinker,
	Block.Name:   Block,
	Glider.Name:  Glider,
}

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q (known: %s)", name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PatternNames lists the built-in patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells alive with its top-left corner at (x, y).
// Cells falling outside the grid are dropped.
func (g *Grid) Stamp(p Pattern, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c[0], y+c[1], true)
	}
}

// StampCentered stamps p in the middle of the grid.
func (g *Grid) StampCentered(p Pattern) {
	g.Stamp(p, (g.w-p.W)/2, (g.h-p.H)/2)
}
