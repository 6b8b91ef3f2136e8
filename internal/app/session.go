package app

import (
	"github.com/pkg/errors"

	"pixlife/internal/ui"
	"pixlife/pkg/core"
	"pixlife/pkg/life"
	"pixlife/pkg/render"
)

// Session owns one grid and the frame buffer it is rendered into. Hosts drive
// it from a single goroutine: Step then Render once per displayed frame.
type Session struct {
	grid    *life.Grid
	pixels  []byte
	pattern life.Pattern

	empty      bool
	hasPattern bool
	seed       int64
	generation int
	paused     bool
	tickOnce   bool
}

// NewSession builds the grid described by cfg and seeds it with cfg.Seed.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession]")
	}
	s := &Session{
		grid:   grid,
		pixels: make([]byte, render.BufferSize(cfg.Width, cfg.Height)),
		empty:  cfg.Empty,
	}
	if cfg.Pattern != "" {
		s.pattern, err = life.PatternByName(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		s.hasPattern = true
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Reset rebuilds the initial generation from seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.generation = 0
	s.tickOnce = false
	if s.empty {
		s.grid.Clear()
	} else {
		s.grid.Randomize(core.NewRNG(seed).Source())
	}
	if s.hasPattern {
		s.grid.StampCentered(s.pattern)
	}
}

// Clear kills every cell without touching the seed.
func (s *Session) Clear() {
	s.grid.Clear()
	s.generation = 0
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume unpauses the session.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single generation on the next Step while paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Step advances the grid by one generation unless paused. It reports whether
// a generation was computed.
func (s *Session) Step() bool {
	if s.paused && !s.tickOnce {
		return false
	}
	s.grid.Advance()
	s.generation++
	s.tickOnce = false
	return true
}

// Render draws the current generation into the session's frame buffer and
// returns it. The buffer is reused between frames.
func (s *Session) Render() ([]byte, error) {
	if err := render.Render(s.grid, s.pixels); err != nil {
		return nil, err
	}
	return s.pixels, nil
}

// Frame performs one Step followed by one Render.
func (s *Session) Frame() ([]byte, error) {
	s.Step()
	return s.Render()
}

// Grid exposes the simulated grid for read access.
func (s *Session) Grid() *life.Grid { return s.grid }

// Pixels returns the frame buffer as last rendered.
func (s *Session) Pixels() []byte { return s.pixels }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.grid.Size() }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Generation returns how many generations were computed since the last reset.
func (s *Session) Generation() int { return s.generation }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Status summarises the session for display; tps is the host's measured rate.
func (s *Session) Status(tps float64) ui.Status {
	return ui.Status{
		Size:       s.grid.Size(),
		Generation: s.generation,
		Population: s.grid.Population(),
		Seed:       s.seed,
		Paused:     s.paused,
		TPS:        tps,
	}
}
