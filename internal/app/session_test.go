package app

import (
	"bytes"
	"slices"
	"testing"

	"pixlife/pkg/render"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Width = 16
	cfg.Height = 12
	return cfg
}

func TestSessionRandomSeedDeterministic(t *testing.T) {
	a, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Grid().Cells(), b.Grid().Cells()) {
		t.Fatal("same seed should produce the same initial generation")
	}
	if a.Grid().Population() == 0 {
		t.Fatal("random session should start with live cells")
	}

	initial := slices.Clone(a.Grid().Cells())
	a.Step()
	a.Reset(a.Seed())
	if !slices.Equal(initial, a.Grid().Cells()) {
		t.Fatal("Reset with the same seed should restore the initial generation")
	}
	if a.Generation() != 0 {
		t.Fatalf("Reset should zero the generation, got %d", a.Generation())
	}
}

func TestSessionEmptyWithPattern(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Empty = true
	cfg.Pattern = "blinker"
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := slices.Clone(s.Grid().Cells())
	if s.Grid().Population() != 3 {
		t.Fatalf("expected only the blinker alive, population=%d", s.Grid().Population())
	}
	s.Step()
	s.Step()
	if !slices.Equal(initial, s.Grid().Cells()) {
		t.Fatal("blinker should have period 2 inside a session")
	}
	if s.Generation() != 2 {
		t.Fatalf("generation = %d", s.Generation())
	}
}

func TestSessionPauseAndSingleStep(t *testing.T) {
	cfg := smallConfig()
	cfg.Empty = true
	cfg.Pattern = "glider"
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}

	s.TogglePause()
	before := slices.Clone(s.Grid().Cells())
	if s.Step() {
		t.Fatal("paused session must not advance")
	}
	if !slices.Equal(before, s.Grid().Cells()) {
		t.Fatal("grid changed while paused")
	}

	s.StepOnce()
	if !s.Step() {
		t.Fatal("StepOnce should allow exactly one generation")
	}
	if s.Step() {
		t.Fatal("StepOnce must only apply once")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d", s.Generation())
	}

	s.Resume()
	if s.Paused() || !s.Step() {
		t.Fatal("Resume should restart automatic stepping")
	}
}

func TestSessionFrameRendersAdvancedGeneration(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Empty = true
	cfg.Pattern = "blinker"
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}

	pixels, err := s.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if len(pixels) != render.BufferSize(5, 5) {
		t.Fatalf("frame buffer length %d", len(pixels))
	}
	// The blinker is vertical after one generation.
	for y := 0; y < 5; y++ {
		want := render.Dead
		if y >= 1 && y <= 3 {
			want = render.Alive
		}
		if got := render.PixelAt(pixels, 5, 2, y); got != want {
			t.Fatalf("pixel (2,%d) = %v, expected %v", y, got, want)
		}
	}

	again, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	if &again[0] != &pixels[0] {
		t.Fatal("frame buffer should be reused across frames")
	}
	if !bytes.Equal(again, s.Pixels()) {
		t.Fatal("Pixels should return the last rendered frame")
	}
}

func TestSessionClearAndStatus(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.Step()
	s.Clear()
	st := s.Status(30)
	if st.Population != 0 || st.Generation != 0 {
		t.Fatalf("status after clear = %+v", st)
	}
	if st.Size.W != 16 || st.Size.H != 12 || st.Seed != 42 || st.TPS != 30 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 0
	if _, err := NewSession(cfg); err == nil {
		t.Fatal("expected error for zero width")
	}
}
