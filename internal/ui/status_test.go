package ui

import (
	"slices"
	"testing"

	"pixlife/pkg/core"
)

func TestStatusLines(t *testing.T) {
	s := Status{
		Size:       core.Size{W: 10, H: 10},
		Generation: 12,
		Population: 25,
		Seed:       42,
		Paused:     true,
		TPS:        30,
	}
	want := []string{
		"Grid: 10x10",
		"Generation: 12",
		"Population: 25 (25.0%)",
		"Seed: 42",
		"TPS: 30.0",
		"State: paused",
	}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, expected %q", got, want)
	}
}

func TestStatusEmptyGrid(t *testing.T) {
	fields := Status{}.Fields()
	if fields[2].Value != "0 (0.0%)" {
		t.Fatalf("population on empty size = %q", fields[2].Value)
	}
	if fields[5].Value != "running" {
		t.Fatalf("state = %q", fields[5].Value)
	}
}
