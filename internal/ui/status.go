package ui

import (
	"fmt"
	"strconv"

	"pixlife/pkg/core"
)

// Field is a single labelled value shown on the HUD.
type Field struct {
	Label string
	Value string
}

// Status captures what the HUD displays about a running session.
type Status struct {
	Size       core.Size
	Generation int
	Population int
	Seed       int64
	Paused     bool
	TPS        float64
}

// Fields returns the HUD rows in display order.
func (s Status) Fields() []Field {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	density := 0.0
	if cells := s.Size.Cells(); cells > 0 {
		density = 100 * float64(s.Population) / float64(cells)
	}
	return []Field{
		{Label: "Grid", Value: fmt.Sprintf("%dx%d", s.Size.W, s.Size.H)},
		intField("Generation", s.Generation),
		{Label: "Population", Value: fmt.Sprintf("%d (%.1f%%)", s.Population, density)},
		{Label: "Seed", Value: strconv.FormatInt(s.Seed, 10)},
		{Label: "TPS", Value: strconv.FormatFloat(s.TPS, 'f', 1, 64)},
		{Label: "State", Value: state},
	}
}

// Lines renders Fields as "Label: value" strings.
func (s Status) Lines() []string {
	fields := s.Fields()
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Label + ": " + f.Value
	}
	return lines
}

func intField(label string, value int) Field {
	return Field{Label: label, Value: strconv.Itoa(value)}
}
