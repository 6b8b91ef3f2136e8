// Package stats runs batches of independent random grids and summarises
// their populations.
package stats

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"pixlife/pkg/core"
	"pixlife/pkg/life"
)

// Options controls a batch of trials.
type Options struct {
	Width   int
	Height  int
	Steps   int
	Trials  int
	Workers int
	Seed    int64
}

// Trial is the outcome of one seeded grid.
type Trial struct {
	Seed              int64
	InitialPopulation int
	InitialFraction   float64
	FinalPopulation   int
	// ExtinctAt is the first generation with no live cells, or -1.
	ExtinctAt int
}

// Summary aggregates a batch of trials, ordered by seed.
type Summary struct {
	Trials       []Trial
	MeanFraction float64
	MinFraction  float64
	MaxFraction  float64
	MeanFinal    float64
}

// Run simulates opts.Trials grids, each seeded with opts.Seed+i, across
// opts.Workers goroutines. Every grid is confined to the goroutine that runs
// it. Cancellation is checked between generations.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Trials <= 0 {
		return Summary{}, errors.Errorf("[stats.Run] trials must be positive, got %d", opts.Trials)
	}
	if opts.Steps < 0 {
		return Summary{}, errors.Errorf("[stats.Run] steps must not be negative, got %d", opts.Steps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	trials := make([]Trial, opts.Trials)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range trials {
		seed := opts.Seed + int64(i)
		eg.Go(func() error {
			trial, err := runTrial(ctx, opts, seed)
			if err != nil {
				return err
			}
			trials[i] = trial
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return summarise(trials), nil
}

func runTrial(ctx context.Context, opts Options, seed int64) (Trial, error) {
	g, err := life.NewRandom(opts.Width, opts.Height, core.NewRNG(seed).Source())
	if err != nil {
		return Trial{}, errors.Wrapf(err, "[stats.runTrial] seed %d", seed)
	}
	initial := g.Population()
	t := Trial{
		Seed:              seed,
		InitialPopulation: initial,
		InitialFraction:   float64(initial) / float64(opts.Width*opts.Height),
		ExtinctAt:         -1,
	}
	if initial == 0 {
		t.ExtinctAt = 0
	}
	for gen := 1; gen <= opts.Steps; gen++ {
		if err := ctx.Err(); err != nil {
			return Trial{}, err
		}
		g.Advance()
		if t.ExtinctAt < 0 && g.Population() == 0 {
			t.ExtinctAt = gen
		}
	}
	t.FinalPopulation = g.Population()
	return t, nil
}

func summarise(trials []Trial) Summary {
	s := Summary{Trials: trials, MinFraction: math.Inf(1), MaxFraction: math.Inf(-1)}
	for _, t := range trials {
		s.MeanFraction += t.InitialFraction
		s.MeanFinal += float64(t.FinalPopulation)
		s.MinFraction = math.Min(s.MinFraction, t.InitialFraction)
		s.MaxFraction = math.Max(s.MaxFraction, t.InitialFraction)
	}
	n := float64(len(trials))
	s.MeanFraction /= n
	s.MeanFinal /= n
	return s
}
