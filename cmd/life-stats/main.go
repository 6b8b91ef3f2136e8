package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"

	"pixlife/internal/stats"
)

func main() {
	width := flag.Int("width", 320, "grid width for each trial")
	height := flag.Int("height", 240, "grid height for each trial")
	steps := flag.Int("steps", 500, "generations to simulate per trial")
	trials := flag.Int("trials", 16, "number of seeded grids")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel trial evaluations")
	seed := flag.Int64("seed", 42, "seed of the first trial; trial i uses seed+i")
	verbose := flag.Bool("v", false, "print every trial")
	flag.Parse()

	sum, err := stats.Run(context.Background(), stats.Options{
		Width:   *width,
		Height:  *height,
		Steps:   *steps,
		Trials:  *trials,
		Workers: *workers,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		for _, t := range sum.Trials {
			extinct := "-"
			if t.ExtinctAt >= 0 {
				extinct = fmt.Sprint(t.ExtinctAt)
			}
			fmt.Printf("seed %d: initial %d (%.4f), final %d, extinct at %s\n",
				t.Seed, t.InitialPopulation, t.InitialFraction, t.FinalPopulation, extinct)
		}
		fmt.Println()
	}
	fmt.Printf("%d trials of %dx%d for %d generations\n", len(sum.Trials), *width, *height, *steps)
	fmt.Printf("Initial alive fraction: mean %.4f, min %.4f, max %.4f\n", sum.MeanFraction, sum.MinFraction, sum.MaxFraction)
	fmt.Printf("Final population: mean %.1f\n", sum.MeanFinal)
}
