//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"pixlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	game := app.New(session, cfg.Scale)
	size := session.Size()

	ebiten.SetWindowTitle("pixlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowSizeLimits(size.W*cfg.Scale, size.H*cfg.Scale, -1, -1)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("exited after %d generations", session.Generation())
}
