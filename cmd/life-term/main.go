package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"pixlife/internal/app"
	"pixlife/internal/term"
)

func main() {
	fs := flag.NewFlagSet("life-term", flag.ExitOnError)
	cfg, err := app.ParseWith(term.DefaultConfig(), fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := term.New(screen, session, cfg.TPS).Run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	log.Printf("exited after %d generations", session.Generation())
}
