//go:build ebiten

package app

import (
	"log"
	"time"

	"pixlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. ebiten calls Update
// and Draw from a single goroutine, which is the only owner of the session.
type Game struct {
	session *Session
	img     *ebiten.Image
	hud     *ui.HUD
	scale   int
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	size := session.Size()
	return &Game{
		session: session,
		img:     ebiten.NewImage(size.W, size.H),
		hud:     ui.NewHUD(),
		scale:   scale,
	}
}

// Update handles input and advances the simulation by one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		log.Printf("reseeding with %d", seed)
		g.session.Reset(seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.session.Step()
	return nil
}

// Draw renders the current generation and presents it scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	pixels, err := g.session.Render()
	if err != nil {
		log.Printf("render: %v", err)
		return
	}
	g.img.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	g.hud.Draw(screen, g.session.Status(ebiten.ActualTPS()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}
