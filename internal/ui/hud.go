//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
)

var (
	panelColor = color.RGBA{R: 20, G: 20, B: 28, A: 200}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	pausedText = color.RGBA{R: 255, G: 190, B: 90, A: 255}
)

// HUD draws session statistics in the top-left corner of the window.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw renders status on top of screen.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	lines := status.Lines()

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorScale.ScaleWithColor(panelColor)
	screen.DrawImage(h.pixel, op)

	fg := textColor
	if status.Paused {
		fg = pausedText
	}
	for i, line := range lines {
		text.Draw(screen, line, face, panelPadding, panelPadding+(i+1)*lineHeight-4, fg)
	}
}
