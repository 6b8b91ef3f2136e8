// Package term presents a session in a terminal, one grid cell per character
// cell, using the rendered frame buffer for the background colours.
package term

import (
	"context"
	"image/color"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixlife/internal/app"
	"pixlife/pkg/core"
	"pixlife/pkg/render"
)

// DefaultWidth and DefaultHeight size the grid to a typical terminal instead
// of the window host's 320x240.
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

// DefaultConfig returns the window defaults resized for a terminal. Pass it
// to app.ParseWith so a -config file or explicit flags can still override
// the size.
func DefaultConfig() *app.Config {
	cfg := app.NewConfig()
	cfg.Width = DefaultWidth
	cfg.Height = DefaultHeight
	return cfg
}

// Host drives a session on a tcell screen. Run owns the session for its whole
// duration; input arrives over a channel and is applied on the same goroutine.
type Host struct {
	screen  tcell.Screen
	session *app.Session
	timer   *core.FixedStep
	status  bool
}

// New constructs a Host stepping at tps. The screen must already be
// initialised.
func New(screen tcell.Screen, session *app.Session, tps int) *Host {
	return &Host{
		screen:  screen,
		session: session,
		timer:   core.NewFixedStep(tps),
		status:  true,
	}
}

// Run steps and draws the session until ctx is cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	if err := h.Draw(); err != nil {
		return err
	}
	for {
		wait := time.NewTimer(h.timer.Wait())
		select {
		case <-ctx.Done():
			wait.Stop()
			return nil
		case ev, ok := <-events:
			wait.Stop()
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
			}
		case <-wait.C:
		}

		var pixels []byte
		var err error
		if h.timer.Due() {
			pixels, err = h.session.Frame()
		} else {
			pixels, err = h.session.Render()
		}
		if err != nil {
			return err
		}
		h.paint(pixels)
	}
}

// HandleKey applies a key press to the session. It reports true when the
// user asked to quit.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		h.session.Resume()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		h.session.TogglePause()
	case 'n', 'N':
		h.session.StepOnce()
	case 'r', 'R':
		h.session.Reset(h.session.Seed())
	case 's', 'S':
		h.session.Reset(time.Now().UnixNano())
	case 'c', 'C':
		h.session.Clear()
	case 'h', 'H':
		h.status = !h.status
	}
	return false
}

// Draw renders the current generation and copies it to the screen, clipped
// to the terminal size.
func (h *Host) Draw() error {
	pixels, err := h.session.Render()
	if err != nil {
		return err
	}
	h.paint(pixels)
	return nil
}

func (h *Host) paint(pixels []byte) {
	size := h.session.Size()
	sw, sh := h.screen.Size()
	rows := sh
	if h.status && rows > 0 {
		rows--
	}
	for y := 0; y < min(size.H, rows); y++ {
		for x := 0; x < min(size.W, sw); x++ {
			h.screen.SetContent(x, y, ' ', nil, cellStyle(render.PixelAt(pixels, size.W, x, y)))
		}
	}
	if h.status && sh > 0 {
		h.drawStatus(sw, sh-1)
	}
	h.screen.Show()
}

func (h *Host) drawStatus(width, row int) {
	line := strings.Join(h.session.Status(h.timer.Rate()).Lines(), "  ")
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		h.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		h.screen.SetContent(col, row, ' ', nil, style)
	}
}

// cellStyle paints a terminal cell with the pixel colour as its background.
func cellStyle(px color.RGBA) tcell.Style {
	bg := tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B))
	return tcell.StyleDefault.Background(bg).Foreground(bg)
}
