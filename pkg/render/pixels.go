// Package render maps a Life generation onto an RGBA pixel buffer owned by
// the caller.
package render

import (
	"image/color"

	"github.com/pkg/errors"

	"pixlife/pkg/core"
)

// BytesPerPixel is the size of one RGBA pixel in the frame buffer.
const BytesPerPixel = 4

// ErrBufferSizeMismatch is returned when the frame buffer does not hold
// exactly one pixel per cell.
var ErrBufferSizeMismatch = errors.New("frame buffer size mismatch")

var (
	// Alive is the colour of a live cell.
	Alive = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// Dead is the colour of a dead cell.
	Dead = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Source is the read view of a grid that the renderer needs.
type Source interface {
	Size() core.Size
	Cells() []bool
}

// BufferSize returns the byte length of a frame buffer for a w*h grid.
func BufferSize(w, h int) int { return w * h * BytesPerPixel }

// Render writes the current generation of src into buf, one pixel per cell in
// row-major order. On ErrBufferSizeMismatch buf is left untouched.
func Render(src Source, buf []byte) error {
	size := src.Size()
	if want := BufferSize(size.W, size.H); len(buf) != want {
		return errors.Wrapf(ErrBufferSizeMismatch, "[render.Render] want %d bytes, got %d", want, len(buf))
	}
	fillBinaryRGBA(buf, src.Cells(), Alive, Dead)
	return nil
}

// fillBinaryRGBA converts boolean cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.RGBA) {
	for i, alive := range cells {
		base := i * BytesPerPixel
		if alive {
			buf[base+0] = on.R
			buf[base+1] = on.G
			buf[base+2] = on.B
			buf[base+3] = on.A
			continue
		}
		buf[base+0] = off.R
		buf[base+1] = off.G
		buf[base+2] = off.B
		buf[base+3] = off.A
	}
}

// PixelAt returns the colour stored for cell (x, y) in a buffer previously
// filled by Render for a grid of the given width.
func PixelAt(buf []byte, width, x, y int) color.RGBA {
	base := (x + width*y) * BytesPerPixel
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}
