// Package render draws status snapshots into fixed pixel regions.
package render

import "image/color"

// CanvasSize is the square pixel size of one region canvas.
const CanvasSize = 68

// Surface is an RGB565 pixel buffer one region renders into.
//
// It implements drivers.Displayer (plus the FillRectangle fast path), so
// tinyfont can draw text on it directly. Callers provide no backing store;
// the surface owns its buffer.
type Surface struct {
	w, h int16
	buf  []byte
}

// NewSurface returns a region-sized surface.
func NewSurface() *Surface {
	return NewSurfaceSize(CanvasSize, CanvasSize)
}

// NewSurfaceSize returns a surface with the given dimensions.
func NewSurfaceSize(w, h int16) *Surface {
	if w <= 0 || h <= 0 {
		return &Surface{}
	}
	return &Surface{w: w, h: h, buf: make([]byte, int(w)*int(h)*2)}
}

func (s *Surface) Size() (x, y int16) { return s.w, s.h }

// Display satisfies drivers.Displayer; a surface has no backing device.
func (s *Surface) Display() error { return nil }

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	off := (int(y)*int(s.w) + int(x)) * 2
	s.buf[off] = byte(p)
	s.buf[off+1] = byte(p >> 8)
}

// Pixel returns the color stored at (x, y), or zero when out of bounds.
func (s *Surface) Pixel(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return color.RGBA{}
	}
	off := (int(y)*int(s.w) + int(x)) * 2
	r, g, b := rgb888From565(uint16(s.buf[off]) | uint16(s.buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FillRectangle fills the given rectangle, clipping to the surface bounds.
func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clamp(int(x), 0, int(s.w))
	y0 := clamp(int(y), 0, int(s.h))
	x1 := clamp(int(x)+int(width), 0, int(s.w))
	y1 := clamp(int(y)+int(height), 0, int(s.h))

	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for yy := y0; yy < y1; yy++ {
		row := yy * int(s.w) * 2
		for xx := x0; xx < x1; xx++ {
			off := row + xx*2
			s.buf[off] = lo
			s.buf[off+1] = hi
		}
	}
	return nil
}

// Fill covers the whole surface with one color.
func (s *Surface) Fill(c color.RGBA) {
	_ = s.FillRectangle(0, 0, s.w, s.h, c)
}

// Rotate180 rotates the buffer in place, for displays mounted upside down.
func (s *Surface) Rotate180() {
	n := int(s.w) * int(s.h)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a, b := i*2, j*2
		s.buf[a], s.buf[b] = s.buf[b], s.buf[a]
		s.buf[a+1], s.buf[b+1] = s.buf[b+1], s.buf[a+1]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F)
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(p>>11) << 3
	g = uint8(p>>5&0x3F) << 2
	b = uint8(p&0x1F) << 3
	return r, g, b
}
