//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// hostScreen is an in-memory RGB565 panel. The window snapshots it each
// frame; renderers treat it like any other Displayer.
type hostScreen struct {
	mu      sync.Mutex
	w, h    int16
	buf     []byte
	rotated bool
}

func newHostScreen(w, h int16, rotated bool) *hostScreen {
	return &hostScreen{
		w:       w,
		h:       h,
		buf:     make([]byte, int(w)*int(h)*2),
		rotated: rotated,
	}
}

func (s *hostScreen) Displayer() drivers.Displayer { return s }
func (s *hostScreen) Rotated() bool                { return s.rotated }

func (s *hostScreen) Size() (x, y int16) { return s.w, s.h }

func (s *hostScreen) Display() error { return nil }

func (s *hostScreen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	p := rgb565(c.R, c.G, c.B)
	s.mu.Lock()
	off := (int(y)*int(s.w) + int(x)) * 2
	s.buf[off] = byte(p)
	s.buf[off+1] = byte(p >> 8)
	s.mu.Unlock()
}

func (s *hostScreen) snapshotRGB565(dst []byte) {
	s.mu.Lock()
	copy(dst, s.buf)
	s.mu.Unlock()
}
