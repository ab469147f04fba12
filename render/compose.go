package render

import (
	"tinygo.org/x/drivers"

	"niceview/status"
)

// StripWidth is the width of the full status strip on the display.
const StripWidth = 160

// Region canvas x offsets along the strip. The upright layout places the
// top canvas at the far end and lets the bottom canvas clip at the edge;
// the rotated layout packs them in order and flips each canvas 180 degrees.
// Both match the panel wiring of the original shield.
var (
	uprightOffsets = [status.RegionCount]int16{92, 24, -44}
	rotatedOffsets = [status.RegionCount]int16{0, 68, 136}
)

// Compose renders each region into its own canvas and blits the result
// onto a target display. It implements status.Renderer; regions redraw
// independently, an update to one never touches the pixels of another.
type Compose struct {
	screen   drivers.Displayer
	rotated  bool
	offsetY  int16
	surfaces [status.RegionCount]*Surface
}

// NewCompose returns a composer targeting screen. rotated selects the
// flipped layout for displays mounted upside down.
func NewCompose(screen drivers.Displayer, rotated bool) *Compose {
	return NewComposeAt(screen, rotated, 0)
}

// NewComposeAt places the strip at a vertical offset, so several widgets
// can share one tall display.
func NewComposeAt(screen drivers.Displayer, rotated bool, offsetY int16) *Compose {
	c := &Compose{screen: screen, rotated: rotated, offsetY: offsetY}
	for i := range c.surfaces {
		c.surfaces[i] = NewSurface()
	}
	return c
}

// Render implements status.Renderer.
func (c *Compose) Render(r status.Region, st status.State) {
	if r >= status.RegionCount {
		return
	}
	s := c.surfaces[r]

	switch r {
	case status.RegionTop:
		DrawTop(s, st)
	case status.RegionMiddle:
		DrawMiddle(s, st)
	case status.RegionBottom:
		DrawBottom(s, st)
	}

	if c.rotated {
		s.Rotate180()
	}
	c.blit(r, s)
	_ = c.screen.Display()
}

func (c *Compose) blit(r status.Region, s *Surface) {
	ox := uprightOffsets[r]
	if c.rotated {
		ox = rotatedOffsets[r]
	}

	sw, sh := c.screen.Size()
	w, h := s.Size()
	for y := int16(0); y < h; y++ {
		ty := y + c.offsetY
		if ty < 0 || ty >= sh {
			continue
		}
		for x := int16(0); x < w; x++ {
			tx := x + ox
			if tx < 0 || tx >= sw || tx >= StripWidth {
				continue
			}
			c.screen.SetPixel(tx, ty, s.Pixel(x, y))
		}
	}
}
