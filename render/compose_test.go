package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"niceview/status"
)

func TestComposeBlitsUprightOffsets(t *testing.T) {
	screen := NewSurfaceSize(StripWidth, CanvasSize)
	c := NewCompose(screen, false)

	c.Render(status.RegionTop, status.State{Battery: 100})

	// The top canvas sits at x=92: its battery outline origin (0,2) lands
	// at (92,2) on the strip.
	assert.Equal(t, colorFG, screen.Pixel(92, 2))
	// Nothing left of the top canvas was touched by this render.
	assert.Equal(t, colorBG, screen.Pixel(91, 2))
}

func TestComposeRotatedFlipsCanvas(t *testing.T) {
	screen := NewSurfaceSize(StripWidth, CanvasSize)
	c := NewCompose(screen, true)

	c.Render(status.RegionTop, status.State{Battery: 100})

	// Rotated layout puts the top canvas at x=0 and flips it, so the
	// battery outline origin (0,2) lands at (67,65).
	assert.Equal(t, colorFG, screen.Pixel(67, 65))
	assert.Equal(t, colorBG, screen.Pixel(0, 2))
}

func TestComposeBottomClipsOffStrip(t *testing.T) {
	screen := NewSurfaceSize(StripWidth, CanvasSize)
	c := NewCompose(screen, false)

	// The bottom canvas overhangs the strip edge at x=-44; rendering it
	// must clip instead of wrapping or panicking.
	c.Render(status.RegionBottom, status.State{LayerIndex: 1})
	if w, _ := screen.Size(); w != StripWidth {
		t.Fatalf("screen resized to %d", w)
	}
}

func TestComposeOffsetYStacksHalves(t *testing.T) {
	screen := NewSurfaceSize(StripWidth, 2*CanvasSize)
	lower := NewComposeAt(screen, false, CanvasSize)

	lower.Render(status.RegionTop, status.State{Battery: 100})

	assert.Equal(t, colorFG, screen.Pixel(92, CanvasSize+2))
	assert.Equal(t, colorBG, screen.Pixel(92, 2))
}

func TestComposeRegionsIndependent(t *testing.T) {
	screen := NewSurfaceSize(StripWidth, CanvasSize)
	c := NewCompose(screen, false)

	c.Render(status.RegionTop, status.State{Battery: 100})
	before := screen.Pixel(92, 2)

	// Redrawing the middle region must not disturb top-region pixels.
	c.Render(status.RegionMiddle, status.State{ActiveProfileIndex: 1})
	assert.Equal(t, before, screen.Pixel(92, 2))
}
