package render

import (
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func TestSurfaceSetAndGet(t *testing.T) {
	s := NewSurface()
	if w, h := s.Size(); w != CanvasSize || h != CanvasSize {
		t.Fatalf("Size = %dx%d, want %dx%d", w, h, CanvasSize, CanvasSize)
	}

	s.SetPixel(3, 5, white)
	if got := s.Pixel(3, 5); got != white {
		t.Fatalf("Pixel(3,5) = %v, want white", got)
	}
	if got := s.Pixel(4, 5); got.R != 0 {
		t.Fatalf("neighbor pixel affected: %v", got)
	}

	// Out-of-bounds writes and reads are safe no-ops.
	s.SetPixel(-1, 0, white)
	s.SetPixel(CanvasSize, 0, white)
	if got := s.Pixel(-1, 0); got != (color.RGBA{}) {
		t.Fatalf("out-of-bounds Pixel = %v, want zero", got)
	}
}

func TestFillRectangleClips(t *testing.T) {
	s := NewSurfaceSize(8, 8)
	if err := s.FillRectangle(-2, -2, 100, 100, white); err != nil {
		t.Fatal(err)
	}
	for y := int16(0); y < 8; y++ {
		for x := int16(0); x < 8; x++ {
			if s.Pixel(x, y) != white {
				t.Fatalf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestRotate180(t *testing.T) {
	s := NewSurfaceSize(4, 3)
	s.SetPixel(0, 0, white)

	s.Rotate180()
	if got := s.Pixel(3, 2); got != white {
		t.Fatalf("corner pixel not at opposite corner after rotation: %v", got)
	}
	if got := s.Pixel(0, 0); got == white {
		t.Fatal("origin pixel still set after rotation")
	}

	// Rotating twice restores the original.
	s.Rotate180()
	if got := s.Pixel(0, 0); got != white {
		t.Fatal("double rotation must be the identity")
	}
}

func TestFillCoversSurface(t *testing.T) {
	s := NewSurfaceSize(5, 5)
	s.Fill(white)
	s.Fill(black)
	if got := s.Pixel(2, 2); got != black {
		t.Fatalf("Pixel after refill = %v, want black", got)
	}
}
