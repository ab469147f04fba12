//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"niceview/internal/buildinfo"
)

// RunWindow opens a desktop window that displays the simulated screen and
// forwards keyboard input. step runs once per frame before drawing; it is
// the event dispatch point. RunWindow blocks until the window closes.
func RunWindow(dev *HostDevice, scale int, step func() error) error {
	if scale < 1 {
		scale = 1
	}

	g := &hostGame{dev: dev, step: step}
	w, h := dev.screen.Size()
	ebiten.SetWindowTitle("niceview (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(w)*scale, int(h)*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	dev     *HostDevice
	step    func() error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	g.dev.kbd.poll()
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	scr := g.dev.screen
	w, h := scr.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		g.scratch = make([]byte, len(scr.buf))
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}

	scr.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.dev.screen.Size()
	return int(w), int(h)
}
