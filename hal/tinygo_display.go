//go:build tinygo

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

// boardScreen drives an ILI9341 panel over SPI1 on the RP2040 wiring the
// PicoCalc uses: SCK GP10, SDO GP11, SDI GP12, CS GP13, DC GP14, RST GP15.
type boardScreen struct {
	dev *ili9341.Device
}

func initBoardScreen() (Screen, error) {
	if machine.SPI1 == nil {
		return nil, ErrNoDisplay
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	dev := ili9341.NewSPI(machine.SPI1, machine.GP14, machine.GP13, machine.GP15)
	dev.Configure(ili9341.Config{})
	dev.FillScreen(color.RGBA{A: 0xFF})

	return &boardScreen{dev: dev}, nil
}

func (s *boardScreen) Displayer() drivers.Displayer { return screenDisplayer{dev: s.dev} }
func (s *boardScreen) Rotated() bool                { return false }

// screenDisplayer narrows the driver to the Displayer contract.
type screenDisplayer struct {
	dev *ili9341.Device
}

func (d screenDisplayer) Size() (x, y int16) { return d.dev.Size() }

func (d screenDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.dev.SetPixel(x, y, c)
}

// Display is a no-op: the ILI9341 driver pushes pixels as they are set.
func (d screenDisplayer) Display() error { return nil }
