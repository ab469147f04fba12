package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"niceview/hal"
	"niceview/status"
)

func TestOutputSymbol(t *testing.T) {
	cases := []struct {
		name string
		st   status.State
		want string
	}{
		{
			name: "usb",
			st:   status.State{Endpoint: hal.Endpoint{Transport: hal.TransportUSB}},
			want: symbolUSB,
		},
		{
			name: "ble bonded connected",
			st: status.State{
				Endpoint:               hal.Endpoint{Transport: hal.TransportBLE},
				ActiveProfileBonded:    true,
				ActiveProfileConnected: true,
			},
			want: symbolBLEConnected,
		},
		{
			name: "ble bonded disconnected",
			st: status.State{
				Endpoint:            hal.Endpoint{Transport: hal.TransportBLE},
				ActiveProfileBonded: true,
			},
			want: symbolBLEDropped,
		},
		{
			name: "ble unbonded shows unpaired even when connected",
			st: status.State{
				Endpoint:               hal.Endpoint{Transport: hal.TransportBLE},
				ActiveProfileConnected: true,
			},
			want: symbolBLEUnpaired,
		},
		{
			name: "no endpoint",
			st:   status.State{},
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outputSymbol(tc.st))
		})
	}
}

func TestLayerText(t *testing.T) {
	assert.Equal(t, "NAV", layerText(status.State{LayerIndex: 2, LayerLabel: "NAV"}))
	assert.Equal(t, "LAYER 2", layerText(status.State{LayerIndex: 2}))
	assert.Equal(t, "LAYER 0", layerText(status.State{}))
}

func TestDrawTopKeyBox(t *testing.T) {
	s := NewSurface()
	DrawTop(s, status.State{LastKey: "A", ShowLastKey: true})

	// Box border is drawn in the foreground color, the inside is cleared.
	assert.Equal(t, colorFG, s.Pixel(0, 21))
	assert.Equal(t, colorFG, s.Pixel(67, 62))
	assert.Equal(t, colorBG, s.Pixel(3, 25))
}

func TestDrawTopHiddenKeyLeavesBoxEmpty(t *testing.T) {
	s := NewSurface()
	DrawTop(s, status.State{LastKey: "A"})

	for y := int16(23); y < 61; y++ {
		for x := int16(2); x < 66; x++ {
			if s.Pixel(x, y) != colorBG {
				t.Fatalf("pixel (%d,%d) set inside the key box with ShowLastKey=false", x, y)
			}
		}
	}
}

func TestDrawMiddleSelectedCircleFilled(t *testing.T) {
	s := NewSurface()
	DrawMiddle(s, status.State{ActiveProfileIndex: 2})

	// Center circle (profile 3) is filled; another one is hollow.
	assert.Equal(t, colorFG, ringSample(s, 34, 34, 7))
	assert.Equal(t, colorBG, ringSample(s, 13, 55, 7))
}

// ringSample reads a pixel inside a circle but clear of its number label.
func ringSample(s *Surface, cx, cy, dy int16) color.RGBA {
	return s.Pixel(cx, cy+dy)
}

func TestDrawBatteryLevels(t *testing.T) {
	full := NewSurface()
	DrawTop(full, status.State{Battery: 100})

	empty := NewSurface()
	DrawTop(empty, status.State{Battery: 0})

	// The right end of the charge bar differs between full and empty.
	assert.Equal(t, colorFG, full.Pixel(22, 8))
	assert.Equal(t, colorBG, empty.Pixel(22, 8))
	// The case outline is present either way.
	assert.Equal(t, colorFG, empty.Pixel(0, 2))
	assert.Equal(t, colorFG, full.Pixel(0, 2))
}
