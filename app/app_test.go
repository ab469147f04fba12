package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinygo.org/x/drivers"

	"niceview/event"
	"niceview/hal"
	"niceview/render"
)

type fakeScreen struct {
	*render.Surface
}

func (s fakeScreen) Displayer() drivers.Displayer { return s.Surface }
func (s fakeScreen) Rotated() bool                { return false }

type fakeDevice struct {
	screen fakeScreen
}

func (d *fakeDevice) Logger() hal.Logger       { return nopLogger{} }
func (d *fakeDevice) Clock() hal.Clock         { return d }
func (d *fakeDevice) Battery() hal.Battery     { return d }
func (d *fakeDevice) Power() hal.Power         { return d }
func (d *fakeDevice) BLE() hal.BLE             { return d }
func (d *fakeDevice) Endpoints() hal.Endpoints { return d }
func (d *fakeDevice) Keymap() hal.Keymap       { return d }
func (d *fakeDevice) Screen() hal.Screen       { return d.screen }

func (d *fakeDevice) NowMS() uint32                { return 0 }
func (d *fakeDevice) StateOfCharge() uint8         { return 55 }
func (d *fakeDevice) Powered() bool                { return false }
func (d *fakeDevice) ActiveProfileIndex() int      { return 0 }
func (d *fakeDevice) ActiveProfileConnected() bool { return false }
func (d *fakeDevice) ActiveProfileOpen() bool      { return true }
func (d *fakeDevice) Selected() hal.Endpoint {
	return hal.Endpoint{Transport: hal.TransportBLE}
}
func (d *fakeDevice) HighestActiveLayer() int { return 0 }
func (d *fakeDevice) LayerLabel(int) string   { return "" }

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

func TestNewRegistersOneWidgetPerHalf(t *testing.T) {
	dev := &fakeDevice{
		screen: fakeScreen{render.NewSurfaceSize(render.StripWidth, 2*render.CanvasSize)},
	}
	sys := New(dev, Config{Halves: 2})
	assert.Equal(t, 2, sys.Registry.Len())
}

func TestQueuedEventsReachWidgets(t *testing.T) {
	dev := &fakeDevice{
		screen: fakeScreen{render.NewSurfaceSize(render.StripWidth, render.CanvasSize)},
	}
	sys := New(dev, Config{})

	require.True(t, sys.Queue.Push(event.BatteryStateChanged{StateOfCharge: 12}))
	require.Equal(t, 1, sys.Dispatch())

	// Seeding already drew the strip; the queued event redrew the battery
	// region without error. The registry holds the single widget.
	assert.Equal(t, 1, sys.Registry.Len())
}
