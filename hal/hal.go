package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNoDisplay = errors.New("no display")

// Transport identifies the output path key reports leave the keyboard on.
type Transport uint8

const (
	TransportNone Transport = iota
	TransportUSB
	TransportBLE
)

func (t Transport) String() string {
	switch t {
	case TransportUSB:
		return "usb"
	case TransportBLE:
		return "ble"
	default:
		return "none"
	}
}

// Endpoint describes the selected output endpoint.
type Endpoint struct {
	Transport Transport
}

// ProfileCount is the number of wireless profile slots.
const ProfileCount = 5

// Clock provides a monotonic millisecond counter.
//
// The counter wraps at 32 bits; consumers must use wraparound-safe deltas.
type Clock interface {
	NowMS() uint32
}

// Battery reports the current state of charge.
type Battery interface {
	StateOfCharge() uint8 // 0..100
}

// Power reports whether external (USB) power is present.
type Power interface {
	Powered() bool
}

// BLE reports the state of the active wireless profile slot.
type BLE interface {
	ActiveProfileIndex() int
	ActiveProfileConnected() bool
	// ActiveProfileOpen reports whether the active slot has no stored bond.
	ActiveProfileOpen() bool
}

// Endpoints reports the selected output endpoint.
type Endpoints interface {
	Selected() Endpoint
}

// Keymap exposes the layer state of the keymap.
type Keymap interface {
	HighestActiveLayer() int
	// LayerLabel returns the display name of a layer, or "" when it has none.
	LayerLabel(index int) string
}

// Screen is the pixel target the status bar is composed onto.
type Screen interface {
	Displayer() drivers.Displayer
	// Rotated reports whether the display is mounted upside down.
	Rotated() bool
}

// Device bundles every surface the status core reads from.
//
// This is the only contact point between the core and the keyboard firmware;
// everything behind it is a black box.
type Device interface {
	Logger() Logger
	Clock() Clock
	Battery() Battery
	Power() Power
	BLE() BLE
	Endpoints() Endpoints
	Keymap() Keymap
	Screen() Screen
}
