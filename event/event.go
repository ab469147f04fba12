// Package event carries the typed keyboard-state events the status widgets
// consume, plus a small synchronous bus to deliver them.
package event

import "niceview/hal"

// Kind identifies an event type for subscription filtering.
type Kind uint8

const (
	KindBatteryStateChanged Kind = iota + 1
	KindUSBConnStateChanged
	KindEndpointChanged
	KindBLEProfileChanged
	KindLayerStateChanged
	KindKeyStateChanged
	KindPositionStateChanged

	kindMax = KindPositionStateChanged
)

func (k Kind) String() string {
	switch k {
	case KindBatteryStateChanged:
		return "battery-state-changed"
	case KindUSBConnStateChanged:
		return "usb-conn-state-changed"
	case KindEndpointChanged:
		return "endpoint-changed"
	case KindBLEProfileChanged:
		return "ble-profile-changed"
	case KindLayerStateChanged:
		return "layer-state-changed"
	case KindKeyStateChanged:
		return "key-state-changed"
	case KindPositionStateChanged:
		return "position-state-changed"
	default:
		return "unknown"
	}
}

// Event is a typed keyboard-state notification. Listeners receive the
// interface and type-assert for the payload; a nil Event means "no payload,
// query current state instead".
type Event interface {
	Kind() Kind
}

// BatteryStateChanged reports a new battery state of charge.
type BatteryStateChanged struct {
	StateOfCharge uint8 // 0..100
}

func (BatteryStateChanged) Kind() Kind { return KindBatteryStateChanged }

// USBConnState is the coarse USB connection state.
type USBConnState uint8

const (
	USBConnNone USBConnState = iota
	USBConnPowered
	USBConnHID
)

// USBConnStateChanged reports a USB connection state transition. Listeners
// treat it as a trigger only and re-query power state directly.
type USBConnStateChanged struct {
	State USBConnState
}

func (USBConnStateChanged) Kind() Kind { return KindUSBConnStateChanged }

// EndpointChanged reports that the selected output endpoint changed.
type EndpointChanged struct {
	Endpoint hal.Endpoint
}

func (EndpointChanged) Kind() Kind { return KindEndpointChanged }

// BLEProfileChanged reports that the active wireless profile slot changed.
type BLEProfileChanged struct {
	Index int
}

func (BLEProfileChanged) Kind() Kind { return KindBLEProfileChanged }

// LayerStateChanged reports a keymap layer being activated or deactivated.
type LayerStateChanged struct {
	Layer  int
	Active bool
}

func (LayerStateChanged) Kind() Kind { return KindLayerStateChanged }

// KeyStateChanged reports a key press or release with full HID usage data.
type KeyStateChanged struct {
	UsagePage         uint8
	Keycode           uint16
	ImplicitModifiers uint8
	ExplicitModifiers uint8
	Pressed           bool
}

func (KeyStateChanged) Kind() Kind { return KindKeyStateChanged }

// PositionStateChanged reports a key press or release by switch position,
// for builds where HID usage data is unavailable.
type PositionStateChanged struct {
	Position uint32
	Pressed  bool
}

func (PositionStateChanged) Kind() Kind { return KindPositionStateChanged }
