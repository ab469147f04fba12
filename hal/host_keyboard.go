//go:build !tinygo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"niceview/keycode"
)

// KeyPress is a captured keystroke translated to HID usage terms, ready to
// feed into a key-state event.
type KeyPress struct {
	UsagePage uint8
	Keycode   uint16
	Modifiers uint8
	Pressed   bool
}

// Control is a simulation command entered as a Ctrl chord in the window.
type Control uint8

const (
	ControlNone Control = iota
	ControlProfile1
	ControlProfile2
	ControlProfile3
	ControlProfile4
	ControlProfile5
	ControlToggleTransport
	ControlTogglePower
	ControlToggleConnected
	ControlToggleBonded
	ControlCycleLayer
	ControlDrainBattery
)

// HostKeyboard captures window keystrokes and splits them into HID key
// presses and simulation controls.
type HostKeyboard struct {
	keys chan KeyPress
	ctls chan Control
}

func newHostKeyboard() *HostKeyboard {
	return &HostKeyboard{
		keys: make(chan KeyPress, 64),
		ctls: make(chan Control, 16),
	}
}

// Keys streams HID key presses and releases.
func (k *HostKeyboard) Keys() <-chan KeyPress { return k.keys }

// Controls streams simulation commands.
func (k *HostKeyboard) Controls() <-chan Control { return k.ctls }

// hidFromEbiten maps window keys to keyboard-page usage codes.
var hidFromEbiten = map[ebiten.Key]uint16{
	ebiten.KeyA: 0x04, ebiten.KeyB: 0x05, ebiten.KeyC: 0x06, ebiten.KeyD: 0x07,
	ebiten.KeyE: 0x08, ebiten.KeyF: 0x09, ebiten.KeyG: 0x0A, ebiten.KeyH: 0x0B,
	ebiten.KeyI: 0x0C, ebiten.KeyJ: 0x0D, ebiten.KeyK: 0x0E, ebiten.KeyL: 0x0F,
	ebiten.KeyM: 0x10, ebiten.KeyN: 0x11, ebiten.KeyO: 0x12, ebiten.KeyP: 0x13,
	ebiten.KeyQ: 0x14, ebiten.KeyR: 0x15, ebiten.KeyS: 0x16, ebiten.KeyT: 0x17,
	ebiten.KeyU: 0x18, ebiten.KeyV: 0x19, ebiten.KeyW: 0x1A, ebiten.KeyX: 0x1B,
	ebiten.KeyY: 0x1C, ebiten.KeyZ: 0x1D,

	ebiten.KeyDigit1: 0x1E, ebiten.KeyDigit2: 0x1F, ebiten.KeyDigit3: 0x20,
	ebiten.KeyDigit4: 0x21, ebiten.KeyDigit5: 0x22, ebiten.KeyDigit6: 0x23,
	ebiten.KeyDigit7: 0x24, ebiten.KeyDigit8: 0x25, ebiten.KeyDigit9: 0x26,
	ebiten.KeyDigit0: 0x27,

	ebiten.KeyEnter: 0x28, ebiten.KeyEscape: 0x29, ebiten.KeyBackspace: 0x2A,
	ebiten.KeyTab: 0x2B, ebiten.KeySpace: 0x2C,

	ebiten.KeyMinus: 0x2D, ebiten.KeyEqual: 0x2E,
	ebiten.KeyBracketLeft: 0x2F, ebiten.KeyBracketRight: 0x30,
	ebiten.KeyBackslash: 0x31, ebiten.KeySemicolon: 0x33,
	ebiten.KeyQuote: 0x34, ebiten.KeyBackquote: 0x35,
	ebiten.KeyComma: 0x36, ebiten.KeyPeriod: 0x37, ebiten.KeySlash: 0x38,

	ebiten.KeyF1: 0x3A, ebiten.KeyF2: 0x3B, ebiten.KeyF3: 0x3C,
	ebiten.KeyF4: 0x3D, ebiten.KeyF5: 0x3E, ebiten.KeyF6: 0x3F,
	ebiten.KeyF7: 0x40, ebiten.KeyF8: 0x41, ebiten.KeyF9: 0x42,
	ebiten.KeyF10: 0x43, ebiten.KeyF11: 0x44, ebiten.KeyF12: 0x45,

	ebiten.KeyHome: 0x4A, ebiten.KeyPageUp: 0x4B, ebiten.KeyDelete: 0x4C,
	ebiten.KeyEnd: 0x4D, ebiten.KeyPageDown: 0x4E,
	ebiten.KeyArrowRight: 0x4F, ebiten.KeyArrowLeft: 0x50,
	ebiten.KeyArrowDown: 0x51, ebiten.KeyArrowUp: 0x52,
}

var controlChords = map[ebiten.Key]Control{
	ebiten.KeyDigit1: ControlProfile1,
	ebiten.KeyDigit2: ControlProfile2,
	ebiten.KeyDigit3: ControlProfile3,
	ebiten.KeyDigit4: ControlProfile4,
	ebiten.KeyDigit5: ControlProfile5,
	ebiten.KeyT:      ControlToggleTransport,
	ebiten.KeyU:      ControlTogglePower,
	ebiten.KeyC:      ControlToggleConnected,
	ebiten.KeyB:      ControlToggleBonded,
	ebiten.KeyL:      ControlCycleLayer,
	ebiten.KeyD:      ControlDrainBattery,
}

// poll is called once per frame by the window loop.
func (k *HostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)

	if ctrl {
		for key, c := range controlChords {
			if inpututil.IsKeyJustPressed(key) {
				select {
				case k.ctls <- c:
				default:
				}
			}
		}
		return
	}

	var mods uint8
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		mods |= keycode.ModLeftShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= keycode.ModRightShift
	}

	for key, code := range hidFromEbiten {
		if inpututil.IsKeyJustPressed(key) {
			k.emit(KeyPress{
				UsagePage: keycode.PageKeyboard,
				Keycode:   code,
				Modifiers: mods,
				Pressed:   true,
			})
		}
		if inpututil.IsKeyJustReleased(key) {
			k.emit(KeyPress{
				UsagePage: keycode.PageKeyboard,
				Keycode:   code,
				Modifiers: mods,
			})
		}
	}
}

func (k *HostKeyboard) emit(p KeyPress) {
	select {
	case k.keys <- p:
	default:
	}
}
