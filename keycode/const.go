package keycode

// HID usage pages the decoder understands.
const (
	PageKeyboard = 0x07 // keyboard/keypad page
	PageConsumer = 0x0C // consumer control page
)

// Modifier bitmasks (HID boot keyboard modifier byte).
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// shiftMask selects the two shift bits. Caps lock is deliberately not
// treated as shift-equivalent.
const shiftMask = ModLeftShift | ModRightShift

// Keyboard-page usage code ranges.
const (
	keyA     = 0x04 // .. keyZ, letters by linear offset
	keyZ     = 0x1D
	key1     = 0x1E // .. keySlash, main row with shifted variants
	keySlash = 0x38
	keyF1    = 0x3A // .. keyF12
	keyF12   = 0x45
	keyHome  = 0x4A // .. keyUp, navigation cluster
	keyUp    = 0x52
	keyLCtrl = 0xE0 // .. keyRGUI, modifier keys
	keyRGUI  = 0xE7
)

// Consumer-page usage codes with dedicated labels.
const (
	consumerNext = 0xB5
	consumerPrev = 0xB6
	consumerPlay = 0xCD
	consumerMute = 0xE2
	consumerVolU = 0xE9
	consumerVolD = 0xEA
)
