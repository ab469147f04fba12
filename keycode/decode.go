// Package keycode maps HID input-report usage codes to short display labels.
//
// Decoding is pure table lookup: no state, no side effects, and every label
// is a string constant so the hot path does not allocate.
package keycode

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type pair struct {
	base    string
	shifted string
}

// mainRow covers codes 0x1E-0x38: digits and punctuation carry a shifted
// variant, named keys repeat the same label. The zero entry at 0x32
// (non-US #) is intentionally absent, matching upstream.
var mainRow = [keySlash - key1 + 1]pair{
	{"1", "!"},
	{"2", "@"},
	{"3", "#"},
	{"4", "$"},
	{"5", "%"},
	{"6", "^"},
	{"7", "&"},
	{"8", "*"},
	{"9", "("},
	{"0", ")"},
	{"ENTER", "ENTER"},
	{"ESC", "ESC"},
	{"BSPC", "BSPC"},
	{"TAB", "TAB"},
	{"SPACE", "SPACE"},
	{"-", "_"},
	{"=", "+"},
	{"[", "{"},
	{"]", "}"},
	{"\\", "|"},
	{},
	{";", ":"},
	{"'", "\""},
	{"`", "~"},
	{",", "<"},
	{".", ">"},
	{"/", "?"},
}

var fnKeys = [keyF12 - keyF1 + 1]string{
	"F1", "F2", "F3", "F4", "F5", "F6",
	"F7", "F8", "F9", "F10", "F11", "F12",
}

var navKeys = [keyUp - keyHome + 1]string{
	"HOME", "PGUP", "DEL", "END", "PGDN",
	"RIGHT", "LEFT", "DOWN", "UP",
}

var modKeys = [keyRGUI - keyLCtrl + 1]string{
	"LCTRL", "LSHFT", "LALT", "LGUI",
	"RCTRL", "RSHFT", "RALT", "RGUI",
}

// Shifted reports whether the combined modifier byte has either shift bit
// set.
func Shifted(modifiers uint8) bool {
	return modifiers&shiftMask != 0
}

// Decode maps a usage page, keycode and combined modifier byte to a short
// label. It reports false when the page or code is unknown; the caller
// chooses its own fallback. The consumer page always succeeds.
func Decode(page uint8, code uint16, modifiers uint8) (string, bool) {
	switch page {
	case PageKeyboard:
		return decodeKeyboard(code, Shifted(modifiers))
	case PageConsumer:
		return decodeConsumer(code), true
	default:
		return "", false
	}
}

func decodeKeyboard(code uint16, shifted bool) (string, bool) {
	switch {
	case code >= keyA && code <= keyZ:
		i := code - keyA
		return letters[i : i+1], true
	case code >= key1 && code <= keySlash:
		p := mainRow[code-key1]
		if p.base == "" {
			return "", false
		}
		if shifted {
			return p.shifted, true
		}
		return p.base, true
	case code >= keyF1 && code <= keyF12:
		return fnKeys[code-keyF1], true
	case code >= keyHome && code <= keyUp:
		return navKeys[code-keyHome], true
	case code >= keyLCtrl && code <= keyRGUI:
		return modKeys[code-keyLCtrl], true
	default:
		return "", false
	}
}

func decodeConsumer(code uint16) string {
	switch code {
	case consumerMute:
		return "MUTE"
	case consumerVolU:
		return "VOL+"
	case consumerVolD:
		return "VOL-"
	case consumerNext:
		return "NEXT"
	case consumerPrev:
		return "PREV"
	case consumerPlay:
		return "PLAY"
	default:
		return "MEDIA"
	}
}
