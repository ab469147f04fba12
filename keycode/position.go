package keycode

// positionLabels maps switch positions of the conventional 46-key layout to
// labels, for builds where key events carry positions instead of usage
// codes.
var positionLabels = [...]string{
	"TAB", "Q", "W", "E", "R", "T", "MUTE", "PP", "Y", "U", "I", "O", "P", "BSPC",
	"ESC", "A", "S", "D", "F", "G", "LALT", "RALT", "H", "J", "K", "L", ";", "'",
	"LSHFT", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "ENTER",
	"ALT", "LOWER", "LCTRL", "SPACE", "RAISE", "GUI",
}

// ForPosition returns the label for a switch position. It reports false
// when the position is outside the layout.
func ForPosition(position uint32) (string, bool) {
	if position >= uint32(len(positionLabels)) {
		return "", false
	}
	return positionLabels[position], true
}
