//go:build poskeys

package status

import (
	"strconv"

	"niceview/event"
	"niceview/keycode"
)

// Positional keypress variant for builds without HID usage data in key
// events: labels come from the fixed layout table, with "K<position>" as
// the out-of-table fallback.

func (l *Listeners) subscribeKeypress(bus *event.Bus) {
	bus.Subscribe(l.onKeypress, event.KindPositionStateChanged)
}

func (l *Listeners) onKeypress(ev event.Event) {
	key, ok := ev.(event.PositionStateChanged)
	if !ok || !key.Pressed {
		return
	}
	if !l.debounce.ShouldRender(l.dev.Clock().NowMS()) {
		return
	}

	label, ok := keycode.ForPosition(key.Position)
	if !ok {
		label = "K" + strconv.FormatUint(uint64(key.Position), 10)
	}
	l.applyKey(label)
}
