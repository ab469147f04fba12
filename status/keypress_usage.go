//go:build !poskeys

package status

import (
	"niceview/event"
	"niceview/keycode"
)

// Default keypress variant: events carry full HID usage data.

func (l *Listeners) subscribeKeypress(bus *event.Bus) {
	bus.Subscribe(l.onKeypress, event.KindKeyStateChanged)
}

func (l *Listeners) onKeypress(ev event.Event) {
	key, ok := ev.(event.KeyStateChanged)
	if !ok || !key.Pressed {
		return
	}
	if !l.debounce.ShouldRender(l.dev.Clock().NowMS()) {
		return
	}

	mods := key.ImplicitModifiers | key.ExplicitModifiers
	label, ok := keycode.Decode(key.UsagePage, key.Keycode, mods)
	if !ok {
		label = "KEY"
	}
	l.applyKey(label)
}
