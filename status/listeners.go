package status

import (
	"niceview/event"
	"niceview/hal"
)

// Listeners connects the status event stream to a widget registry.
//
// Each listener computes a partial state from its event (or from a direct
// device query when the event carries no usable payload), applies it to
// every registered widget, and redraws only the affected regions.
type Listeners struct {
	reg      *Registry
	dev      hal.Device
	debounce *Debouncer
}

// Attach subscribes the four status listeners to the bus and seeds every
// query-backed field, so widgets never render uninitialized state. The
// keypress listener has no query path and stays blank until the first key.
//
// A nil debouncer gets the default interval.
func Attach(bus *event.Bus, reg *Registry, dev hal.Device, debounce *Debouncer) *Listeners {
	if debounce == nil {
		debounce = NewDebouncer(RenderIntervalMS)
	}
	l := &Listeners{reg: reg, dev: dev, debounce: debounce}

	bus.Subscribe(l.onBattery,
		event.KindBatteryStateChanged, event.KindUSBConnStateChanged)
	bus.Subscribe(l.onOutput,
		event.KindEndpointChanged, event.KindUSBConnStateChanged, event.KindBLEProfileChanged)
	bus.Subscribe(l.onLayer, event.KindLayerStateChanged)
	l.subscribeKeypress(bus)

	l.onBattery(nil)
	l.onOutput(nil)
	l.onLayer(nil)
	return l
}

type batteryStatus struct {
	level   uint8
	powered bool
}

func (l *Listeners) onBattery(ev event.Event) {
	// The charging flag is always re-queried; only the charge level may
	// come from the event.
	st := batteryStatus{powered: l.dev.Power().Powered()}
	if b, ok := ev.(event.BatteryStateChanged); ok {
		st.level = b.StateOfCharge
	} else {
		st.level = l.dev.Battery().StateOfCharge()
	}

	l.reg.forEach(func(w *Widget) {
		w.update(func(s *State) {
			s.Battery = st.level
			s.Charging = st.powered
		}, RegionTop)
	})
}

type outputStatus struct {
	endpoint  hal.Endpoint
	profile   int
	connected bool
	bonded    bool
}

func (l *Listeners) onOutput(event.Event) {
	// The event payload is only a trigger. Endpoint, profile index and the
	// two profile flags are mutually dependent, so they are read as one
	// snapshot.
	ble := l.dev.BLE()
	st := outputStatus{
		endpoint:  l.dev.Endpoints().Selected(),
		profile:   ble.ActiveProfileIndex(),
		connected: ble.ActiveProfileConnected(),
		bonded:    !ble.ActiveProfileOpen(),
	}

	l.reg.forEach(func(w *Widget) {
		w.update(func(s *State) {
			s.Endpoint = st.endpoint
			s.ActiveProfileIndex = st.profile
			s.ActiveProfileConnected = st.connected
			s.ActiveProfileBonded = st.bonded
		}, RegionTop, RegionMiddle)
	})
}

func (l *Listeners) onLayer(event.Event) {
	km := l.dev.Keymap()
	index := km.HighestActiveLayer()
	label := km.LayerLabel(index)

	l.reg.forEach(func(w *Widget) {
		w.update(func(s *State) {
			s.LayerIndex = index
			s.LayerLabel = label
		}, RegionBottom)
	})
}

// applyKey stores a decoded key label on every widget and redraws the top
// region. The caller has already passed the release filter and debouncer.
func (l *Listeners) applyKey(label string) {
	label = truncateLabel(label)
	l.reg.forEach(func(w *Widget) {
		w.update(func(s *State) {
			s.LastKey = label
			s.ShowLastKey = true
		}, RegionTop)
	})
}
