package event

import "sync"

// Handler consumes a delivered event. A nil event asks the handler to seed
// itself from current device state.
type Handler func(Event)

// Bus fans events out to subscribed handlers.
//
// Delivery is synchronous and serialized: Publish runs every matching
// handler to completion before returning, and concurrent publishers are
// queued on the dispatch lock. Handlers therefore never observe a widget
// state mid-update.
type Bus struct {
	mu   sync.Mutex // guards subs
	subs [kindMax + 1][]Handler

	dispatchMu sync.Mutex
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every listed kind. Registration order is
// delivery order within a kind.
func (b *Bus) Subscribe(h Handler, kinds ...Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range kinds {
		if k == 0 || k > kindMax {
			continue
		}
		b.subs[k] = append(b.subs[k], h)
	}
}

// Publish delivers ev to every handler subscribed to its kind. A nil event
// is ignored; an empty subscription list is a no-op.
func (b *Bus) Publish(ev Event) {
	if ev == nil {
		return
	}
	k := ev.Kind()
	if k == 0 || k > kindMax {
		return
	}

	b.mu.Lock()
	hs := b.subs[k]
	b.mu.Unlock()

	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()
	for _, h := range hs {
		h(ev)
	}
}
