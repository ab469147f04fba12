package status

import "sync"

// Renderer turns a state snapshot into pixels for one region.
//
// Implementations receive a copy of the state and must not retain it across
// calls; the widget serializes Render invocations per update.
type Renderer interface {
	Render(r Region, st State)
}

// Widget owns the status state of one display instance.
type Widget struct {
	mu       sync.Mutex
	state    State
	renderer Renderer
}

// NewWidget returns a widget with zero-initialized state. The renderer may
// be nil, in which case updates mutate state without drawing.
func NewWidget(r Renderer) *Widget {
	return &Widget{renderer: r}
}

// Renderer returns the renderer the widget draws through, for composition
// into the host's display tree.
func (w *Widget) Renderer() Renderer { return w.renderer }

// State returns a copy of the current snapshot.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// update applies fn to the state under the lock, then redraws the listed
// regions from the resulting snapshot.
func (w *Widget) update(fn func(*State), regions ...Region) {
	w.mu.Lock()
	fn(&w.state)
	st := w.state
	w.mu.Unlock()

	if w.renderer == nil {
		return
	}
	for _, r := range regions {
		w.renderer.Render(r, st)
	}
}
