package status

import "sync"

// Registry is the set of widgets a status update fans out to, one entry per
// active display (both halves of a split keyboard, for example).
//
// It replaces the ambient global widget list of older firmware: listeners
// receive the registry explicitly, so lifetime and test isolation are under
// the caller's control. Fan-out over an empty registry is a no-op.
type Registry struct {
	mu      sync.Mutex
	widgets []*Widget
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers w. Adding the same widget twice is a no-op.
func (g *Registry) Add(w *Widget) {
	if w == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, have := range g.widgets {
		if have == w {
			return
		}
	}
	g.widgets = append(g.widgets, w)
}

// Remove unregisters w.
func (g *Registry) Remove(w *Widget) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, have := range g.widgets {
		if have == w {
			g.widgets = append(g.widgets[:i], g.widgets[i+1:]...)
			return
		}
	}
}

// Clear unregisters every widget. Used at shutdown so a re-attached listener
// set starts from an empty fan-out list.
func (g *Registry) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.widgets = g.widgets[:0]
}

// Len reports the number of registered widgets.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.widgets)
}

// forEach calls fn for every registered widget. The widget set is
// snapshotted first so fn may add or remove widgets.
func (g *Registry) forEach(fn func(*Widget)) {
	g.mu.Lock()
	ws := make([]*Widget, len(g.widgets))
	copy(ws, g.widgets)
	g.mu.Unlock()

	for _, w := range ws {
		fn(w)
	}
}
