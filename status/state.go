package status

import "niceview/hal"

// MaxKeyLabel is the longest stored key label in bytes. Longer labels are
// truncated, never overflowed into neighboring state.
const MaxKeyLabel = 9

// State is the renderable snapshot of one status widget.
//
// Every field holds the most recent value of its kind seen so far; an event
// that touches one group of fields never resets the others.
type State struct {
	Battery  uint8
	Charging bool

	Endpoint               hal.Endpoint
	ActiveProfileIndex     int
	ActiveProfileConnected bool
	ActiveProfileBonded    bool

	LayerIndex int
	LayerLabel string // "" means unnamed; renderers fall back to "LAYER N"

	LastKey     string
	ShowLastKey bool
}

func truncateLabel(s string) string {
	if len(s) > MaxKeyLabel {
		return s[:MaxKeyLabel]
	}
	return s
}
