// Package status aggregates asynchronous keyboard-state events into
// renderable snapshots and fans them out to every active display widget.
package status

// Region identifies one of the three fixed display areas. Each region is
// redrawn independently, only when its own state fields change.
type Region uint8

const (
	RegionTop Region = iota
	RegionMiddle
	RegionBottom

	RegionCount = 3
)

func (r Region) String() string {
	switch r {
	case RegionTop:
		return "top"
	case RegionMiddle:
		return "middle"
	case RegionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
