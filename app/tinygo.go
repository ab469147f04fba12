//go:build tinygo

package app

import (
	"time"

	"niceview/hal"
)

// Run initializes the board device and parks. The stub device queries seed
// the widget once; a firmware port replaces the idle loop with its event
// feed pushing into System.Queue and calling Dispatch.
func Run(cfg Config) error {
	dev, err := hal.New()
	if err != nil {
		return err
	}
	dev.Logger().WriteLineString("niceview: display up")

	sys := New(dev, cfg)
	for {
		time.Sleep(100 * time.Millisecond)
		sys.Dispatch()
	}
}
