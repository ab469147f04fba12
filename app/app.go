// Package app assembles the status pipeline: event bus, widget registry,
// listeners and per-region renderers over a device.
package app

import (
	"niceview/event"
	"niceview/hal"
	"niceview/render"
	"niceview/status"
)

type Config struct {
	// Halves is the number of display instances sharing the screen,
	// stacked vertically. Zero means one.
	Halves int
	// IntervalMS overrides the keypress redraw interval; zero keeps the
	// default.
	IntervalMS uint32
}

// System is an assembled status pipeline. Producers push events into Queue
// from any goroutine; Dispatch delivers them on the caller's thread.
type System struct {
	Bus      *event.Bus
	Queue    *event.Queue
	Registry *status.Registry
}

// New builds one widget per display half, registers them, and attaches the
// status listeners to a fresh bus. Widgets render immediately with seeded
// device state.
func New(dev hal.Device, cfg Config) *System {
	halves := cfg.Halves
	if halves < 1 {
		halves = 1
	}
	interval := cfg.IntervalMS
	if interval == 0 {
		interval = status.RenderIntervalMS
	}

	bus := event.NewBus()
	reg := status.NewRegistry()

	scr := dev.Screen()
	for i := 0; i < halves; i++ {
		comp := render.NewComposeAt(scr.Displayer(), scr.Rotated(), int16(i)*render.CanvasSize)
		reg.Add(status.NewWidget(comp))
	}

	status.Attach(bus, reg, dev, status.NewDebouncer(interval))

	return &System{Bus: bus, Queue: event.NewQueue(), Registry: reg}
}

// Dispatch drains queued events onto the bus and returns the number
// delivered.
func (s *System) Dispatch() int {
	return s.Queue.Drain(s.Bus)
}
