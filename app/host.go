//go:build !tinygo

package app

import (
	"time"

	"niceview/event"
	"niceview/hal"
)

// batteryDrainFrames paces the simulated discharge (one percent roughly
// every ten seconds at 60 TPS).
const batteryDrainFrames = 600

// HostConfig configures the desktop demo.
type HostConfig struct {
	Config
	Rotated  bool
	Scale    int
	Headless bool
	// Ticks stops a headless run after N frames; zero runs forever.
	Ticks uint64
}

// RunHost runs the desktop demo: a window showing the status strip, fed by
// real keystrokes and Ctrl-chord simulation controls. It blocks until the
// window closes (or the tick budget runs out in headless mode).
func RunHost(cfg HostConfig) error {
	dev := hal.New(hal.HostConfig{Rotated: cfg.Rotated, Halves: cfg.Halves})
	sys := New(dev, cfg.Config)
	dev.Logger().WriteLineString("niceview: status widgets attached")

	var frame uint64
	step := func() error {
		pumpKeyboard(dev, sys)

		frame++
		if frame%batteryDrainFrames == 0 {
			sys.Queue.Push(event.BatteryStateChanged{StateOfCharge: dev.Sim().Drain()})
		}

		sys.Dispatch()
		return nil
	}

	if cfg.Headless {
		for i := uint64(0); cfg.Ticks == 0 || i < cfg.Ticks; i++ {
			if err := step(); err != nil {
				return err
			}
			time.Sleep(time.Second / 60)
		}
		return nil
	}
	return hal.RunWindow(dev, cfg.Scale, step)
}

func pumpKeyboard(dev *hal.HostDevice, sys *System) {
	kbd := dev.Keyboard()
	for {
		select {
		case kp := <-kbd.Keys():
			sys.Queue.Push(event.KeyStateChanged{
				UsagePage:         kp.UsagePage,
				Keycode:           kp.Keycode,
				ExplicitModifiers: kp.Modifiers,
				Pressed:           kp.Pressed,
			})
		case c := <-kbd.Controls():
			applyControl(dev.Sim(), sys, c)
		default:
			return
		}
	}
}

// applyControl mutates the simulated device state, then publishes the same
// events real firmware would emit for that change.
func applyControl(sim *hal.Sim, sys *System, c hal.Control) {
	switch c {
	case hal.ControlProfile1, hal.ControlProfile2, hal.ControlProfile3,
		hal.ControlProfile4, hal.ControlProfile5:
		index := sim.SelectProfile(int(c - hal.ControlProfile1))
		sys.Queue.Push(event.BLEProfileChanged{Index: index})
	case hal.ControlToggleTransport:
		ep := sim.ToggleTransport()
		sys.Queue.Push(event.EndpointChanged{Endpoint: ep})
	case hal.ControlTogglePower:
		state := event.USBConnNone
		if sim.TogglePowered() {
			state = event.USBConnHID
		}
		sys.Queue.Push(event.USBConnStateChanged{State: state})
		sys.Queue.Push(event.EndpointChanged{Endpoint: sim.Selected()})
	case hal.ControlToggleConnected:
		sim.ToggleConnected()
		sys.Queue.Push(event.BLEProfileChanged{Index: sim.ActiveProfileIndex()})
	case hal.ControlToggleBonded:
		sim.ToggleBonded()
		sys.Queue.Push(event.BLEProfileChanged{Index: sim.ActiveProfileIndex()})
	case hal.ControlCycleLayer:
		layer := sim.CycleLayer()
		sys.Queue.Push(event.LayerStateChanged{Layer: layer, Active: true})
	case hal.ControlDrainBattery:
		sys.Queue.Push(event.BatteryStateChanged{StateOfCharge: sim.Drain()})
	}
}
