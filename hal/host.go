//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	hostScreenW = 160
	hostScreenH = 68
)

// HostConfig configures the desktop simulation.
type HostConfig struct {
	// Rotated selects the flipped panel layout.
	Rotated bool
	// Halves is the number of simulated display instances stacked in the
	// window (a split keyboard has two). Zero means one.
	Halves int
}

// HostDevice is the desktop stand-in for a keyboard: simulated battery,
// endpoint, profile and layer state, an in-memory screen, and a real
// keyboard captured through the window.
type HostDevice struct {
	logger *hostLogger
	clock  *hostClock
	sim    *Sim
	screen *hostScreen
	kbd    *HostKeyboard
}

// New returns a host device implementation.
func New(cfg HostConfig) *HostDevice {
	halves := cfg.Halves
	if halves < 1 {
		halves = 1
	}
	return &HostDevice{
		logger: &hostLogger{w: os.Stdout},
		clock:  newHostClock(),
		sim:    newSim(),
		screen: newHostScreen(hostScreenW, int16(halves)*hostScreenH, cfg.Rotated),
		kbd:    newHostKeyboard(),
	}
}

func (d *HostDevice) Logger() Logger       { return d.logger }
func (d *HostDevice) Clock() Clock         { return d.clock }
func (d *HostDevice) Battery() Battery     { return d.sim }
func (d *HostDevice) Power() Power         { return d.sim }
func (d *HostDevice) BLE() BLE             { return d.sim }
func (d *HostDevice) Endpoints() Endpoints { return d.sim }
func (d *HostDevice) Keymap() Keymap       { return d.sim }
func (d *HostDevice) Screen() Screen       { return d.screen }

// Sim exposes the mutable fake state for the demo to drive.
func (d *HostDevice) Sim() *Sim { return d.sim }

// Keyboard exposes the captured keyboard input streams.
func (d *HostDevice) Keyboard() *HostKeyboard { return d.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
