//go:build !tinygo

package hal

import "sync"

// Sim holds the fake keyboard state the host device reports. All query
// interfaces of Device are answered from here; the demo mutates it through
// the exported methods and publishes the matching events itself.
type Sim struct {
	mu        sync.Mutex
	soc       uint8
	powered   bool
	transport Transport
	profile   int
	connected [ProfileCount]bool
	bonded    [ProfileCount]bool
	layer     int
	labels    []string
}

func newSim() *Sim {
	s := &Sim{
		soc:       87,
		transport: TransportBLE,
		labels:    []string{"BASE", "LOWER", "RAISE", ""},
	}
	s.bonded[0] = true
	s.connected[0] = true
	return s
}

func (s *Sim) StateOfCharge() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.soc
}

func (s *Sim) Powered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.powered
}

func (s *Sim) ActiveProfileIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Sim) ActiveProfileConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected[s.profile]
}

func (s *Sim) ActiveProfileOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.bonded[s.profile]
}

func (s *Sim) Selected() Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Endpoint{Transport: s.transport}
}

func (s *Sim) HighestActiveLayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layer
}

func (s *Sim) LayerLabel(index int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.labels) {
		return ""
	}
	return s.labels[index]
}

// Drain lowers the charge by one percent, snapping back to full when it
// runs out, and returns the new level.
func (s *Sim) Drain() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.soc == 0 {
		s.soc = 100
	} else {
		s.soc--
	}
	return s.soc
}

// TogglePowered flips USB power presence and returns the new state.
func (s *Sim) TogglePowered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.powered = !s.powered
	if s.powered {
		s.transport = TransportUSB
	} else {
		s.transport = TransportBLE
	}
	return s.powered
}

// ToggleTransport switches between USB and BLE output and returns the new
// endpoint.
func (s *Sim) ToggleTransport() Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transport == TransportUSB {
		s.transport = TransportBLE
	} else {
		s.transport = TransportUSB
	}
	return Endpoint{Transport: s.transport}
}

// SelectProfile switches the active wireless profile slot.
func (s *Sim) SelectProfile(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < ProfileCount {
		s.profile = index
	}
	return s.profile
}

// ToggleConnected flips the connected flag of the active profile.
func (s *Sim) ToggleConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected[s.profile] = !s.connected[s.profile]
	return s.connected[s.profile]
}

// ToggleBonded flips the bond of the active profile.
func (s *Sim) ToggleBonded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bonded[s.profile] = !s.bonded[s.profile]
	return s.bonded[s.profile]
}

// CycleLayer advances to the next layer and returns its index.
func (s *Sim) CycleLayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layer = (s.layer + 1) % len(s.labels)
	return s.layer
}
