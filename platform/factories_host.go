//go:build !avr

package platform

import (
	"sync"
	"time"

	"cc3000-go/hal"
)

// DefaultResources returns inert host fakes so the driver can run under go test
// and on a workstation.
func DefaultResources() Resources {
	return Resources{
		Pins:  NewHostPinFactory(),
		SPI:   &FakeSPI{},
		Sleep: time.Sleep,
	}
}

// ----------------------------- SPI (host) ------------------------------------

// FakeSPI implements hal.SPIBus and records what the driver does with it.
type FakeSPI struct {
	mu      sync.Mutex
	configs []hal.SPIConfig
	written []byte
}

func (s *FakeSPI) Configure(cfg hal.SPIConfig) error {
	s.mu.Lock()
	s.configs = append(s.configs, cfg)
	s.mu.Unlock()
	return nil
}

// Tx records w and fills r with the idle bus level (0xFF).
func (s *FakeSPI) Tx(w, r []byte) error {
	s.mu.Lock()
	s.written = append(s.written, w...)
	s.mu.Unlock()
	for i := range r {
		r[i] = 0xFF
	}
	return nil
}

func (s *FakeSPI) Transfer(b byte) (byte, error) {
	s.mu.Lock()
	s.written = append(s.written, b)
	s.mu.Unlock()
	return 0xFF, nil
}

// Configs returns every configuration applied so far.
func (s *FakeSPI) Configs() []hal.SPIConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]hal.SPIConfig(nil), s.configs...)
}

// Written returns every byte clocked out so far.
func (s *FakeSPI) Written() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.written...)
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements hal.IRQPin for host-side tests.
type FakePin struct {
	mu         sync.RWMutex
	number     int
	level      bool
	modeOut    bool
	configured int
	irqEdge    hal.Edge
	irqFunc    func()
	writes     []bool
}

func (p *FakePin) ConfigureInput(_ hal.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.configured++
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.configured++
	p.writes = append(p.writes, initial)
	p.mu.Unlock()
	return nil
}

// Set changes the level and runs the IRQ handler when the edge matches.
// The handler runs outside the lock, as an ISR would.
func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	if p.modeOut {
		p.writes = append(p.writes, level)
	}
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) SetIRQ(edge hal.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = hal.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

// IsOutput reports the last configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// Configured counts ConfigureInput/ConfigureOutput calls.
func (p *FakePin) Configured() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.configured
}

// Writes returns the levels driven while the pin was an output.
func (p *FakePin) Writes() []bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]bool(nil), p.writes...)
}

// IRQEdge returns the armed edge, EdgeNone when disarmed.
func (p *FakePin) IRQEdge() hal.Edge {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.irqEdge
}

func edgeFrom(old, new bool) hal.Edge {
	switch {
	case !old && new:
		return hal.EdgeRising
	case old && !new:
		return hal.EdgeFalling
	default:
		return hal.EdgeNone
	}
}

func irqWanted(cfg, seen hal.Edge) bool {
	if seen == hal.EdgeNone {
		return false
	}
	switch cfg {
	case hal.EdgeBoth:
		return true
	default:
		return cfg == seen
	}
}

// HostPinFactory returns stable *FakePin instances per number, limited to the
// Arduino digital range D0..D19.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func NewHostPinFactory() *HostPinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

func (f *HostPinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	p, ok := f.Pin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

// Pin exposes the underlying *FakePin for tests (e.g. to drive IRQ edges).
func (f *HostPinFactory) Pin(n int) (*FakePin, bool) {
	if n < 0 || n > maxArduinoPin {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}
