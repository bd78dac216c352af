//go:build avr && atmega328p

package platform

import (
	"device/avr"
	"machine"
	"runtime/interrupt"
	"time"

	"cc3000-go/hal"
)

func init() {
	// Vectors are bound at compile time; they forward to the line table.
	interrupt.New(avr.IRQ_INT0, func(interrupt.Interrupt) { DispatchLine(INT0) })
	interrupt.New(avr.IRQ_INT1, func(interrupt.Interrupt) { DispatchLine(INT1) })
}

// DefaultResources returns the hardware SPI port and Arduino-numbered pins.
func DefaultResources() Resources {
	return Resources{
		Pins:  avrPinFactory{},
		SPI:   &avrSPI{bus: machine.SPI0},
		Sleep: time.Sleep,
	}
}

// ---- SPI ----

type machineSPI interface {
	Configure(config machine.SPIConfig) error
	Tx(w, r []byte) error
	Transfer(b byte) (byte, error)
}

type avrSPI struct{ bus machineSPI }

func (s *avrSPI) Configure(cfg hal.SPIConfig) error {
	return s.bus.Configure(machine.SPIConfig{
		Frequency: cfg.Frequency,
		LSBFirst:  cfg.LSBFirst,
		Mode:      cfg.Mode,
	})
}

func (s *avrSPI) Tx(w, r []byte) error          { return s.bus.Tx(w, r) }
func (s *avrSPI) Transfer(b byte) (byte, error) { return s.bus.Transfer(b) }

// ---- GPIO (includes INT0/INT1) ----

type avrPinFactory struct{}

func (avrPinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	p, ok := arduinoPin(n)
	if !ok {
		return nil, false
	}
	return &avrPin{p: p, n: n}, true
}

// arduinoPin maps Arduino digital numbers onto the ATmega ports.
func arduinoPin(n int) (machine.Pin, bool) {
	switch {
	case n < 0 || n > maxArduinoPin:
		return machine.NoPin, false
	case n < 8:
		return machine.PD0 + machine.Pin(n), true
	case n < 14:
		return machine.PB0 + machine.Pin(n-8), true
	default:
		return machine.PC0 + machine.Pin(n-14), true
	}
}

type avrPin struct {
	p machine.Pin
	n int
}

func (a *avrPin) ConfigureInput(pull hal.Pull) error {
	mode := machine.PinInput
	if pull == hal.PullUp {
		mode = machine.PinInputPullup
	}
	a.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (a *avrPin) ConfigureOutput(initial bool) error {
	a.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	a.p.Set(initial)
	return nil
}

func (a *avrPin) Set(level bool) { a.p.Set(level) }
func (a *avrPin) Get() bool      { return a.p.Get() }
func (a *avrPin) Number() int    { return a.n }

// SetIRQ arms the external interrupt behind this pin. Pins without an
// INTn line fail with errcode.UnsupportedPin.
func (a *avrPin) SetIRQ(edge hal.Edge, handler func()) error {
	line, err := InterruptLine(Current(), uint8(a.n))
	if err != nil {
		return err
	}
	if err := RegisterLine(line, handler); err != nil {
		return err
	}
	isc0, isc1, mask := senseBits(line)
	avr.EIMSK.ClearBits(mask)
	avr.EICRA.ClearBits(isc0 | isc1)
	switch edge {
	case hal.EdgeRising:
		avr.EICRA.SetBits(isc0 | isc1)
	case hal.EdgeFalling:
		avr.EICRA.SetBits(isc1)
	case hal.EdgeBoth:
		avr.EICRA.SetBits(isc0)
	default:
		ClearLine(line)
		return nil
	}
	avr.EIFR.SetBits(mask)
	avr.EIMSK.SetBits(mask)
	return nil
}

func (a *avrPin) ClearIRQ() error {
	line, err := InterruptLine(Current(), uint8(a.n))
	if err != nil {
		return err
	}
	_, _, mask := senseBits(line)
	avr.EIMSK.ClearBits(mask)
	ClearLine(line)
	return nil
}

func senseBits(line uint8) (isc0, isc1, mask uint8) {
	if line == INT1 {
		return avr.EICRA_ISC10, avr.EICRA_ISC11, avr.EIMSK_INT1
	}
	return avr.EICRA_ISC00, avr.EICRA_ISC01, avr.EIMSK_INT0
}
