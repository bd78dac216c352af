// Package hal holds the hardware abstractions the CC3000 handle consumes:
// digital pins, interrupt-capable pins and a configurable SPI bus.
package hal

import (
	"tinygo.org/x/drivers"
)

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// IRQPin extends GPIOPin with interrupts.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies GPIO pins by platform pin number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- SPI ----

// SPIConfig mirrors the Arduino-style bus setup: clock polarity/phase mode,
// bit order and clock rate.
type SPIConfig struct {
	Frequency uint32
	Mode      uint8
	LSBFirst  bool
}

// SPIBus is a tinygo drivers.SPI that can be (re)configured in place.
type SPIBus interface {
	drivers.SPI
	Configure(cfg SPIConfig) error
}
