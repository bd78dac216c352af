// Package platform describes the microcontrollers the CC3000 handle can run on
// and supplies the pins, SPI bus and delay primitive for the current build.
package platform

import (
	"strconv"
	"strings"
	"time"

	"cc3000-go/errcode"
	"cc3000-go/hal"
)

// Variant identifies a microcontroller the driver was built for.
type Variant uint8

const (
	VariantUnknown Variant = iota
	ATmega8
	ATmega168
	ATmega328
	ATmega328P
)

var variantNames = [...]string{
	VariantUnknown: "unknown",
	ATmega8:        "atmega8",
	ATmega168:      "atmega168",
	ATmega328:      "atmega328",
	ATmega328P:     "atmega328p",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return variantNames[VariantUnknown]
}

// ParseVariant accepts the names returned by String, case-insensitively.
func ParseVariant(s string) (Variant, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range variantNames {
		if i != int(VariantUnknown) && n == s {
			return Variant(i), true
		}
	}
	return VariantUnknown, false
}

// All of these run at 16 MHz on the Arduino boards the shield targets.
const cpuHz = 16_000_000

// Arduino numbering: D0..D13, then A0..A5 as D14..D19.
const maxArduinoPin = 19

// Supported reports whether v is one of the variants the CC3000 wiring
// (INT0/INT1 on pins 2/3) is known for.
func Supported(v Variant) bool {
	switch v {
	case ATmega8, ATmega168, ATmega328, ATmega328P:
		return true
	default:
		return false
	}
}

// Check fails with errcode.UnsupportedPlatform for variants outside the set.
func Check(v Variant) error {
	if !Supported(v) {
		return errcode.New(errcode.UnsupportedPlatform, "platform", v.String())
	}
	return nil
}

// CPUFrequency returns the core clock in Hz, or 0 for unsupported variants.
func CPUFrequency(v Variant) uint32 {
	if !Supported(v) {
		return 0
	}
	return cpuHz
}

// External interrupt lines on the supported parts.
const (
	INT0 uint8 = 0
	INT1 uint8 = 1

	NumLines = 2
)

// InterruptLine maps a digital pin to its external interrupt line. Only
// pin 2 (INT0) and pin 3 (INT1) carry one.
func InterruptLine(v Variant, pin uint8) (uint8, error) {
	if err := Check(v); err != nil {
		return 0, err
	}
	switch pin {
	case 2:
		return INT0, nil
	case 3:
		return INT1, nil
	default:
		return 0, errcode.New(errcode.UnsupportedPin, "platform", "pin "+strconv.Itoa(int(pin))+" has no interrupt line")
	}
}

// Resources is the hardware a handle borrows. None of it is owned by the
// handle; the bus and pins are process-wide.
type Resources struct {
	Pins  hal.PinFactory
	SPI   hal.SPIBus
	Sleep func(time.Duration)
}
