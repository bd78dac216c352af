//go:build avr && !atmega328p

package platform

import "time"

// DefaultResources has no pins or SPI bus here: TinyGo's machine and device
// packages only describe the ATmega328P among the supported parts. Callers
// must supply their own, otherwise Configure fails with
// errcode.InvalidConfig.
func DefaultResources() Resources {
	return Resources{Sleep: time.Sleep}
}
