//go:build atmega328p

package platform

const current = ATmega328P
