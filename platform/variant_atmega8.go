//go:build atmega8

package platform

const current = ATmega8
