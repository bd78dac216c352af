//go:build atmega168

package platform

const current = ATmega168
