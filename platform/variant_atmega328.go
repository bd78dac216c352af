//go:build atmega328

package platform

const current = ATmega328
