//go:build !(atmega8 || atmega168 || atmega328 || atmega328p)

package platform

const current = VariantUnknown
