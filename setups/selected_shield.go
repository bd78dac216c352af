//go:build !cc3000_breakout

package setups

// Selected is the wiring chosen at build time.
var Selected = Shield
