//go:build cc3000_breakout

package setups

var Selected = Breakout
