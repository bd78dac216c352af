// Package setups holds the board wirings the CC3000 handle ships with.
// The build tag picks one as Selected.
package setups

// Wiring is the pin triple one board connects the CC3000 to.
type Wiring struct {
	Name          string
	InterruptPin  uint8
	EnablePin     uint8
	ChipSelectPin uint8
}

// SparkFun CC3000 shield: IRQ on D2 (INT0), VBAT_EN on D7, CS on D10.
var Shield = Wiring{Name: "sparkfun_cc3000_shield", InterruptPin: 2, EnablePin: 7, ChipSelectPin: 10}

// SparkFun CC3000 breakout, wired as in the hookup guide.
var Breakout = Wiring{Name: "sparkfun_cc3000_breakout", InterruptPin: 2, EnablePin: 7, ChipSelectPin: 10}

// ByName looks a wiring up by its Name.
func ByName(name string) (Wiring, bool) {
	for _, w := range []Wiring{Shield, Breakout} {
		if w.Name == name {
			return w, true
		}
	}
	return Wiring{}, false
}
