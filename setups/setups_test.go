package setups

import "testing"

func TestByName(t *testing.T) {
	for _, w := range []Wiring{Shield, Breakout} {
		got, ok := ByName(w.Name)
		if !ok || got != w {
			t.Fatalf("ByName(%q) = %+v, %v", w.Name, got, ok)
		}
	}
	if _, ok := ByName("uno"); ok {
		t.Fatal("ByName(uno) found a wiring")
	}
}

func TestSelectedUsesInterruptCapablePin(t *testing.T) {
	if Selected.InterruptPin != 2 && Selected.InterruptPin != 3 {
		t.Fatalf("selected wiring %q has IRQ on pin %d", Selected.Name, Selected.InterruptPin)
	}
}
