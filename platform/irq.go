package platform

import (
	"strconv"

	"cc3000-go/errcode"
)

// The AVR external interrupt vectors are fixed, context-free functions, so
// they cannot close over a handle. Handlers are instead registered here per
// interrupt line, and the vectors dispatch through this table. This is the
// only process-wide mutable state in the driver.
var lineHandlers [NumLines]func()

// RegisterLine installs h as the handler for line, replacing any previous one.
func RegisterLine(line uint8, h func()) error {
	if int(line) >= NumLines {
		return errcode.New(errcode.UnsupportedPin, "irq", "line "+strconv.Itoa(int(line)))
	}
	lineHandlers[line] = h
	return nil
}

// ClearLine removes the handler for line.
func ClearLine(line uint8) {
	if int(line) < NumLines {
		lineHandlers[line] = nil
	}
}

// DispatchLine runs the handler for line, if any. Called from interrupt context.
func DispatchLine(line uint8) {
	if int(line) >= NumLines {
		return
	}
	if h := lineHandlers[line]; h != nil {
		h()
	}
}
