package cc3000

import (
	"cc3000-go/hal"
	"cc3000-go/internal/diag"
)

// callbacks binds the vendor driver hooks to this handle's pins.
func (d *Device) callbacks() Callbacks {
	return Callbacks{
		AsyncEvent:       d.asyncEvent,
		FirmwarePatch:    noPatch,
		DriverPatch:      noPatch,
		BootLoaderPatch:  noPatch,
		ReadInterrupt:    d.readInterrupt,
		EnableInterrupt:  d.enableInterrupt,
		DisableInterrupt: d.disableInterrupt,
		WritePin:         d.writeEnable,
	}
}

func (d *Device) asyncEvent(event uint16, data []byte) {
	diag.Println("event", "code", event, "name", Event(event).String())
	d.handleEvent(event, data)
}

// Patches are not shipped with the driver.
func noPatch() []byte { return nil }

func (d *Device) readInterrupt() int {
	if d.irq != nil && d.irq.Get() {
		return 1
	}
	return 0
}

func (d *Device) enableInterrupt() {
	if d.irq == nil {
		return
	}
	if err := d.irq.SetIRQ(hal.EdgeFalling, d.wlan.HandleInterrupt); err != nil {
		diag.Println("enable interrupt failed", "err", err)
	}
}

func (d *Device) disableInterrupt() {
	if d.irq == nil {
		return
	}
	if err := d.irq.ClearIRQ(); err != nil {
		diag.Println("disable interrupt failed", "err", err)
	}
}

func (d *Device) writeEnable(val uint8) {
	if d.en == nil {
		return
	}
	d.en.Set(val == WLANEnable)
}

// SelectChip drives chip select for the vendor driver's SPI transport.
// The line is active low.
func (d *Device) SelectChip(selected bool) {
	if d.cs != nil {
		d.cs.Set(!selected)
	}
}
