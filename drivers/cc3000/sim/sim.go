// Package sim is a stand-in for the CC3000 vendor host driver. It honours the
// cc3000.WLAN contract through the registered callbacks, which makes the
// device handle testable on a host without the chip.
package sim

import (
	"runtime"

	"cc3000-go/drivers/cc3000"
)

// Driver implements cc3000.WLAN.
type Driver struct {
	// Values reported by the read calls.
	Version [2]byte
	MAC     [6]byte
	// Non-zero statuses make the corresponding read fail.
	VersionStatus uint8
	MACStatus     uint8
	// Poll, if set, runs on every iteration of the ready wait in Start.
	Poll func()

	cb      cc3000.Callbacks
	inits   int
	starts  int
	irqs    int
	patches int
	events  []cc3000.Event
}

// New returns a driver reporting firmware 1.24 and a fixed MAC.
func New() *Driver {
	return &Driver{
		Version: [2]byte{1, 24},
		MAC:     [6]byte{0x08, 0x00, 0x28, 0x01, 0x02, 0x03},
	}
}

func (d *Driver) Init(cb cc3000.Callbacks) {
	d.cb = cb
	d.inits++
}

// Start powers the chip, waits for the active-low IRQ line, fetches any
// requested patches and reports the init event.
func (d *Driver) Start(patchReq uint16) {
	d.starts++
	d.cb.WritePin(cc3000.WLANEnable)
	for d.cb.ReadInterrupt() != 0 {
		if d.Poll != nil {
			d.Poll()
		}
		runtime.Gosched()
	}
	d.cb.EnableInterrupt()
	if patchReq&cc3000.PatchDriver != 0 && d.cb.DriverPatch() != nil {
		d.patches++
	}
	if patchReq&cc3000.PatchFirmware != 0 && d.cb.FirmwarePatch() != nil {
		d.patches++
	}
	if patchReq&cc3000.PatchBootLoader != 0 && d.cb.BootLoaderPatch() != nil {
		d.patches++
	}
	d.Emit(cc3000.EventInit, nil)
}

// Stop mirrors wlan_stop: interrupts off, chip disabled.
func (d *Driver) Stop() {
	d.cb.DisableInterrupt()
	d.cb.WritePin(cc3000.WLANDisable)
}

func (d *Driver) ReadSPVersion(buf []byte) uint8 {
	if d.VersionStatus != 0 {
		return d.VersionStatus
	}
	copy(buf, d.Version[:])
	return 0
}

func (d *Driver) GetMACAddress(buf []byte) uint8 {
	if d.MACStatus != 0 {
		return d.MACStatus
	}
	copy(buf, d.MAC[:])
	return 0
}

func (d *Driver) HandleInterrupt() { d.irqs++ }

// Emit delivers an unsolicited event through the async callback.
func (d *Driver) Emit(ev cc3000.Event, data []byte) {
	d.events = append(d.events, ev)
	if d.cb.AsyncEvent != nil {
		d.cb.AsyncEvent(uint16(ev), data)
	}
}

// Counters for assertions.
func (d *Driver) Inits() int                  { return d.inits }
func (d *Driver) Starts() int                 { return d.starts }
func (d *Driver) Interrupts() int             { return d.irqs }
func (d *Driver) Patches() int                { return d.patches }
func (d *Driver) Events() []cc3000.Event      { return append([]cc3000.Event(nil), d.events...) }
func (d *Driver) Callbacks() cc3000.Callbacks { return d.cb }
