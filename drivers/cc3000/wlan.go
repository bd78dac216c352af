package cc3000

// WLAN is the vendor host driver the handle delegates to. It owns the chip's
// SPI command protocol and event dispatch; this package only configures the
// hardware it runs on and hands it the callbacks below.
//
// Status results follow the vendor convention: 0 is success, anything else
// is a failure.
type WLAN interface {
	// Init registers the low-level callbacks. It must not touch the chip.
	Init(cb Callbacks)
	// Start asserts the enable line (through Callbacks.WritePin) and blocks
	// until the chip reports ready. There is no timeout.
	Start(patchReq uint16)
	// ReadSPVersion fills buf[0:2] with the service pack major and minor.
	ReadSPVersion(buf []byte) uint8
	// GetMACAddress fills buf[0:6] with the station MAC address.
	GetMACAddress(buf []byte) uint8
	// HandleInterrupt is the driver's IRQ-line handler, run on the falling
	// edge of the interrupt pin while interrupts are enabled.
	HandleInterrupt()
}

// Values passed to Callbacks.WritePin.
const (
	WLANDisable uint8 = 0
	WLANEnable  uint8 = 1
)

// Patch requests accepted by WLAN.Start.
const (
	PatchNone       uint16 = 0
	PatchDriver     uint16 = 1
	PatchFirmware   uint16 = 2
	PatchBootLoader uint16 = 4
)

// Callbacks is the fixed set of hooks the vendor driver calls back into for
// hardware access it cannot perform itself. A Device builds its bundle once
// and never changes it.
type Callbacks struct {
	// AsyncEvent receives unsolicited events and their payload.
	AsyncEvent func(event uint16, data []byte)
	// Patch providers. A nil slice means no patch is available.
	FirmwarePatch   func() []byte
	DriverPatch     func() []byte
	BootLoaderPatch func() []byte
	// ReadInterrupt returns the interrupt pin level, 0 or 1. The line is
	// active low.
	ReadInterrupt    func() int
	EnableInterrupt  func()
	DisableInterrupt func()
	// WritePin drives the enable line: WLANEnable or WLANDisable.
	WritePin func(val uint8)
}
