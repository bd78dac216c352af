// Package cc3000 provides a device handle for the TI CC3000 Wi-Fi module as
// wired on the SparkFun shield and breakout boards.
//
// The handle configures the pins and SPI bus, then hands control to the
// vendor host driver (see WLAN) which speaks the chip's command protocol:
//
//	d := cc3000.New(platform.DefaultResources(), wlan, cc3000.Config{
//		InterruptPin:  2,
//		EnablePin:     7,
//		ChipSelectPin: 10,
//	})
//	if err := d.Configure(); err != nil { ... }
//	ver, err := d.FirmwareVersion()
//
// Configure blocks until the chip reports ready. Nothing here is safe for
// concurrent use; the pins and bus are assumed to belong to this handle for
// the life of the program.
package cc3000

import (
	"strconv"
	"time"

	"tinygo.org/x/drivers"

	"cc3000-go/errcode"
	"cc3000-go/hal"
	"cc3000-go/internal/diag"
	"cc3000-go/platform"
)

// Bus settings required by the CC3000: mode 1 (CPOL=0, CPHA=1), MSB first,
// clock at half the CPU clock.
const (
	SPIMode         = 1
	SPIClockDivider = 2
)

// DefaultSettleDelay is the pause between driver init and start. Starting
// sooner sometimes leaves the chip stuck.
const DefaultSettleDelay = 100 * time.Millisecond

// Config holds the wiring and start-up parameters of one handle.
type Config struct {
	InterruptPin  uint8
	EnablePin     uint8
	ChipSelectPin uint8

	// Variant is the microcontroller the handle runs on. Defaults to
	// platform.Current().
	Variant platform.Variant
	// SettleDelay defaults to DefaultSettleDelay.
	SettleDelay time.Duration
	// OnEvent, if set, receives every unsolicited event from the chip.
	OnEvent func(ev Event, data []byte)
}

// Device is a handle to one CC3000.
type Device struct {
	res  platform.Resources
	wlan WLAN
	cfg  Config
	cb   Callbacks

	irq hal.IRQPin
	en  hal.GPIOPin
	cs  hal.GPIOPin

	ready     bool
	connected bool
	hasIP     bool
}

// New creates a handle. It performs no I/O.
func New(res platform.Resources, wlan WLAN, cfg Config) *Device {
	if cfg.Variant == platform.VariantUnknown {
		cfg.Variant = platform.Current()
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if res.Pins == nil || res.SPI == nil {
		def := platform.DefaultResources()
		if res.Pins == nil {
			res.Pins = def.Pins
		}
		if res.SPI == nil {
			res.SPI = def.SPI
		}
	}
	if res.Sleep == nil {
		res.Sleep = time.Sleep
	}
	d := &Device{res: res, wlan: wlan, cfg: cfg}
	d.cb = d.callbacks()
	return d
}

// Configure brings the chip up: it checks the platform, interrupt pin and
// wiring, sets pin directions, configures the SPI bus, initialises the vendor driver
// and starts the chip. It returns nil at once if the handle is already ready.
//
// Failures leave whatever was configured so far in place.
func (d *Device) Configure() error {
	diag.Println("initializing")
	if d.ready {
		return nil
	}

	if err := platform.Check(d.cfg.Variant); err != nil {
		diag.Println("microcontroller not supported", "variant", d.cfg.Variant.String())
		return &errcode.E{C: errcode.UnsupportedPlatform, Op: "configure", Msg: d.cfg.Variant.String(), Err: err}
	}
	if _, err := platform.InterruptLine(d.cfg.Variant, d.cfg.InterruptPin); err != nil {
		diag.Println("interrupt line not attached to pin 2 or 3", "pin", d.cfg.InterruptPin)
		return &errcode.E{C: errcode.UnsupportedPin, Op: "configure", Msg: "interrupt pin must be 2 or 3", Err: err}
	}
	if err := d.checkWiring(); err != nil {
		return err
	}

	if err := d.configurePins(); err != nil {
		return err
	}
	if err := d.res.SPI.Configure(hal.SPIConfig{
		Frequency: platform.CPUFrequency(d.cfg.Variant) / SPIClockDivider,
		Mode:      SPIMode,
		LSBFirst:  false,
	}); err != nil {
		return &errcode.E{C: errcode.Error, Op: "configure", Msg: "spi", Err: err}
	}

	d.wlan.Init(d.cb)
	d.res.Sleep(d.cfg.SettleDelay)
	d.wlan.Start(PatchNone)

	d.ready = true
	diag.Println("ready")
	return nil
}

// checkWiring runs before any pin is touched.
func (d *Device) checkWiring() error {
	c := d.cfg
	if c.InterruptPin == c.EnablePin || c.InterruptPin == c.ChipSelectPin || c.EnablePin == c.ChipSelectPin {
		return errcode.New(errcode.InvalidConfig, "configure", "interrupt, enable and chip select pins must differ")
	}
	if d.res.Pins == nil || d.res.SPI == nil {
		return errcode.New(errcode.InvalidConfig, "configure", "no pins or spi bus for this platform")
	}
	return nil
}

func (d *Device) configurePins() error {
	irq, err := d.pin(d.cfg.InterruptPin)
	if err != nil {
		return err
	}
	ip, ok := irq.(hal.IRQPin)
	if !ok {
		return errcode.New(errcode.UnsupportedPin, "configure", "interrupt pin has no IRQ support")
	}
	en, err := d.pin(d.cfg.EnablePin)
	if err != nil {
		return err
	}
	cs, err := d.pin(d.cfg.ChipSelectPin)
	if err != nil {
		return err
	}

	// Chip held in reset and deselected until the driver starts it.
	if err := ip.ConfigureInput(hal.PullNone); err != nil {
		return err
	}
	if err := en.ConfigureOutput(false); err != nil {
		return err
	}
	if err := cs.ConfigureOutput(false); err != nil {
		return err
	}
	d.irq, d.en, d.cs = ip, en, cs
	return nil
}

func (d *Device) pin(n uint8) (hal.GPIOPin, error) {
	p, ok := d.res.Pins.ByNumber(int(n))
	if !ok {
		return nil, errcode.New(errcode.UnknownPin, "configure", "pin "+strconv.Itoa(int(n)))
	}
	return p, nil
}

// Ready reports whether Configure has completed. It never reverts.
func (d *Device) Ready() bool { return d.ready }

// Pins returns the handle's configuration.
func (d *Device) Pins() Config { return d.cfg }

// Bus returns the SPI bus for the vendor driver's transport. Pair it with
// SelectChip.
func (d *Device) Bus() drivers.SPI { return d.res.SPI }
