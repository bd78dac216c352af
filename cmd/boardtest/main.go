//go:build !tinygo

// Command boardtest brings a CC3000 handle up on the host against the
// simulated vendor driver and reports what a board test on hardware would:
// firmware version, MAC address and the connect result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cc3000-go/config"
	"cc3000-go/drivers/cc3000"
	"cc3000-go/drivers/cc3000/sim"
	"cc3000-go/platform"
)

// ---------- Output ----------

type out struct{ w io.Writer }

func (o *out) println(a ...any) { fmt.Fprintln(o.w, a...) }

func (o *out) printf(format string, a ...any) { fmt.Fprintf(o.w, format, a...) }

// ---------- Board test ----------

func runBoardTest(o *out, d *cc3000.Device, c config.Config) bool {
	o.printf("=== boardtest: %s on %s (irq=%d en=%d cs=%d) ===\n",
		c.Board, c.Platform, c.Pins.Interrupt, c.Pins.Enable, c.Pins.ChipSelect)

	if err := d.Configure(); err != nil {
		o.println("[FAIL] configure:", err)
		return false
	}
	o.println("CC3000 initialized")

	ver, err := d.FirmwareVersion()
	if err != nil {
		o.println("[FAIL] firmware version:", err)
		return false
	}
	o.println("Firmware version:", ver)

	mac, err := d.MACAddress()
	if err != nil {
		o.println("[FAIL] MAC address:", err)
		return false
	}
	o.println("MAC address:", mac)

	if c.Network.SSID != "" {
		sec, err := c.Security()
		if err != nil {
			o.println("[FAIL] security:", err)
			return false
		}
		if err := d.Connect(c.Network.SSID, c.Network.Password, sec); err != nil {
			o.println("[FAIL] connect:", err)
			return false
		}
		o.printf("Connect to %q (%s) accepted\n", c.Network.SSID, sec)
	}

	o.println("[PASS] board test complete")
	return true
}

// ---------- Main ----------

func main() {
	path := flag.String("config", "", "YAML board setup; built-in wiring when empty")
	flag.Parse()

	c := config.Default()
	if *path != "" {
		var err error
		if c, err = config.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, "boardtest:", err)
			os.Exit(2)
		}
	}
	setupLogging(os.Stderr, c.Logging.Level, c.Logging.Format)
	slog.Info("starting board test", "board", c.Board, "platform", c.Platform)

	d := cc3000.New(platform.DefaultResources(), sim.New(), c.Device())
	if !runBoardTest(&out{w: os.Stdout}, d, c) {
		os.Exit(1)
	}
}
