//go:build !tinygo

package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cc3000-go/config"
	"cc3000-go/drivers/cc3000"
	"cc3000-go/drivers/cc3000/sim"
	"cc3000-go/platform"
)

func newDevice(c config.Config, drv *sim.Driver) *cc3000.Device {
	res := platform.DefaultResources()
	res.Sleep = func(time.Duration) {}
	return cc3000.New(res, drv, c.Device())
}

func TestBoardTestPasses(t *testing.T) {
	c := config.Default()
	c.Network.SSID = "lab"
	var buf bytes.Buffer

	ok := runBoardTest(&out{w: &buf}, newDevice(c, sim.New()), c)

	assert.True(t, ok, buf.String())
	s := buf.String()
	assert.Contains(t, s, "Firmware version: 1.24")
	assert.Contains(t, s, "MAC address: 08:00:28:01:02:03")
	assert.Contains(t, s, `Connect to "lab" (wpa2) accepted`)
	assert.Contains(t, s, "[PASS]")
}

func TestBoardTestFailsOnBadInterruptPin(t *testing.T) {
	c := config.Default()
	c.Pins.Interrupt = 5
	var buf bytes.Buffer

	ok := runBoardTest(&out{w: &buf}, newDevice(c, sim.New()), c)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "[FAIL] configure: configure: unsupported_pin")
}

func TestBoardTestFailsOnDriverStatus(t *testing.T) {
	c := config.Default()
	drv := sim.New()
	drv.MACStatus = 3
	var buf bytes.Buffer

	ok := runBoardTest(&out{w: &buf}, newDevice(c, drv), c)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "[FAIL] MAC address: mac_address: driver_error: status 3")
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	setupLogging(&buf, "warn", "json")
	slog.Info("hidden")
	slog.Warn("shown", "k", 1)

	line := strings.TrimSpace(buf.String())
	assert.NotContains(t, line, "hidden")
	assert.Contains(t, line, `"msg":"shown"`)
	assert.Contains(t, line, `"k":1`)
}
