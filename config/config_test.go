//go:build !tinygo

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cc3000-go/drivers/cc3000"
	"cc3000-go/errcode"
	"cc3000-go/platform"
)

const fullSetup = `
Platform: atmega168
Pins:
  Interrupt: 3
  Enable: 5
  ChipSelect: 10
SettleDelay: 250ms
Network:
  SSID: "lab"
  Password: "secret"
  Security: wpa
Logging:
  Level: DEBUG
  Format: json
`

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	d := c.Device()
	assert.Equal(t, uint8(2), d.InterruptPin)
	assert.Equal(t, uint8(7), d.EnablePin)
	assert.Equal(t, uint8(10), d.ChipSelectPin)
	assert.Equal(t, platform.ATmega328P, d.Variant)
	assert.Equal(t, cc3000.DefaultSettleDelay, d.SettleDelay)
}

func TestParseFullSetup(t *testing.T) {
	c, err := Parse([]byte(fullSetup))
	require.NoError(t, err)

	d := c.Device()
	assert.Equal(t, cc3000.Config{
		InterruptPin:  3,
		EnablePin:     5,
		ChipSelectPin: 10,
		Variant:       platform.ATmega168,
		SettleDelay:   250 * time.Millisecond,
	}, d)

	sec, err := c.Security()
	require.NoError(t, err)
	assert.Equal(t, cc3000.SecurityWPA, sec)
	assert.Equal(t, "lab", c.Network.SSID)
	assert.Equal(t, "json", c.Logging.Format)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	c, err := Parse([]byte("Network:\n  SSID: home\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Pins, c.Pins)
	assert.Equal(t, "home", c.Network.SSID)
	assert.Equal(t, cc3000.DefaultSettleDelay, c.SettleDelay)
}

func TestParseBoard(t *testing.T) {
	c, err := Parse([]byte("Board: sparkfun_cc3000_breakout\n"))
	require.NoError(t, err)
	assert.Equal(t, "sparkfun_cc3000_breakout", c.Board)
	assert.Equal(t, uint8(2), c.Pins.Interrupt)

	_, err = Parse([]byte("Board: uno_r4\n"))
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err))
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"platform": "Platform: esp32\n",
		"pins":     "Pins:\n  Interrupt: 2\n  Enable: 2\n  ChipSelect: 10\n",
		"security": "Network:\n  Security: wpa3\n",
		"delay":    "SettleDelay: -1s\n",
	}
	for name, in := range cases {
		_, err := Parse([]byte(in))
		assert.Equal(t, errcode.InvalidConfig, errcode.Of(err), name)
	}

	_, err := Parse([]byte("Pins: [1, 2"))
	assert.Error(t, err)
}

func TestSecurityDefaultsToOpen(t *testing.T) {
	c := Default()
	c.Network.Security = ""
	sec, err := c.Security()
	require.NoError(t, err)
	assert.Equal(t, cc3000.SecurityOpen, sec)
}

func TestLoadAndMarshalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cc3000.yml")
	require.NoError(t, os.WriteFile(path, []byte(fullSetup), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	out, err := Marshal(c)
	require.NoError(t, err)
	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, c, again)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
