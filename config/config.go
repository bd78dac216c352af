// Package config describes a CC3000 board setup: wiring, platform variant,
// start-up timing and the network to join.
package config

import (
	"strings"
	"time"

	"cc3000-go/drivers/cc3000"
	"cc3000-go/errcode"
	"cc3000-go/platform"
	"cc3000-go/setups"
)

type Config struct {
	Board    string `yaml:"Board"`
	Platform string `yaml:"Platform"`
	Pins     struct {
		Interrupt  uint8 `yaml:"Interrupt"`
		Enable     uint8 `yaml:"Enable"`
		ChipSelect uint8 `yaml:"ChipSelect"`
	} `yaml:"Pins"`
	SettleDelay time.Duration `yaml:"SettleDelay"`
	Network     struct {
		SSID     string `yaml:"SSID"`
		Password string `yaml:"Password"`
		Security string `yaml:"Security"`
	} `yaml:"Network"`
	Logging struct {
		Level  string `yaml:"Level"`
		Format string `yaml:"Format"`
	} `yaml:"Logging"`
}

// Default mirrors the build-selected wiring on an ATmega328P.
func Default() Config {
	var c Config
	c.Board = setups.Selected.Name
	c.Platform = platform.ATmega328P.String()
	c.Pins.Interrupt = setups.Selected.InterruptPin
	c.Pins.Enable = setups.Selected.EnablePin
	c.Pins.ChipSelect = setups.Selected.ChipSelectPin
	c.SettleDelay = cc3000.DefaultSettleDelay
	c.Network.Security = cc3000.SecurityWPA2.String()
	c.Logging.Level = "INFO"
	c.Logging.Format = "text"
	return c
}

// Validate checks what can be checked without hardware. Interrupt-line
// support is left to Device.Configure.
func (c *Config) Validate() error {
	if _, ok := platform.ParseVariant(c.Platform); !ok {
		return invalid("unknown platform " + c.Platform)
	}
	p := c.Pins
	if p.Interrupt == p.Enable || p.Interrupt == p.ChipSelect || p.Enable == p.ChipSelect {
		return invalid("pins must be distinct")
	}
	if c.SettleDelay < 0 {
		return invalid("negative SettleDelay")
	}
	if _, err := c.Security(); err != nil {
		return err
	}
	return nil
}

// Device converts the setup to a handle configuration.
func (c *Config) Device() cc3000.Config {
	v, _ := platform.ParseVariant(c.Platform)
	return cc3000.Config{
		InterruptPin:  c.Pins.Interrupt,
		EnablePin:     c.Pins.Enable,
		ChipSelectPin: c.Pins.ChipSelect,
		Variant:       v,
		SettleDelay:   c.SettleDelay,
	}
}

// Security parses Network.Security; empty means open.
func (c *Config) Security() (cc3000.Security, error) {
	s := strings.ToLower(strings.TrimSpace(c.Network.Security))
	if s == "" {
		return cc3000.SecurityOpen, nil
	}
	for _, sec := range []cc3000.Security{cc3000.SecurityOpen, cc3000.SecurityWEP, cc3000.SecurityWPA, cc3000.SecurityWPA2} {
		if sec.String() == s {
			return sec, nil
		}
	}
	return 0, invalid("unknown security " + c.Network.Security)
}

func invalid(msg string) error {
	return errcode.New(errcode.InvalidConfig, "config", msg)
}
