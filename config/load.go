//go:build !tinygo

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"cc3000-go/setups"
)

// Load reads a YAML setup from path. Keys left out keep their Default values.
// A Board key selects a known wiring before Pins are applied.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML setup.
func Parse(data []byte) (Config, error) {
	var probe struct {
		Board string `yaml:"Board"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Config{}, err
	}
	c := Default()
	if probe.Board != "" {
		w, ok := setups.ByName(probe.Board)
		if !ok {
			return Config{}, invalid("unknown board " + probe.Board)
		}
		c.Board = w.Name
		c.Pins.Interrupt = w.InterruptPin
		c.Pins.Enable = w.EnablePin
		c.Pins.ChipSelect = w.ChipSelectPin
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(&c)
}
