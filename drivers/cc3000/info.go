package cc3000

import (
	"net"
	"strconv"

	"cc3000-go/errcode"
)

// Version is the chip's service pack version: [0] major, [1] minor.
type Version [2]byte

func (v Version) Major() uint8 { return v[0] }
func (v Version) Minor() uint8 { return v[1] }

func (v Version) String() string {
	return strconv.Itoa(int(v[0])) + "." + strconv.Itoa(int(v[1]))
}

// MAC is the station MAC address.
type MAC [6]byte

func (m MAC) String() string { return net.HardwareAddr(m[:]).String() }

// FirmwareVersion reads the service pack version from the chip.
func (d *Device) FirmwareVersion() (Version, error) {
	var v Version
	if !d.ready {
		return v, errcode.New(errcode.NotReady, "firmware_version", "")
	}
	if err := errcode.Status("firmware_version", d.wlan.ReadSPVersion(v[:])); err != nil {
		return Version{}, err
	}
	return v, nil
}

// MACAddress reads the station MAC address from the chip's NVMEM.
func (d *Device) MACAddress() (MAC, error) {
	var m MAC
	if !d.ready {
		return m, errcode.New(errcode.NotReady, "mac_address", "")
	}
	if err := errcode.Status("mac_address", d.wlan.GetMACAddress(m[:])); err != nil {
		return MAC{}, err
	}
	return m, nil
}

// HardwareAddr is MACAddress as a net.HardwareAddr.
func (d *Device) HardwareAddr() (net.HardwareAddr, error) {
	m, err := d.MACAddress()
	if err != nil {
		return nil, err
	}
	return net.HardwareAddr(m[:]), nil
}
