package cc3000

import (
	"tinygo.org/x/drivers/netlink"

	"cc3000-go/internal/diag"
)

// Security is the CC3000 wireless security mode.
type Security uint8

const (
	SecurityOpen Security = 0
	SecurityWEP  Security = 1
	SecurityWPA  Security = 2
	SecurityWPA2 Security = 3
)

func (s Security) String() string {
	switch s {
	case SecurityOpen:
		return "open"
	case SecurityWEP:
		return "wep"
	case SecurityWPA:
		return "wpa"
	case SecurityWPA2:
		return "wpa2"
	default:
		return "unknown"
	}
}

// SecurityFromAuth maps a netlink auth type onto the chip's modes. Mixed
// WPA/WPA2 is sent as WPA2.
func SecurityFromAuth(a netlink.AuthType) Security {
	switch a {
	case netlink.AuthTypeOpen:
		return SecurityOpen
	case netlink.AuthTypeWPA:
		return SecurityWPA
	default:
		return SecurityWPA2
	}
}

// Connect is meant to join the network ssid with password and mode sec.
//
// It is not implemented yet: it performs no network operation and always
// returns nil, whether or not the handle is ready.
// TODO: issue wlan_connect through WLAN once the interface exposes it.
func (d *Device) Connect(ssid, password string, sec Security) error {
	diag.Println("connect not implemented", "ssid", ssid, "security", sec.String())
	return nil
}

// ConnectParams calls Connect with netlink-style parameters.
func (d *Device) ConnectParams(p *netlink.ConnectParams) error {
	return d.Connect(p.Ssid, p.Passphrase, SecurityFromAuth(p.AuthType))
}
