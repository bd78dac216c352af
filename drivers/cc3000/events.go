package cc3000

// Event is an unsolicited CC3000 event code delivered through the async
// callback.
type Event uint16

const (
	EventConnect          Event = 0x8001
	EventDisconnect       Event = 0x8002
	EventInit             Event = 0x8004
	EventTxComplete       Event = 0x8008
	EventDHCP             Event = 0x8010
	EventPingReport       Event = 0x8040
	EventSimpleConfigDone Event = 0x8080
	EventShutdown         Event = 0x8100
	EventKeepAlive        Event = 0x8200
)

func (e Event) String() string {
	switch e {
	case EventConnect:
		return "connect"
	case EventDisconnect:
		return "disconnect"
	case EventInit:
		return "init"
	case EventTxComplete:
		return "tx_complete"
	case EventDHCP:
		return "dhcp"
	case EventPingReport:
		return "ping_report"
	case EventSimpleConfigDone:
		return "simple_config_done"
	case EventShutdown:
		return "shutdown"
	case EventKeepAlive:
		return "keepalive"
	default:
		return "unknown"
	}
}

// DHCP payload: IP, netmask, gateway, DHCP server, DNS server (4 bytes each,
// little-endian as sent by the chip), then a status byte. Zero status means
// an address was leased.
const (
	dhcpStatusOffset = 20
)

// handleEvent updates link state and forwards to the configured hook.
func (d *Device) handleEvent(code uint16, data []byte) {
	ev := Event(code)
	switch ev {
	case EventConnect:
		d.connected = true
	case EventDisconnect:
		d.connected = false
		d.hasIP = false
	case EventDHCP:
		// A lease only counts while associated.
		d.hasIP = d.connected && len(data) > dhcpStatusOffset && data[dhcpStatusOffset] == 0
	}
	if d.cfg.OnEvent != nil {
		d.cfg.OnEvent(ev, data)
	}
}

// Connected reports whether the chip has signalled an association.
func (d *Device) Connected() bool { return d.connected }

// HasIP reports whether a DHCP lease has been signalled since the last
// association.
func (d *Device) HasIP() bool { return d.hasIP }
