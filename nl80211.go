// Package nl80211 exposes wireless interface, scan result and peer station
// telemetry reported by the kernel's nl80211 subsystem.
//
// Records are decoded from raw netlink attribute streams by the builders in
// this package; every field is optional, because each is backed by a single
// attribute that the kernel may or may not include in a message. A nil
// field means "not reported", which is distinct from a reported zero.
// Fields hold the raw wire-scale values (MHz, mBm, 100kbit/s units and so
// on); the String methods render human units.
package nl80211

import (
	"fmt"
	"net"
	"strings"
)

// An Interface is a WiFi network interface.
type Interface struct {
	// The index of the interface.
	Index *uint32

	// The service set the interface is currently associated with.
	SSID *string

	// The hardware address of the interface.
	HardwareAddr net.HardwareAddr

	// The name of the interface.
	Name *string

	// The frequency of the interface's current channel, in MHz.
	Frequency *uint32

	// The channel width value reported by the kernel.
	Channel *uint32

	// The transmit power level, in mBm (100 * dBm).
	TxPower *uint32

	// The index of the physical device this interface belongs to.
	PHY *uint32

	// The wireless device identifier, used for pseudo-devices that have
	// no netdev.
	Device *uint64
}

// String returns one line per reported field, in human units.
func (ifi *Interface) String() string {
	var lines []string

	if ifi.SSID != nil {
		lines = append(lines, fmt.Sprintf("essid : %s", *ifi.SSID))
	}
	if ifi.HardwareAddr != nil {
		lines = append(lines, fmt.Sprintf("mac : %s", ifi.HardwareAddr))
	}
	if ifi.Name != nil {
		lines = append(lines, fmt.Sprintf("interface : %s", *ifi.Name))
	}
	if ifi.Frequency != nil {
		lines = append(lines, fmt.Sprintf("frequency : %.3f GHz", float64(*ifi.Frequency)/1000))
	}
	if ifi.Channel != nil {
		lines = append(lines, fmt.Sprintf("channel : %d", *ifi.Channel))
	}
	if ifi.TxPower != nil {
		lines = append(lines, fmt.Sprintf("power : %g dBm", float64(*ifi.TxPower)/100))
	}
	if ifi.PHY != nil {
		lines = append(lines, fmt.Sprintf("phy : %d", *ifi.PHY))
	}
	if ifi.Device != nil {
		lines = append(lines, fmt.Sprintf("device : %d", *ifi.Device))
	}

	return strings.Join(lines, "\n")
}

// A BSS is an 802.11 basic service set: a wireless network discovered by a
// scan, or the one an interface is associated with.
type BSS struct {
	// The BSS service set identifier. In infrastructure mode this is the
	// hardware address of the access point.
	BSSID net.HardwareAddr

	// The frequency used by the BSS, in MHz.
	Frequency *uint32

	// The interval between beacon transmissions, in time units (TU).
	BeaconInterval *uint16

	// The age of this BSS entry, in milliseconds.
	LastSeen *uint32

	// Whether the client is currently using this BSS.
	Status *bool

	// The signal strength of the probe response or beacon, in mBm
	// (100 * dBm).
	Signal *int32
}

// String returns one line per reported field, in human units.
func (b *BSS) String() string {
	var lines []string

	if b.BSSID != nil {
		lines = append(lines, fmt.Sprintf("bssid : %s", b.BSSID))
	}
	if b.Frequency != nil {
		lines = append(lines, fmt.Sprintf("frequency : %.3f GHz", float64(*b.Frequency)/1000))
	}
	if b.BeaconInterval != nil {
		lines = append(lines, fmt.Sprintf("beacon interval : %d TU", *b.BeaconInterval))
	}
	if b.LastSeen != nil {
		lines = append(lines, fmt.Sprintf("last seen : %d ms", *b.LastSeen))
	}
	if b.Status != nil {
		lines = append(lines, fmt.Sprintf("status : %t", *b.Status))
	}
	if b.Signal != nil {
		lines = append(lines, fmt.Sprintf("signal : %g dBm", float64(*b.Signal)/100))
	}

	return strings.Join(lines, "\n")
}

// A Station is a remote peer associated with a local interface: the access
// point when the interface operates in station mode, or a client when it
// operates as an access point.
type Station struct {
	// The hardware address of the station.
	HardwareAddr net.HardwareAddr

	// The time since the station last connected, in seconds.
	ConnectedTime *uint32

	// The number of times a beacon loss was detected.
	BeaconLoss *uint32

	// The signal strength of the last received PPDU, in dBm.
	Signal *int8

	// The average signal strength, in dBm.
	SignalAverage *int8

	// The number of packets received from this station.
	ReceivedPackets *uint32

	// The number of packets transmitted to this station.
	TransmittedPackets *uint32

	// The current receive bitrate, in 100kbit/s units.
	ReceiveBitrate *uint32

	// The current transmit bitrate, in 100kbit/s units.
	TransmitBitrate *uint32

	// The number of times the station retried a packet transmission.
	TransmitRetries *uint32

	// The number of failed packet transmissions.
	TransmitFailed *uint32
}

// String returns one line per reported field, in human units.
func (s *Station) String() string {
	var lines []string

	if s.HardwareAddr != nil {
		lines = append(lines, fmt.Sprintf("bssid : %s", s.HardwareAddr))
	}
	if s.ConnectedTime != nil {
		lines = append(lines, fmt.Sprintf("connected time : %.1f minutes", float64(*s.ConnectedTime)/60))
	}
	if s.BeaconLoss != nil {
		lines = append(lines, fmt.Sprintf("beacon loss : %d", *s.BeaconLoss))
	}
	if s.Signal != nil {
		lines = append(lines, fmt.Sprintf("signal : %d dBm", *s.Signal))
	}
	if s.SignalAverage != nil {
		lines = append(lines, fmt.Sprintf("average signal : %d dBm", *s.SignalAverage))
	}
	if s.ReceivedPackets != nil {
		lines = append(lines, fmt.Sprintf("rx packets : %d", *s.ReceivedPackets))
	}
	if s.TransmittedPackets != nil {
		lines = append(lines, fmt.Sprintf("tx packets : %d", *s.TransmittedPackets))
	}
	if s.ReceiveBitrate != nil {
		lines = append(lines, fmt.Sprintf("rx bitrate : %d.%d Mb/s", *s.ReceiveBitrate/10, *s.ReceiveBitrate%10))
	}
	if s.TransmitBitrate != nil {
		lines = append(lines, fmt.Sprintf("tx bitrate : %d.%d Mb/s", *s.TransmitBitrate/10, *s.TransmitBitrate%10))
	}
	if s.TransmitRetries != nil {
		lines = append(lines, fmt.Sprintf("tx retries : %d", *s.TransmitRetries))
	}
	if s.TransmitFailed != nil {
		lines = append(lines, fmt.Sprintf("tx failed : %d", *s.TransmitFailed))
	}

	return strings.Join(lines, "\n")
}

// FrequencyToChannel returns the channel number for a frequency in MHz, as
// defined by IEEE 802.11-2007, 17.3.8.3.2 and Annex J. It returns 0 for
// frequencies outside the defined bands.
func FrequencyToChannel(freq int) int {
	switch {
	case freq == 2484:
		return 14
	case freq < 2484:
		return (freq - 2407) / 5
	case freq >= 4910 && freq <= 4980:
		return (freq - 4000) / 5
	case freq <= 45000:
		return (freq - 5000) / 5
	case freq >= 58320 && freq <= 64800:
		return (freq - 56160) / 2160
	default:
		return 0
	}
}
