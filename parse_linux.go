//go:build linux
// +build linux

package nl80211

import (
	"golang.org/x/sys/unix"

	"github.com/nlradio/nl80211/nlattr"
)

// ParseInterface decodes one NL80211_CMD_NEW_INTERFACE message payload into
// an Interface. Attributes the builder does not recognize are skipped; a
// recognized attribute that fails to decode aborts the build and returns
// the error. When an attribute occurs more than once the last occurrence
// wins.
func ParseInterface(b []byte) (*Interface, error) {
	attrs, err := nlattr.Unmarshal(b)
	if err != nil {
		return nil, err
	}

	var ifi Interface
	for _, a := range attrs {
		switch a.Type {
		case unix.NL80211_ATTR_IFINDEX:
			if ifi.Index, err = u32(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_SSID:
			s := nlattr.String(a.Data)
			ifi.SSID = &s
		case unix.NL80211_ATTR_MAC:
			if ifi.HardwareAddr, err = nlattr.HardwareAddr(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_IFNAME:
			s := nlattr.String(a.Data)
			ifi.Name = &s
		case unix.NL80211_ATTR_WIPHY_FREQ:
			if ifi.Frequency, err = u32(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_CHANNEL_WIDTH:
			if ifi.Channel, err = u32(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_WIPHY_TX_POWER_LEVEL:
			if ifi.TxPower, err = u32(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_WIPHY:
			if ifi.PHY, err = u32(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_WDEV:
			if ifi.Device, err = u64(a.Data); err != nil {
				return nil, err
			}
		}
	}

	return &ifi, nil
}

// ParseBSS decodes one NL80211_CMD_NEW_SCAN_RESULTS message payload into a
// BSS. The interesting data sits inside the nested NL80211_ATTR_BSS
// container; top-level attributes other than the container are ignored.
func ParseBSS(b []byte) (*BSS, error) {
	attrs, err := nlattr.Unmarshal(b)
	if err != nil {
		return nil, err
	}

	var bss BSS
	for _, a := range attrs {
		if a.Type != unix.NL80211_ATTR_BSS {
			continue
		}

		nattrs, err := nlattr.Unmarshal(a.Data)
		if err != nil {
			return nil, err
		}

		for _, na := range nattrs {
			switch na.Type {
			case unix.NL80211_BSS_BSSID:
				if bss.BSSID, err = nlattr.HardwareAddr(na.Data); err != nil {
					return nil, err
				}
			case unix.NL80211_BSS_FREQUENCY:
				if bss.Frequency, err = u32(na.Data); err != nil {
					return nil, err
				}
			case unix.NL80211_BSS_BEACON_INTERVAL:
				v, err := nlattr.Uint16(na.Data)
				if err != nil {
					return nil, err
				}
				bss.BeaconInterval = &v
			case unix.NL80211_BSS_SEEN_MS_AGO:
				if bss.LastSeen, err = u32(na.Data); err != nil {
					return nil, err
				}
			case unix.NL80211_BSS_STATUS:
				v, err := nlattr.Uint32(na.Data)
				if err != nil {
					return nil, err
				}
				used := v != 0
				bss.Status = &used
			case unix.NL80211_BSS_SIGNAL_MBM:
				v, err := nlattr.Int32(na.Data)
				if err != nil {
					return nil, err
				}
				bss.Signal = &v
			}
		}
	}

	return &bss, nil
}

// ParseStation decodes one NL80211_CMD_NEW_STATION message payload into a
// Station. Statistics live inside the nested NL80211_ATTR_STA_INFO
// container; the bitrate sub-attributes nest one level further.
func ParseStation(b []byte) (*Station, error) {
	attrs, err := nlattr.Unmarshal(b)
	if err != nil {
		return nil, err
	}

	var st Station
	for _, a := range attrs {
		switch a.Type {
		case unix.NL80211_ATTR_MAC:
			if st.HardwareAddr, err = nlattr.HardwareAddr(a.Data); err != nil {
				return nil, err
			}
		case unix.NL80211_ATTR_STA_INFO:
			if err := st.parseStaInfo(a.Data); err != nil {
				return nil, err
			}
		}
	}

	return &st, nil
}

// parseStaInfo decodes the NL80211_ATTR_STA_INFO container into st.
func (st *Station) parseStaInfo(b []byte) error {
	attrs, err := nlattr.Unmarshal(b)
	if err != nil {
		return err
	}

	for _, a := range attrs {
		switch a.Type {
		case unix.NL80211_STA_INFO_SIGNAL:
			if st.Signal, err = i8(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_SIGNAL_AVG:
			if st.SignalAverage, err = i8(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_BEACON_LOSS:
			if st.BeaconLoss, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_CONNECTED_TIME:
			if st.ConnectedTime, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_RX_PACKETS:
			if st.ReceivedPackets, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_TX_PACKETS:
			if st.TransmittedPackets, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_TX_RETRIES:
			if st.TransmitRetries, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_TX_FAILED:
			if st.TransmitFailed, err = u32(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_RX_BITRATE:
			if st.ReceiveBitrate, err = parseBitrate(a.Data); err != nil {
				return err
			}
		case unix.NL80211_STA_INFO_TX_BITRATE:
			if st.TransmitBitrate, err = parseBitrate(a.Data); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseBitrate decodes a nested rate info container, keeping only the
// 32-bit total bitrate. The result is nil when the container does not
// carry NL80211_RATE_INFO_BITRATE32.
func parseBitrate(b []byte) (*uint32, error) {
	attrs, err := nlattr.Unmarshal(b)
	if err != nil {
		return nil, err
	}

	var bitrate *uint32
	for _, a := range attrs {
		if a.Type != unix.NL80211_RATE_INFO_BITRATE32 {
			continue
		}
		if bitrate, err = u32(a.Data); err != nil {
			return nil, err
		}
	}

	return bitrate, nil
}

func u32(b []byte) (*uint32, error) {
	v, err := nlattr.Uint32(b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func u64(b []byte) (*uint64, error) {
	v, err := nlattr.Uint64(b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func i8(b []byte) (*int8, error) {
	v, err := nlattr.Int8(b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
